package utils

import (
	"strings"

	"github.com/google/uuid"
)

func GenerateID() string {
	return uuid.NewString()
}

// GenerateReference returns a short, human-readable inquiry reference such as "TC-1A2B3C4D".
func GenerateReference(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(id[:8])
}
