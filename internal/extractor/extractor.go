package extractor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeText = "text/plain"
)

var ErrUnsupportedType = errors.New("unsupported brief type")

// contentTypeAliases maps the MIME variants browsers send onto the canonical types.
var contentTypeAliases = map[string]string{
	ContentTypePDF:      ContentTypePDF,
	"application/x-pdf": ContentTypePDF,
	ContentTypeDOCX:     ContentTypeDOCX,
	"application/vnd.openxmlformats-officedocument.wordprocessingml": ContentTypeDOCX,
	"application/docx":   ContentTypeDOCX,
	"application/x-docx": ContentTypeDOCX,
	ContentTypeText:      ContentTypeText,
	"text/txt":           ContentTypeText,
	"application/txt":    ContentTypeText,
	"application/x-txt":  ContentTypeText,
}

// DetectContentType picks the brief type from the file extension first,
// then from the multipart Content-Type header.
func DetectContentType(filename, headerContentType string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return ContentTypePDF
	case ".docx":
		return ContentTypeDOCX
	case ".txt", ".text", ".md":
		return ContentTypeText
	}
	return NormalizeContentType(headerContentType)
}

// NormalizeContentType strips parameters and resolves known aliases.
// Unknown types are returned lower-cased without parameters.
func NormalizeContentType(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if canonical, ok := contentTypeAliases[ct]; ok {
		return canonical
	}
	return ct
}

func Supported(contentType string) bool {
	_, ok := contentTypeAliases[NormalizeContentType(contentType)]
	return ok
}

// Extract returns the plain text of a project brief.
func Extract(contentType string, data []byte) (string, error) {
	switch NormalizeContentType(contentType) {
	case ContentTypePDF:
		return ExtractPDF(data)
	case ContentTypeDOCX:
		return ExtractDOCX(data)
	case ContentTypeText:
		return ExtractTXT(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
	}
}
