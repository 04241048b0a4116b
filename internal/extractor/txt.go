package extractor

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

func ExtractTXT(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty text file")
	}

	text, err := decodeText(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode text file: %w", err)
	}

	if !looksLikeText(text) {
		return "", fmt.Errorf("file does not appear to be valid text")
	}

	text = cleanText(text)
	if text == "" {
		return "", fmt.Errorf("no text could be extracted from file")
	}

	return text, nil
}

// decodeText converts data to UTF-8, honouring byte order marks and
// falling back to Windows-1252 for legacy encodings.
func decodeText(data []byte) (string, error) {
	var dec *encoding.Decoder
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(data[len(bomUTF8):]), nil
	case bytes.HasPrefix(data, bomUTF16LE):
		dec = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case bytes.HasPrefix(data, bomUTF16BE):
		dec = unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	case utf8.Valid(data):
		return string(data), nil
	default:
		dec = charmap.Windows1252.NewDecoder()
	}

	decoded, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// looksLikeText rejects binary payloads: at least 80% of the first 512
// runes must be printable or whitespace.
func looksLikeText(text string) bool {
	const sample = 512

	var total, printable int
	for _, r := range text {
		if total == sample {
			break
		}
		total++
		if r == '\t' || r == '\n' || r == '\r' || (r >= 0x20 && r != 0x7F && r != utf8.RuneError) {
			printable++
		}
	}
	if total == 0 {
		return false
	}
	return float64(printable)/float64(total) >= 0.8
}

func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\x00", "")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}
