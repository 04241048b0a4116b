package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const docxBodyPart = "word/document.xml"

type docxDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    struct {
		Paragraphs []struct {
			Runs []struct {
				Text []string `xml:"t"`
			} `xml:"r"`
		} `xml:"p"`
	} `xml:"body"`
}

func ExtractDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX as ZIP: %w", err)
	}

	part, err := archive.Open(docxBodyPart)
	if err != nil {
		return "", fmt.Errorf("%s not found in DOCX: %w", docxBodyPart, err)
	}
	defer part.Close()

	xmlData, err := io.ReadAll(part)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", docxBodyPart, err)
	}

	var doc docxDocument
	if err := xml.Unmarshal(xmlData, &doc); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", docxBodyPart, err)
	}

	var lines []string
	for _, para := range doc.Body.Paragraphs {
		var line strings.Builder
		for _, run := range para.Runs {
			for _, t := range run.Text {
				line.WriteString(t)
			}
		}
		if s := strings.TrimSpace(line.String()); s != "" {
			lines = append(lines, s)
		}
	}

	if len(lines) == 0 {
		return "", fmt.Errorf("no text could be extracted from DOCX")
	}

	return strings.Join(lines, "\n"), nil
}
