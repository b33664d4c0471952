// Package extract reads the text back out of exported PDF and DOCX files.
package extract

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

// ErrUnsupportedFormat is returned when the payload is neither PDF nor DOCX.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Text extracts plain text from an exported document. An empty format is
// detected from the payload's magic bytes.
func Text(ctx context.Context, data []byte, format string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if format == "" {
		format = DetectFormat(data)
	}
	switch strings.ToLower(format) {
	case FormatPDF:
		return PDFText(data)
	case FormatDOCX:
		return DOCXText(data)
	default:
		return "", fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
}

// DetectFormat sniffs a PDF header or a zip local file header.
func DetectFormat(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return FormatPDF
	case bytes.HasPrefix(data, []byte("PK\x03\x04")):
		return FormatDOCX
	default:
		return ""
	}
}

// PDFText returns the page text in content-stream order.
func PDFText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}

// DOCXText returns one line per paragraph of word/document.xml.
func DOCXText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if last := buf.Len(); last > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// Lines splits extracted text into trimmed, non-empty lines.
func Lines(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
