// Package pdftext extracts newline-normalized plain text from PDF documents
// so the converter core only ever sees clean UTF-8 text.
// Library used: github.com/ledongthuc/pdf.
package pdftext

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractFile reads a PDF from disk and returns its normalized plain text.
func ExtractFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat PDF %s: %w", path, err)
	}

	text, err := Extract(file, info.Size())
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
	}
	return text, nil
}

// Extract pulls plain text from an in-memory or seekable PDF. Pages are
// extracted independently and joined with blank lines; a page whose text
// cannot be decoded contributes an empty page rather than failing the
// whole document.
func Extract(readerAt io.ReaderAt, size int64) (string, error) {
	pdfReader, err := pdf.NewReader(readerAt, size)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	pageTexts := make([]string, 0, pdfReader.NumPage())
	fonts := make(map[string]*pdf.Font)

	for pageNumber := 1; pageNumber <= pdfReader.NumPage(); pageNumber++ {
		page := pdfReader.Page(pageNumber)
		if page.V.IsNull() {
			pageTexts = append(pageTexts, "")
			continue
		}

		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			pageTexts = append(pageTexts, "")
			continue
		}
		pageTexts = append(pageTexts, pageText)
	}

	return Normalize(strings.Join(pageTexts, "\n\n")), nil
}

// Normalize converts Windows and legacy Mac line endings to "\n" and trims
// surrounding whitespace. Pre-extracted text files get the same guarantees
// the converter core assumes for PDF-derived text.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimSpace(text)
}
