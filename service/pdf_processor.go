package service

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFProcessor yields document text, one string per page. A page that
// produces no text contributes an empty string; callers skip it and continue.
type PDFProcessor interface {
	ExtractPageTexts(pdfData []byte) ([]string, error)
	ExtractText(pdfData []byte) (string, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractPageTexts prefers the row-layout backend and falls back to the
// repair-then-plain-text backend only when the first yields no text at all.
func (p *pdfProcessor) ExtractPageTexts(pdfData []byte) ([]string, error) {
	pages, err := extractPagesByRow(pdfData)
	if err == nil && anyPageText(pages) {
		return pages, nil
	}

	fallback, ferr := extractPagesRepaired(pdfData)
	if ferr != nil {
		if err != nil {
			return nil, fmt.Errorf("pdf text extraction failed: %w", err)
		}
		return pages, nil
	}
	return fallback, nil
}

// ExtractText returns the whole document as one string, pages joined by
// newlines.
func (p *pdfProcessor) ExtractText(pdfData []byte) (string, error) {
	pages, err := p.ExtractPageTexts(pdfData)
	if err != nil {
		return "", err
	}
	var builder strings.Builder
	for _, page := range pages {
		if page == "" {
			continue
		}
		builder.WriteString(page)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

// extractPagesByRow reads page text row by row, words space-joined within a
// row. This preserves the line structure the row segmenter depends on.
func extractPagesByRow(pdfData []byte) ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return nil, err
	}

	pages := make([]string, 0, r.NumPage())
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		var textBuilder strings.Builder
		rows, _ := page.GetTextByRow()
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					textBuilder.WriteString(" ")
				}
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}
		pages = append(pages, textBuilder.String())
	}
	return pages, nil
}

// extractPagesRepaired rewrites the document through pdfcpu's optimizer to
// recover damaged cross-reference tables or streams, then extracts plain
// text per page.
func extractPagesRepaired(pdfData []byte) ([]string, error) {
	inFile, err := os.CreateTemp("", "esic-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(inFile.Name())

	if _, err := inFile.Write(pdfData); err != nil {
		inFile.Close()
		return nil, fmt.Errorf("failed to write pdf data: %w", err)
	}
	inFile.Close()

	outFile := inFile.Name() + ".opt"
	defer os.Remove(outFile)

	conf := model.NewDefaultConfiguration()
	if err := api.OptimizeFile(inFile.Name(), outFile, conf); err != nil {
		return nil, fmt.Errorf("failed to optimize pdf: %w", err)
	}

	repaired, err := os.ReadFile(outFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read optimized pdf: %w", err)
	}

	r, err := pdf.NewReader(bytes.NewReader(repaired), int64(len(repaired)))
	if err != nil {
		return nil, err
	}

	pages := make([]string, 0, r.NumPage())
	fonts := make(map[string]*pdf.Font)
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func anyPageText(pages []string) bool {
	for _, page := range pages {
		if strings.TrimSpace(page) != "" {
			return true
		}
	}
	return false
}
