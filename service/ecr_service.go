package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/teamkkc2025/ESIC-Extractor/dto"
	"github.com/teamkkc2025/ESIC-Extractor/utils"
)

type ECRService struct {
	pdfProcessor PDFProcessor
}

func NewECRService(pdfProcessor PDFProcessor) *ECRService {
	return &ECRService{pdfProcessor: pdfProcessor}
}

// ProcessPDF extracts header, summary totals and all employee rows from one
// ECR document. Header and summary accumulation runs over every page before
// row extraction so each record carries the document's final totals.
func (s *ECRService) ProcessPDF(pdfData []byte, filename string) (*dto.ECRDocument, error) {
	pages, err := s.pdfProcessor.ExtractPageTexts(pdfData)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from %s: %w", filename, err)
	}

	doc := &dto.ECRDocument{Filename: filename}

	var accumulator utils.HeaderAccumulator
	for _, pageText := range pages {
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		accumulator.ScanPage(strings.Split(pageText, "\n"))
		utils.ParseFooter(pageText, &doc.Footer)
	}
	doc.Header = accumulator.Header
	doc.Summary = accumulator.Summary

	for _, pageText := range pages {
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		for _, row := range utils.SegmentRows(strings.Split(pageText, "\n")) {
			record, ok := utils.ParseEmployeeRow(row, doc.Summary)
			if !ok {
				log.Printf("Skipping unparseable row in %s: %q", filename, row)
				continue
			}
			doc.Employees = append(doc.Employees, record)
		}
	}

	log.Printf("Extracted %d employee records from %s", len(doc.Employees), filename)
	return doc, nil
}
