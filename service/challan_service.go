package service

import (
	"log"
	"strings"

	"github.com/teamkkc2025/ESIC-Extractor/dto"
	"github.com/teamkkc2025/ESIC-Extractor/utils"
)

type ChallanService struct {
	pdfProcessor PDFProcessor
}

func NewChallanService(pdfProcessor PDFProcessor) *ChallanService {
	return &ChallanService{pdfProcessor: pdfProcessor}
}

// ProcessPDF runs one challan document through the keyword gate and the
// field-pattern extractor. Every failure mode is terminal for this document
// only and is reported in the result, never as an error to the caller.
func (s *ChallanService) ProcessPDF(pdfData []byte, filename string) dto.ChallanResult {
	text, err := s.pdfProcessor.ExtractText(pdfData)
	if err != nil || strings.TrimSpace(text) == "" {
		log.Printf("Text extraction failed for %s: %v", filename, err)
		return dto.ChallanResult{
			Filename: filename,
			Status:   dto.ChallanStatusError,
			Error:    "Could not extract text from PDF",
		}
	}

	if !utils.IsESICChallan(text) {
		return dto.ChallanResult{
			Filename: filename,
			Status:   dto.ChallanStatusNotESIC,
			Error:    "Document does not appear to be an ESIC challan",
		}
	}

	return dto.ChallanResult{
		Filename: filename,
		Status:   dto.ChallanStatusSuccess,
		Fields:   utils.ExtractChallanFields(text),
		Tables:   utils.ExtractTableFragments(text),
	}
}
