package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teamkkc2025/ESIC-Extractor/dto"
	"github.com/teamkkc2025/ESIC-Extractor/service"
)

type ChallanHandler struct {
	challanService *service.ChallanService
	reportService  *service.ReportService
}

func NewChallanHandler(challanService *service.ChallanService, reportService *service.ReportService) *ChallanHandler {
	return &ChallanHandler{
		challanService: challanService,
		reportService:  reportService,
	}
}

// Extract handles POST /challan/extract and returns per-file results as JSON.
func (h *ChallanHandler) Extract(c *gin.Context) {
	results, ok := h.processUpload(c)
	if !ok {
		return
	}

	successful := 0
	for _, result := range results {
		if result.Status == dto.ChallanStatusSuccess {
			successful++
		}
	}

	c.JSON(http.StatusOK, dto.ChallanExtractResponse{
		Results:     results,
		Successful:  successful,
		Failed:      len(results) - successful,
		ProcessedAt: time.Now().Format(time.RFC3339),
	})
}

// Report handles POST /challan/report and responds with the XLSX report.
func (h *ChallanHandler) Report(c *gin.Context) {
	results, ok := h.processUpload(c)
	if !ok {
		return
	}

	report, err := h.reportService.BuildChallanReport(results)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to build challan report", err)
		return
	}

	filename := fmt.Sprintf("ESIC_Challan_Report_%s.xlsx", time.Now().Format("20060102_150405"))
	sendWorkbook(c, filename, report.Bytes())
}

// processUpload runs challan extraction over every uploaded file. A file that
// cannot be read still yields an error result so the report carries its row.
func (h *ChallanHandler) processUpload(c *gin.Context) ([]dto.ChallanResult, bool) {
	files, ok := formFiles(c)
	if !ok {
		return nil, false
	}

	log.Printf("Processing %d challan files", len(files))

	results := make([]dto.ChallanResult, 0, len(files))
	for _, fileHeader := range files {
		data, err := readUpload(fileHeader)
		if err != nil {
			log.Printf("Failed to read upload %s: %v", fileHeader.Filename, err)
			results = append(results, dto.ChallanResult{
				Filename: fileHeader.Filename,
				Status:   dto.ChallanStatusError,
				Error:    err.Error(),
			})
			continue
		}
		results = append(results, h.challanService.ProcessPDF(data, fileHeader.Filename))
	}
	return results, true
}
