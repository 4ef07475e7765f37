package handler

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teamkkc2025/ESIC-Extractor/dto"
	"github.com/teamkkc2025/ESIC-Extractor/service"
)

type ECRHandler struct {
	ecrService    *service.ECRService
	reportService *service.ReportService
}

func NewECRHandler(ecrService *service.ECRService, reportService *service.ReportService) *ECRHandler {
	return &ECRHandler{
		ecrService:    ecrService,
		reportService: reportService,
	}
}

// Extract handles POST /ecr/extract and returns the parsed documents as JSON.
func (h *ECRHandler) Extract(c *gin.Context) {
	docs, ok := h.processUpload(c)
	if !ok {
		return
	}

	total := 0
	for _, doc := range docs {
		total += len(doc.Employees)
	}

	c.JSON(http.StatusOK, dto.ECRExtractResponse{
		Documents:      docs,
		TotalEmployees: total,
		ProcessedAt:    time.Now().Format(time.RFC3339),
	})
}

// Report handles POST /ecr/report and responds with the XLSX workbook.
func (h *ECRHandler) Report(c *gin.Context) {
	docs, ok := h.processUpload(c)
	if !ok {
		return
	}

	workbook, err := h.reportService.BuildECRWorkbook(docs)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to build ECR workbook", err)
		return
	}

	filename := fmt.Sprintf("ESIC_ECR_%s.xlsx", time.Now().Format("20060102_150405"))
	sendWorkbook(c, filename, workbook.Bytes())
}

// processUpload reads every uploaded file and runs ECR extraction on it. A
// document that fails extraction is logged and skipped; the batch continues.
func (h *ECRHandler) processUpload(c *gin.Context) ([]dto.ECRDocument, bool) {
	files, ok := formFiles(c)
	if !ok {
		return nil, false
	}

	log.Printf("Processing %d ECR files", len(files))

	var docs []dto.ECRDocument
	for _, fileHeader := range files {
		data, err := readUpload(fileHeader)
		if err != nil {
			log.Printf("Failed to read upload %s: %v", fileHeader.Filename, err)
			continue
		}

		doc, err := h.ecrService.ProcessPDF(data, fileHeader.Filename)
		if err != nil {
			log.Printf("Failed to process %s: %v", fileHeader.Filename, err)
			continue
		}
		docs = append(docs, *doc)
	}

	if len(docs) == 0 {
		sendError(c, http.StatusUnprocessableEntity, "No ECR data could be extracted from the uploaded files", nil)
		return nil, false
	}
	return docs, true
}

// formFiles pulls the files[] field out of the multipart form.
func formFiles(c *gin.Context) ([]*multipart.FileHeader, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return nil, false
	}

	files := form.File["files[]"]
	if len(files) == 0 {
		sendError(c, http.StatusBadRequest, "No files provided", nil)
		return nil, false
	}
	return files, true
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func sendWorkbook(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// sendError sends a structured error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
