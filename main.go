package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/teamkkc2025/ESIC-Extractor/config"
	"github.com/teamkkc2025/ESIC-Extractor/handler"
	"github.com/teamkkc2025/ESIC-Extractor/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	ecrService := service.NewECRService(pdfProcessor)
	challanService := service.NewChallanService(pdfProcessor)
	reportService := service.NewReportService()

	// Initialize handler layer
	ecrHandler := handler.NewECRHandler(ecrService, reportService)
	challanHandler := handler.NewChallanHandler(challanService, reportService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "ESIC PDF Data Extractor",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		ecr := api.Group("/ecr")
		{
			ecr.POST("/extract", ecrHandler.Extract)
			ecr.POST("/report", ecrHandler.Report)
		}
		challan := api.Group("/challan")
		{
			challan.POST("/extract", challanHandler.Extract)
			challan.POST("/report", challanHandler.Report)
		}
	}

	// Start server
	log.Printf("Starting ESIC PDF Data Extractor on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
