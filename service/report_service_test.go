package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/teamkkc2025/ESIC-Extractor/dto"
)

func sampleECRDocument() dto.ECRDocument {
	return dto.ECRDocument{
		Filename: "april.pdf",
		Header: dto.HeaderInfo{
			EstablishmentCode: "12345678901234567",
			Period:            "Apr2024",
			Month:             "April",
			Organization:      "Employees' State Insurance Corporation",
		},
		Summary: dto.SummaryTotals{
			TotalIPContribution:       750,
			TotalEmployerContribution: 3250,
			TotalContribution:         4000,
			TotalMonthlyWages:         100000,
		},
		Employees: []dto.EmployeeRecord{
			{SNo: 1, IsDisable: "-", IPNumber: "1234567890", IPName: "RAM KUMAR",
				Days: 26, Wages: 15000, Contribution: 112.5, Reason: "-"},
		},
		Footer: dto.FooterInfo{PageInfo: "Page 1 of 1", PrintedOn: "01/05/2024 10:30"},
	}
}

func TestBuildECRWorkbook(t *testing.T) {
	svc := NewReportService()

	buf, err := svc.BuildECRWorkbook([]dto.ECRDocument{sampleECRDocument()})
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Combined_Data")
	assert.Contains(t, sheets, "april")

	// Combined sheet carries the source file column plus the employee row.
	source, _ := f.GetCellValue("Combined_Data", "A2")
	assert.Equal(t, "april", source)
	ip, _ := f.GetCellValue("Combined_Data", "D2")
	assert.Equal(t, "1234567890", ip)

	// Per-file sheet opens with the reconstructed title line.
	title, _ := f.GetCellValue("april", "A1")
	assert.Equal(t, "ECR Of 12345678901234567 for Apr2024", title)
}

func TestBuildChallanReport(t *testing.T) {
	svc := NewReportService()

	results := []dto.ChallanResult{
		{
			Filename: "ok.pdf",
			Status:   dto.ChallanStatusSuccess,
			Fields: dto.ChallanFields{
				TransactionStatus: "SUCCESS",
				EmployerCode:      "123",
				AmountPaid:        "1,23,456.00",
				TransactionNumber: "SBIN123456789",
			},
		},
		{
			Filename: "bad.pdf",
			Status:   dto.ChallanStatusError,
			Error:    "Could not extract text from PDF",
		},
	}

	buf, err := svc.BuildChallanReport(results)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer f.Close()

	const sheet = "ESIC_Challan_Report"

	status, _ := f.GetCellValue(sheet, "B2")
	assert.Equal(t, "success", status)

	// Amount paid is normalized by the renderer.
	amount, _ := f.GetCellValue(sheet, "J2")
	assert.Equal(t, "123456.00", amount)

	errMsg, _ := f.GetCellValue(sheet, "M3")
	assert.Equal(t, "Could not extract text from PDF", errMsg)
	placeholder, _ := f.GetCellValue(sheet, "C3")
	assert.Equal(t, "Error", placeholder)
}
