package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teamkkc2025/ESIC-Extractor/dto"
)

const challanPage = `Employees State Insurance Corporation
ESIC Payment Challan
Transaction Status : SUCCESS
Employer's Code No : 12345678901234567
Employer's Name : ACME INDUSTRIES PVT LTD
Challan Period : Apr-2024
Challan No : 01234567890123456789
Challan Created Date : 15/05/2024
Challan Submitted Date : 16/05/2024
Amount Paid : ₹ 1,23,456.00
Transaction No : SBIN123456789`

func TestChallanServiceSuccess(t *testing.T) {
	svc := NewChallanService(&stubProcessor{pages: []string{challanPage}})

	result := svc.ProcessPDF([]byte("pdf"), "challan.pdf")

	assert.Equal(t, dto.ChallanStatusSuccess, result.Status)
	assert.Equal(t, "challan.pdf", result.Filename)
	assert.Equal(t, "SUCCESS", result.Fields.TransactionStatus)
	assert.Equal(t, "SBIN123456789", result.Fields.TransactionNumber)
	assert.Empty(t, result.Error)
}

func TestChallanServiceNotESIC(t *testing.T) {
	svc := NewChallanService(&stubProcessor{pages: []string{"an unrelated invoice for goods"}})

	result := svc.ProcessPDF(nil, "invoice.pdf")

	assert.Equal(t, dto.ChallanStatusNotESIC, result.Status)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, dto.ChallanFields{}, result.Fields)
}

func TestChallanServiceExtractionFailure(t *testing.T) {
	svc := NewChallanService(&stubProcessor{err: assert.AnError})

	result := svc.ProcessPDF(nil, "broken.pdf")

	assert.Equal(t, dto.ChallanStatusError, result.Status)
	assert.Equal(t, "Could not extract text from PDF", result.Error)
}

func TestChallanServiceEmptyText(t *testing.T) {
	svc := NewChallanService(&stubProcessor{pages: []string{"", "  "}})

	result := svc.ProcessPDF(nil, "blank.pdf")
	assert.Equal(t, dto.ChallanStatusError, result.Status)
}
