package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/teamkkc2025/ESIC-Extractor/dto"
	"github.com/teamkkc2025/ESIC-Extractor/utils"
)

// ReportService renders extraction results into styled XLSX workbooks,
// mirroring the layout of the printed source documents.
type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

var ecrTableHeaders = []string{
	"SNo.", "Is Disable", "IP Number", "IP Name",
	"No. Of Days", "Total Wages", "IP Contribution", "Reason",
}

var ecrSummaryHeaders = []string{
	"Total IP Contribution", "Total Employer Contribution", "Total Contribution",
	"Total Government Contribution", "Total Monthly Wages",
}

var challanReportHeaders = []string{
	"Filename", "Status", "Transaction Status", "Employer Code", "Employer Name",
	"Challan Period", "Challan Number", "Challan Created Date",
	"Challan Submitted Date", "Amount Paid", "Transaction Number",
	"Tables Found", "Error",
}

type reportStyles struct {
	title         int
	orgHeader     int
	summaryHeader int
	tableHeader   int
	cell          int
	centeredCell  int
	errorCell     int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func buildStyles(f *excelize.File) (reportStyles, error) {
	var s reportStyles
	var err error

	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	if s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: "Arial", Size: 14, Bold: true},
	}); err != nil {
		return s, err
	}
	if s.orgHeader, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: "Arial", Size: 12, Bold: true},
	}); err != nil {
		return s, err
	}
	if s.summaryHeader, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 12, Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
		Alignment: center,
		Border:    thinBorder(),
	}); err != nil {
		return s, err
	}
	if s.tableHeader, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 10, Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"E2EFDA"}, Pattern: 1},
		Alignment: center,
		Border:    thinBorder(),
	}); err != nil {
		return s, err
	}
	if s.cell, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Family: "Arial", Size: 9},
		Border: thinBorder(),
	}); err != nil {
		return s, err
	}
	if s.centeredCell, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 9},
		Alignment: center,
		Border:    thinBorder(),
	}); err != nil {
		return s, err
	}
	if s.errorCell, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Family: "Arial", Size: 9},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC7CE"}, Pattern: 1},
		Border: thinBorder(),
	}); err != nil {
		return s, err
	}
	return s, nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// widthTracker records the widest content seen per column so sheets can be
// auto-fit, capped at 50 like the source report.
type widthTracker map[int]int

func (w widthTracker) observe(col int, value interface{}) {
	length := len(fmt.Sprint(value))
	if length > w[col] {
		w[col] = length
	}
}

func (w widthTracker) apply(f *excelize.File, sheet string) {
	for col, length := range w {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			continue
		}
		width := float64(length + 2)
		if width > 50 {
			width = 50
		}
		f.SetColWidth(sheet, name, name, width)
	}
}

// isCenteredColumn reports whether a column holds numeric data and is center
// aligned in the report.
func isCenteredColumn(header string) bool {
	lower := strings.ToLower(header)
	for _, keyword := range []string{"contribution", "wages", "days", "sno"} {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// BuildECRWorkbook renders one workbook holding a Combined_Data sheet across
// all files plus one structured sheet per source file.
func (r *ReportService) BuildECRWorkbook(docs []dto.ECRDocument) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := buildStyles(f)
	if err != nil {
		return nil, fmt.Errorf("failed to build styles: %w", err)
	}

	if err := r.writeCombinedSheet(f, styles, docs); err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if err := r.writeDocumentSheet(f, styles, doc); err != nil {
			return nil, err
		}
	}

	f.DeleteSheet("Sheet1")
	return f.WriteToBuffer()
}

func (r *ReportService) writeCombinedSheet(f *excelize.File, styles reportStyles, docs []dto.ECRDocument) error {
	const sheet = "Combined_Data"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	headers := append([]string{"Source_File"}, ecrTableHeaders...)
	widths := widthTracker{}

	for col, header := range headers {
		f.SetCellValue(sheet, cellName(col+1, 1), header)
		f.SetCellStyle(sheet, cellName(col+1, 1), cellName(col+1, 1), styles.tableHeader)
		widths.observe(col+1, header)
	}

	row := 2
	for _, doc := range docs {
		source := strings.TrimSuffix(doc.Filename, ".pdf")
		for _, emp := range doc.Employees {
			values := employeeCells(emp)
			values = append([]interface{}{source}, values...)
			for col, value := range values {
				cell := cellName(col+1, row)
				f.SetCellValue(sheet, cell, value)
				style := styles.cell
				if isCenteredColumn(headers[col]) {
					style = styles.centeredCell
				}
				f.SetCellStyle(sheet, cell, cell, style)
				widths.observe(col+1, value)
			}
			row++
		}
	}

	widths.apply(f, sheet)
	return nil
}

func (r *ReportService) writeDocumentSheet(f *excelize.File, styles reportStyles, doc dto.ECRDocument) error {
	sheet := sanitizeSheetName(doc.Filename)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	widths := widthTracker{}
	row := 1

	title := fmt.Sprintf("ECR Of %s for %s", doc.Header.EstablishmentCode, doc.Header.Period)
	f.SetCellValue(sheet, cellName(1, row), title)
	f.SetCellStyle(sheet, cellName(1, row), cellName(1, row), styles.title)
	f.MergeCell(sheet, cellName(1, row), cellName(8, row))
	row++

	if doc.Header.Organization != "" {
		f.SetCellValue(sheet, cellName(1, row), doc.Header.Organization)
		f.SetCellStyle(sheet, cellName(1, row), cellName(1, row), styles.orgHeader)
		f.MergeCell(sheet, cellName(1, row), cellName(8, row))
		row++
	}
	row++

	for col, header := range ecrSummaryHeaders {
		f.SetCellValue(sheet, cellName(col+1, row), header)
		f.SetCellStyle(sheet, cellName(col+1, row), cellName(col+1, row), styles.summaryHeader)
		widths.observe(col+1, header)
	}
	row++

	summaryValues := []float64{
		doc.Summary.TotalIPContribution,
		doc.Summary.TotalEmployerContribution,
		doc.Summary.TotalContribution,
		doc.Summary.TotalGovernmentContribution,
		doc.Summary.TotalMonthlyWages,
	}
	for col, value := range summaryValues {
		cell := cellName(col+1, row)
		f.SetCellValue(sheet, cell, value)
		f.SetCellStyle(sheet, cell, cell, styles.centeredCell)
		widths.observe(col+1, value)
	}
	row += 2

	for col, header := range ecrTableHeaders {
		cell := cellName(col+1, row)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, styles.tableHeader)
		widths.observe(col+1, header)
	}
	row++

	for _, emp := range doc.Employees {
		for col, value := range employeeCells(emp) {
			cell := cellName(col+1, row)
			f.SetCellValue(sheet, cell, value)
			style := styles.cell
			if isCenteredColumn(ecrTableHeaders[col]) {
				style = styles.centeredCell
			}
			f.SetCellStyle(sheet, cell, cell, style)
			widths.observe(col+1, value)
		}
		row++
	}

	row++
	if doc.Footer.PageInfo != "" {
		f.SetCellValue(sheet, cellName(1, row), doc.Footer.PageInfo)
		row++
	}
	if doc.Footer.PrintedOn != "" {
		f.SetCellValue(sheet, cellName(1, row), "Printed On: "+doc.Footer.PrintedOn)
	}

	widths.apply(f, sheet)
	return nil
}

func employeeCells(emp dto.EmployeeRecord) []interface{} {
	return []interface{}{
		emp.SNo, emp.IsDisable, emp.IPNumber, emp.IPName,
		emp.Days, emp.Wages, emp.Contribution, emp.Reason,
	}
}

// BuildChallanReport renders one report sheet with a row per processed file.
// Failed documents keep their row with the message in the Error column.
func (r *ReportService) BuildChallanReport(results []dto.ChallanResult) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "ESIC_Challan_Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name report sheet: %w", err)
	}

	styles, err := buildStyles(f)
	if err != nil {
		return nil, fmt.Errorf("failed to build styles: %w", err)
	}

	widths := widthTracker{}
	for col, header := range challanReportHeaders {
		cell := cellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, styles.tableHeader)
		widths.observe(col+1, header)
	}

	for i, result := range results {
		row := i + 2
		for col, value := range challanCells(result) {
			cell := cellName(col+1, row)
			f.SetCellValue(sheet, cell, value)
			style := styles.cell
			if col == 1 && result.Status != dto.ChallanStatusSuccess {
				style = styles.errorCell
			}
			f.SetCellStyle(sheet, cell, cell, style)
			widths.observe(col+1, value)
		}
	}

	widths.apply(f, sheet)
	return f.WriteToBuffer()
}

func challanCells(result dto.ChallanResult) []interface{} {
	if result.Status != dto.ChallanStatusSuccess {
		return []interface{}{
			result.Filename, string(result.Status),
			"Error", "Error", "Error", "Error", "Error", "Error", "Error", "Error", "Error",
			0, result.Error,
		}
	}

	fields := result.Fields
	return []interface{}{
		result.Filename, string(result.Status),
		fields.TransactionStatus, fields.EmployerCode, fields.EmployerName,
		fields.ChallanPeriod, fields.ChallanNumber, fields.ChallanCreatedDate,
		fields.ChallanSubmittedDate,
		utils.NormalizeNumeric(fields.AmountPaid).String(),
		fields.TransactionNumber,
		len(result.Tables), "",
	}
}

// sanitizeSheetName derives a sheet name from a filename within Excel's
// 31-character limit.
func sanitizeSheetName(filename string) string {
	name := strings.TrimSuffix(filename, ".pdf")
	for _, c := range []string{"[", "]", "*", "?", "/", "\\", ":"} {
		name = strings.ReplaceAll(name, c, "_")
	}
	if len(name) > 31 {
		name = name[:31]
	}
	if name == "" {
		name = "Document"
	}
	return name
}
