package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teamkkc2025/ESIC-Extractor/dto"
)

func TestMonthFromPeriod(t *testing.T) {
	assert.Equal(t, "April", MonthFromPeriod("Apr2024"))
	assert.Equal(t, "December", MonthFromPeriod("DEC2023"))

	// Unrecognized abbreviations pass through instead of degrading to the
	// sentinel; only a period with no alphabetic run at all yields it.
	assert.Equal(t, "Xyz", MonthFromPeriod("Xyz2024"))
	assert.Equal(t, dto.NotFound, MonthFromPeriod("042024"))
}

func TestHeaderAccumulatorTriggers(t *testing.T) {
	var acc HeaderAccumulator
	acc.ScanPage([]string{
		"Employees' State Insurance Corporation",
		"ECR Of 12345678901234567 for Apr2024",
		"Total IP Contribution Total Employer Contribution Total Contribution Total Government Contribution Total Monthly Wages",
		"12,345.00 23,456.00 35,801.00 1,234.00 4,56,789.00",
	})

	assert.Equal(t, "12345678901234567", acc.Header.EstablishmentCode)
	assert.Equal(t, "Apr2024", acc.Header.Period)
	assert.Equal(t, "April", acc.Header.Month)
	assert.Equal(t, "Employees' State Insurance Corporation", acc.Header.Organization)
	assert.Equal(t, 12345.0, acc.Summary.TotalIPContribution)
	assert.Equal(t, 456789.0, acc.Summary.TotalMonthlyWages)
}

func TestHeaderAccumulatorFirstWriteWins(t *testing.T) {
	var acc HeaderAccumulator
	acc.ScanPage([]string{"ECR Of 111 for Apr2024"})
	acc.ScanPage([]string{"ECR Of 222 for May2024"})

	assert.Equal(t, "111", acc.Header.EstablishmentCode)
	assert.Equal(t, "Apr2024", acc.Header.Period)
}

func TestHeaderAccumulatorPartialTotalsIgnored(t *testing.T) {
	var acc HeaderAccumulator
	acc.ScanPage([]string{
		"Total IP Contribution Total Employer Contribution Total Contribution Total Government Contribution Total Monthly Wages",
		"100.00 200.00 300.00 0.00 10000.00",
	})
	// A later partial match must not clobber the captured totals.
	acc.ScanPage([]string{
		"Total IP Contribution Total Employer Contribution Total Contribution Total Government Contribution Total Monthly Wages",
		"999.00 888.00",
	})

	assert.Equal(t, 100.0, acc.Summary.TotalIPContribution)
	assert.Equal(t, 10000.0, acc.Summary.TotalMonthlyWages)
}

func TestSegmentRowsMergesContinuations(t *testing.T) {
	rows := SegmentRows([]string{
		"SNo Is Disable IP Number IP Name Days Wages Contribution",
		"1 - 1234567890 RAM KUMAR 26",
		"15000.00 1200.00",
		"2 SITA 9876543210 DEVI 20 12000.00 960.00",
		"Page 1 of 2",
		"3 - 5555555555 IGNORED AFTER FOOTER",
	})

	assert.Equal(t, []string{
		"1 - 1234567890 RAM KUMAR 26 15000.00 1200.00",
		"2 SITA 9876543210 DEVI 20 12000.00 960.00",
	}, rows)
}

func TestSegmentRowsIgnoresPreambleNumbers(t *testing.T) {
	// Digit-leading lines before the first row-start anchor are not rows.
	rows := SegmentRows([]string{
		"12345.00 678.00",
		"1 - 1234567890 RAM KUMAR 26 15000.00 1200.00",
	})
	assert.Len(t, rows, 1)
}

func TestParseEmployeeRow(t *testing.T) {
	record, ok := ParseEmployeeRow("1 - 1234567890 RAM KUMAR 26 15000.00 1200.00", dto.SummaryTotals{})

	assert.True(t, ok)
	assert.Equal(t, 1, record.SNo)
	assert.Equal(t, "-", record.IsDisable)
	assert.Equal(t, "1234567890", record.IPNumber)
	assert.Equal(t, "RAM KUMAR", record.IPName)
	assert.Equal(t, 26, record.Days)
	assert.Equal(t, 15000.00, record.Wages)
	assert.Equal(t, 1200.00, record.Contribution)
	assert.Equal(t, "-", record.Reason)
}

func TestParseEmployeeRowIdempotent(t *testing.T) {
	row := "7 - 9998887776 LAKSHMI NARAYAN 30 18,000.00 1,350.00"
	first, ok1 := ParseEmployeeRow(row, dto.SummaryTotals{TotalContribution: 99})
	second, ok2 := ParseEmployeeRow(row, dto.SummaryTotals{TotalContribution: 99})

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)
	assert.Equal(t, 99.0, first.TotalContribution)
}

func TestParseEmployeeRowRejects(t *testing.T) {
	// Too few tokens.
	_, ok := ParseEmployeeRow("1 - 1234567890", dto.SummaryTotals{})
	assert.False(t, ok)

	// No 10-digit anchor.
	_, ok = ParseEmployeeRow("1 - 12345 RAM KUMAR 26 15000.00", dto.SummaryTotals{})
	assert.False(t, ok)

	// Anchor too early: no room for serial number and disability marker.
	_, ok = ParseEmployeeRow("1 1234567890 RAM KUMAR 26 15000.00", dto.SummaryTotals{})
	assert.False(t, ok)
}

func TestParseEmployeeRowNumericAssignment(t *testing.T) {
	// One number is a lone contribution.
	record, ok := ParseEmployeeRow("1 - 1234567890 RAM KUMAR 1200.00 extra", dto.SummaryTotals{})
	assert.True(t, ok)
	assert.Equal(t, 0, record.Days)
	assert.Equal(t, 0.0, record.Wages)
	assert.Equal(t, 1200.0, record.Contribution)

	// Two numbers are wages and contribution.
	record, _ = ParseEmployeeRow("2 - 1234567890 RAM KUMAR 15000.00 1200.00", dto.SummaryTotals{})
	assert.Equal(t, 0, record.Days)
	assert.Equal(t, 15000.0, record.Wages)
	assert.Equal(t, 1200.0, record.Contribution)

	// Beyond three, extras are ignored.
	record, _ = ParseEmployeeRow("3 - 1234567890 RAM KUMAR 26 15000.00 1200.00 77.00", dto.SummaryTotals{})
	assert.Equal(t, 26, record.Days)
	assert.Equal(t, 15000.0, record.Wages)
	assert.Equal(t, 1200.0, record.Contribution)
}

func TestParseEmployeeRowReasons(t *testing.T) {
	record, _ := ParseEmployeeRow("1 - 1234567890 SITA DEVI 0 0.00 0.00 No Work", dto.SummaryTotals{})
	assert.Equal(t, "No Work", record.Reason)

	record, _ = ParseEmployeeRow("2 - 1234567890 SITA DEVI 0 0.00 0.00 Left Servic", dto.SummaryTotals{})
	assert.Equal(t, "Left Service", record.Reason)

	record, _ = ParseEmployeeRow("3 - 1234567890 SITA DEVI 0 0.00 0.00 Absent", dto.SummaryTotals{})
	assert.Equal(t, "Absent", record.Reason)
}

func TestParseEmployeeRowUnknownName(t *testing.T) {
	// A keyword right after the anchor leaves no name tokens.
	record, ok := ParseEmployeeRow("1 - 1234567890 - 26 15000.00 1200.00", dto.SummaryTotals{})
	assert.True(t, ok)
	assert.Equal(t, "UNKNOWN", record.IPName)
}

func TestParseFooter(t *testing.T) {
	var footer dto.FooterInfo
	ParseFooter("some text\nPrinted On: 01/05/2024 10:30\nPage 1 of 3\n", &footer)

	assert.Equal(t, "01/05/2024 10:30", footer.PrintedOn)
	assert.Equal(t, "Page 1 of 3", footer.PageInfo)
}
