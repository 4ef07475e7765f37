package utils

import (
	"regexp"
	"strings"

	"github.com/teamkkc2025/ESIC-Extractor/dto"
)

const organizationLabel = "Employees' State Insurance Corporation"

var (
	ecrHeaderRe     = regexp.MustCompile(`ECR Of (\d+) for (\w+\d+)`)
	summaryAmountRe = regexp.MustCompile(`[\d,]+\.?\d*`)
	rowStartRe      = regexp.MustCompile(`^\d+\s+-\s+\d{10}`)
	ipTokenRe       = regexp.MustCompile(`^\d{10}$`)
	leadingDigitRe  = regexp.MustCompile(`^\d+`)
	allDigitsRe     = regexp.MustCompile(`^\d+$`)
	leadingAlphaRe  = regexp.MustCompile(`^[A-Za-z]+`)
	printedOnRe     = regexp.MustCompile(`Printed On:\s*([^\n]+)`)
	pageInfoRe      = regexp.MustCompile(`Page\s+(\d+)\s+of\s+(\d+)`)
)

var monthNames = map[string]string{
	"jan": "January",
	"feb": "February",
	"mar": "March",
	"apr": "April",
	"may": "May",
	"jun": "June",
	"jul": "July",
	"aug": "August",
	"sep": "September",
	"oct": "October",
	"nov": "November",
	"dec": "December",
}

// HeaderAccumulator threads the header/summary state through the per-page
// scan of one document. Identity fields are first-write-wins; the five totals
// are last-full-match-wins and never overwritten with partial data.
type HeaderAccumulator struct {
	Header  dto.HeaderInfo
	Summary dto.SummaryTotals
}

// ScanPage applies the three header triggers to every line of a page. The
// triggers are independent and order-insensitive within the page.
func (a *HeaderAccumulator) ScanPage(lines []string) {
	for i, line := range lines {
		switch {
		case strings.Contains(line, "ECR Of"):
			if a.Header.EstablishmentCode != "" {
				continue
			}
			if m := ecrHeaderRe.FindStringSubmatch(line); m != nil {
				a.Header.EstablishmentCode = m[1]
				a.Header.Period = m[2]
				a.Header.Month = MonthFromPeriod(m[2])
			}

		case strings.Contains(line, organizationLabel):
			if a.Header.Organization == "" {
				a.Header.Organization = strings.TrimSpace(line)
			}

		case strings.Contains(line, "Total IP Contribution") && strings.Contains(line, "Total Employer Contribution"):
			next := ""
			if i+1 < len(lines) {
				next = lines[i+1]
			}
			amounts := summaryAmountRe.FindAllString(next, -1)
			if len(amounts) < 5 {
				continue
			}
			a.Summary = dto.SummaryTotals{
				TotalIPContribution:         NormalizeNumeric(amounts[0]).Float(),
				TotalEmployerContribution:   NormalizeNumeric(amounts[1]).Float(),
				TotalContribution:           NormalizeNumeric(amounts[2]).Float(),
				TotalGovernmentContribution: NormalizeNumeric(amounts[3]).Float(),
				TotalMonthlyWages:           NormalizeNumeric(amounts[4]).Float(),
			}
		}
	}
}

// MonthFromPeriod derives a month name from the leading alphabetic run of a
// period token like "Apr2024". An unrecognized abbreviation passes through
// as-is; a token with no alphabetic run yields the sentinel.
func MonthFromPeriod(period string) string {
	abbrev := leadingAlphaRe.FindString(period)
	if abbrev == "" {
		return dto.NotFound
	}
	if full, ok := monthNames[strings.ToLower(abbrev)]; ok {
		return full
	}
	return abbrev
}

// SegmentRows groups the raw lines of one page into one string per logical
// employee row. A row starts on the "serial - ipnumber" anchor shape; lines
// carrying an embedded 10-digit token past position zero open a new row, any
// other digit-leading line is a wrapped continuation of the previous row.
// A footer line ("page"/"printed") ends collection for the page.
func SegmentRows(lines []string) []string {
	var rows []string
	inTable := false

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case rowStartRe.MatchString(line):
			inTable = true
			rows = append(rows, line)

		case inTable && leadingDigitRe.MatchString(line):
			if hasEmbeddedIPNumber(line) {
				rows = append(rows, line)
			} else if len(rows) > 0 {
				rows[len(rows)-1] += " " + line
			}

		case inTable && isFooterLine(line):
			return rows
		}
	}
	return rows
}

func hasEmbeddedIPNumber(line string) bool {
	for i, part := range strings.Fields(line) {
		if i > 0 && ipTokenRe.MatchString(part) {
			return true
		}
	}
	return false
}

func isFooterLine(line string) bool {
	lower := strings.ToLower(line)
	return strings.HasPrefix(lower, "page") || strings.HasPrefix(lower, "printed")
}

// ParseFooter captures the printed-on timestamp and page info from raw page
// text. First occurrence wins across pages.
func ParseFooter(text string, footer *dto.FooterInfo) {
	if footer.PrintedOn == "" {
		if m := printedOnRe.FindStringSubmatch(text); m != nil {
			footer.PrintedOn = strings.TrimSpace(m[1])
		}
	}
	if footer.PageInfo == "" {
		if m := pageInfoRe.FindStringSubmatch(text); m != nil {
			footer.PageInfo = "Page " + m[1] + " of " + m[2]
		}
	}
}

// tokenTag classifies one post-anchor token.
type tokenTag int

const (
	tagName tokenTag = iota
	tagNumeric
	tagKeyword
)

var reasonKeywordRe = regexp.MustCompile(`(?i)^(No|Work|Left|Service|Servic|-|Absent)$`)

func classifyToken(token string) tokenTag {
	if isPlainNumber(token) {
		return tagNumeric
	}
	if reasonKeywordRe.MatchString(token) {
		return tagKeyword
	}
	return tagName
}

// ParseEmployeeRow extracts one employee record from a merged row string.
// The 10-digit IP number is the anchor: everything before it is serial number
// and disability marker, the longest run of name-tagged tokens after it is
// the name, and the remainder is numeric/reason data. Rows without a valid
// anchor are rejected outright.
func ParseEmployeeRow(row string, summary dto.SummaryTotals) (dto.EmployeeRecord, bool) {
	parts := strings.Fields(strings.TrimSpace(row))
	if len(parts) < 6 {
		return dto.EmployeeRecord{}, false
	}

	ipIndex := -1
	for i, part := range parts {
		if ipTokenRe.MatchString(part) {
			ipIndex = i
			break
		}
	}
	if ipIndex < 2 {
		return dto.EmployeeRecord{}, false
	}

	sno := "1"
	if allDigitsRe.MatchString(parts[0]) {
		sno = parts[0]
	}
	isDisable := parts[ipIndex-1]

	// Tag every post-anchor token, then take the longest name prefix. Once a
	// numeric or keyword token appears, no later token rejoins the name.
	var nameParts, dataParts []string
	collecting := true
	for _, part := range parts[ipIndex+1:] {
		tag := classifyToken(part)
		if collecting && tag == tagName {
			nameParts = append(nameParts, part)
			continue
		}
		collecting = false
		if tag == tagNumeric {
			dataParts = append(dataParts, strings.ReplaceAll(part, ",", ""))
		} else {
			dataParts = append(dataParts, part)
		}
	}

	name := "UNKNOWN"
	if len(nameParts) > 0 {
		name = strings.Join(nameParts, " ")
	}

	days, wages, contribution, reason := assignRowData(dataParts)

	record := dto.EmployeeRecord{
		SNo:           NormalizeNumeric(sno).Int(),
		IsDisable:     isDisable,
		IPNumber:      parts[ipIndex],
		IPName:        name,
		Days:          NormalizeNumeric(days).Int(),
		Wages:         NormalizeNumeric(ensureDecimal(wages)).Float(),
		Contribution:  NormalizeNumeric(ensureDecimal(contribution)).Float(),
		Reason:        reason,
		SummaryTotals: summary,
	}
	return record, true
}

// assignRowData splits trailing data tokens into numeric and reason lists and
// assigns the numeric ones positionally by count: one number is a lone
// contribution, two are wages+contribution, three or more are
// days+wages+contribution with extras ignored.
func assignRowData(dataParts []string) (days, wages, contribution, reason string) {
	days, wages, contribution, reason = "0", "0.00", "0.00", "-"

	var numeric, text []string
	for _, part := range dataParts {
		if isPlainNumber(part) {
			numeric = append(numeric, part)
		} else {
			text = append(text, part)
		}
	}

	switch {
	case len(numeric) == 1:
		contribution = numeric[0]
	case len(numeric) == 2:
		wages, contribution = numeric[0], numeric[1]
	case len(numeric) >= 3:
		days, wages, contribution = numeric[0], numeric[1], numeric[2]
	}

	if len(text) > 0 {
		joined := strings.TrimSpace(strings.Join(text, " "))
		switch {
		case strings.Contains(joined, "No") && strings.Contains(joined, "Work"):
			reason = "No Work"
		case strings.Contains(joined, "Left") && (strings.Contains(joined, "Service") || strings.Contains(joined, "Servic")):
			reason = "Left Service"
		case joined != "" && joined != "-":
			reason = joined
		}
	}
	return days, wages, contribution, reason
}
