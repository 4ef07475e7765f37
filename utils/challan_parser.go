package utils

import (
	"regexp"
	"strings"

	"github.com/teamkkc2025/ESIC-Extractor/dto"
)

// requiredKeywords is the challan-family gate vocabulary. A document is
// accepted when at least 3 of the 5 terms appear as substrings.
var requiredKeywords = []string{"esic", "challan", "employer", "transaction", "amount"}

// IsESICChallan reports whether the document text passes the keyword gate.
func IsESICChallan(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	found := 0
	for _, keyword := range requiredKeywords {
		if strings.Contains(lower, keyword) {
			found++
		}
	}
	return found >= 3
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p)
	}
	return compiled
}

// fieldRule binds one challan field to its ordered fallback pattern list.
// Patterns are tried in listed order against the whole document text; the
// first match wins and its first capture group is the value.
type fieldRule struct {
	field    func(*dto.ChallanFields) *string
	patterns []*regexp.Regexp
}

var challanFieldRules = []fieldRule{
	{
		field: func(f *dto.ChallanFields) *string { return &f.TransactionStatus },
		patterns: compileAll(
			`status[:\s]*([^\n\r]+)`,
			`transaction\s*status[:\s]*([^\n\r]+)`,
			`payment\s*status[:\s]*([^\n\r]+)`,
		),
	},
	{
		field: func(f *dto.ChallanFields) *string { return &f.EmployerCode },
		patterns: compileAll(
			`employer['s\s]*code[:\s]*(\d+)`,
			`code\s*no[:\s]*(\d+)`,
			`employer\s*no[:\s]*(\d+)`,
		),
	},
	{
		field: func(f *dto.ChallanFields) *string { return &f.EmployerName },
		patterns: compileAll(
			`employer['s\s]*name[:\s]*([^\n\r]+)`,
			`name\s*of\s*employer[:\s]*([^\n\r]+)`,
			`establishment[:\s]*([^\n\r]+)`,
		),
	},
	{
		field: func(f *dto.ChallanFields) *string { return &f.ChallanPeriod },
		patterns: compileAll(
			`challan\s*period[:\s]*([^\n\r]+)`,
			`period[:\s]*([^\n\r]+)`,
			`contribution\s*period[:\s]*([^\n\r]+)`,
		),
	},
	{
		field: func(f *dto.ChallanFields) *string { return &f.ChallanNumber },
		patterns: compileAll(
			`challan\s*no[:\s]*([A-Z0-9\-\/]+)`,
			`challan\s*number[:\s]*([A-Z0-9\-\/]+)`,
			`receipt\s*no[:\s]*([A-Z0-9\-\/]+)`,
		),
	},
	{
		field: func(f *dto.ChallanFields) *string { return &f.ChallanCreatedDate },
		patterns: compileAll(
			`created\s*date[:\s]*(\d{1,2}[-\/]\d{1,2}[-\/]\d{4})`,
			`generation\s*date[:\s]*(\d{1,2}[-\/]\d{1,2}[-\/]\d{4})`,
			`date\s*of\s*creation[:\s]*(\d{1,2}[-\/]\d{1,2}[-\/]\d{4})`,
		),
	},
	{
		field: func(f *dto.ChallanFields) *string { return &f.ChallanSubmittedDate },
		patterns: compileAll(
			`submitted\s*date[:\s]*(\d{1,2}[-\/]\d{1,2}[-\/]\d{4})`,
			`payment\s*date[:\s]*(\d{1,2}[-\/]\d{1,2}[-\/]\d{4})`,
			`transaction\s*date[:\s]*(\d{1,2}[-\/]\d{1,2}[-\/]\d{4})`,
		),
	},
	{
		field: func(f *dto.ChallanFields) *string { return &f.AmountPaid },
		patterns: compileAll(
			`amount\s*paid[:\s]*₹?\s*([0-9,]+\.?\d*)`,
			`total\s*amount[:\s]*₹?\s*([0-9,]+\.?\d*)`,
			`paid\s*amount[:\s]*₹?\s*([0-9,]+\.?\d*)`,
		),
	},
}

// transactionNumberPatterns is the resolver's ordered chain, most specific
// first. The final pattern is the loose last resort and is excluded from
// phase 1.
var transactionNumberPatterns = compileAll(
	`transaction\s*(?:no|number|id)[:\s]*([A-Z0-9\-\/\.]+)`,
	`txn\s*(?:no|number|id)[:\s]*([A-Z0-9\-\/\.]+)`,
	`reference\s*(?:no|number|id)[:\s]*([A-Z0-9\-\/\.]+)`,
	`utr\s*(?:no|number)[:\s]*([A-Z0-9\-\/\.]+)`,
	`bank\s*reference\s*(?:no|number)[:\s]*([A-Z0-9\-\/\.]+)`,
	`payment\s*reference\s*(?:no|number)[:\s]*([A-Z0-9\-\/\.]+)`,
	`ref\s*(?:no|number)[:\s]*([A-Z0-9\-\/\.]+)`,
	`acknowledgment\s*(?:no|number)[:\s]*([A-Z0-9\-\/\.]+)`,
	`ack\s*(?:no|number)[:\s]*([A-Z0-9\-\/\.]+)`,
	`receipt\s*(?:no|number)[:\s]*([A-Z0-9\-\/\.]+)`,
	`grn\s*(?:no|number)[:\s]*([A-Z0-9\-\/\.]+)`,
	`(?:^|\n)\s*([A-Z]{2,}\d{6,}|\d{10,}[A-Z]+|\d{12,})\s*(?:\n|$)`,
	`(?:transaction|txn|ref|reference)[\s\|]*([A-Z0-9]{8,})`,
	`([A-Z0-9]{10,20})`,
)

var transactionIndicators = []string{
	"transaction", "txn", "reference", "ref", "utr", "acknowledgment",
	"ack", "receipt", "grn", "bank", "payment",
}

var (
	lineCandidateRe = regexp.MustCompile(`(?i)[A-Z0-9]{8,20}`)
	looseCodeRe     = regexp.MustCompile(`(?i)\b[A-Z0-9]{10,20}\b`)
)

// transactionFalsePositives are domain words a real transaction number never
// contains.
var transactionFalsePositives = []string{
	"esic", "challan", "employer", "employee", "amount", "total",
	"period", "month", "year", "date", "time", "status", "paid",
}

// ExtractChallanFields applies the field rule table and the transaction
// number resolver against the full document text. Fields without a match
// carry the NotFound sentinel.
func ExtractChallanFields(text string) dto.ChallanFields {
	var fields dto.ChallanFields
	for _, rule := range challanFieldRules {
		value := dto.NotFound
		for _, pattern := range rule.patterns {
			if m := pattern.FindStringSubmatch(text); m != nil {
				if v := strings.TrimSpace(m[1]); v != "" {
					value = v
					break
				}
			}
		}
		*rule.field(&fields) = value
	}
	fields.TransactionNumber = ResolveTransactionNumber(text)
	return fields
}

// ResolveTransactionNumber runs the three-phase fallback search. Phase 1
// tries the specific label-anchored patterns, phase 2 scans lines holding a
// transaction indicator word, phase 3 sweeps the whole document for
// standalone codes. The first validated candidate wins.
func ResolveTransactionNumber(text string) string {
	for _, pattern := range transactionNumberPatterns[:len(transactionNumberPatterns)-1] {
		if m := pattern.FindStringSubmatch(text); m != nil {
			candidate := strings.TrimSpace(m[1])
			if IsValidTransactionNumber(candidate) {
				return candidate
			}
		}
	}

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, indicator := range transactionIndicators {
			if !strings.Contains(lower, indicator) {
				continue
			}
			for _, candidate := range lineCandidateRe.FindAllString(line, -1) {
				if IsValidTransactionNumber(candidate) {
					return candidate
				}
			}
		}
	}

	for _, candidate := range looseCodeRe.FindAllString(text, -1) {
		if IsValidTransactionNumber(candidate) {
			return candidate
		}
	}

	return dto.NotFound
}

// IsValidTransactionNumber filters resolver candidates: long enough, free of
// domain vocabulary, and either mixed letters+digits or a 12+ digit run.
func IsValidTransactionNumber(candidate string) bool {
	if len(candidate) < 8 {
		return false
	}

	lower := strings.ToLower(candidate)
	for _, fp := range transactionFalsePositives {
		if strings.Contains(lower, fp) {
			return false
		}
	}

	hasLetter, hasDigit := false, false
	for _, c := range candidate {
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			hasLetter = true
		}
	}

	if hasLetter && hasDigit {
		return true
	}
	return hasDigit && !hasLetter && len(candidate) >= 12
}

var (
	tableLineRe = regexp.MustCompile(`\s+\d+\.\d{2}\s+|\s+₹\s*\d+`)
	cellSplitRe = regexp.MustCompile(`\s{2,}`)
)

// ExtractTableFragments collects table-shaped lines (monetary columns with at
// least three cells) and splits them on 2+ space runs into cell rows.
func ExtractTableFragments(text string) [][][]string {
	var fragment [][]string
	for _, line := range strings.Split(text, "\n") {
		if !tableLineRe.MatchString(line) || len(strings.Fields(line)) < 3 {
			continue
		}
		var row []string
		for _, cell := range cellSplitRe.Split(line, -1) {
			if cell = strings.TrimSpace(cell); cell != "" {
				row = append(row, cell)
			}
		}
		if len(row) > 0 {
			fragment = append(fragment, row)
		}
	}
	if fragment == nil {
		return nil
	}
	return [][][]string{fragment}
}
