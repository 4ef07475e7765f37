package dto

// HeaderInfo holds the per-document identity fields captured from the first
// page carrying the "ECR Of" header line. First write wins; later pages never
// overwrite fields that are already set.
type HeaderInfo struct {
	EstablishmentCode string `json:"establishment_code"`
	Period            string `json:"period"`
	Month             string `json:"month"`
	Organization      string `json:"organization"`
}

// SummaryTotals are the five aggregates printed under the totals label line.
// They are copied by value into every employee record of the document.
type SummaryTotals struct {
	TotalIPContribution         float64 `json:"total_ip_contribution"`
	TotalEmployerContribution   float64 `json:"total_employer_contribution"`
	TotalContribution           float64 `json:"total_contribution"`
	TotalGovernmentContribution float64 `json:"total_government_contribution"`
	TotalMonthlyWages           float64 `json:"total_monthly_wages"`
}

// EmployeeRecord is one parsed contribution row. IPNumber is always exactly
// 10 digits; rows that fail to produce one are dropped, never emitted partial.
type EmployeeRecord struct {
	SNo          int     `json:"sno"`
	IsDisable    string  `json:"is_disable"`
	IPNumber     string  `json:"ip_number"`
	IPName       string  `json:"ip_name"`
	Days         int     `json:"days"`
	Wages        float64 `json:"wages"`
	Contribution float64 `json:"contribution"`
	Reason       string  `json:"reason"`

	SummaryTotals
}

type FooterInfo struct {
	PrintedOn string `json:"printed_on,omitempty"`
	PageInfo  string `json:"page_info,omitempty"`
}

// ECRDocument is the full extraction result for one uploaded ECR file.
type ECRDocument struct {
	Filename  string           `json:"filename"`
	Header    HeaderInfo       `json:"header"`
	Summary   SummaryTotals    `json:"summary"`
	Employees []EmployeeRecord `json:"employees"`
	Footer    FooterInfo       `json:"footer"`
}
