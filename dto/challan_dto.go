package dto

type ChallanStatus string

const (
	ChallanStatusSuccess ChallanStatus = "success"
	ChallanStatusNotESIC ChallanStatus = "not_esic"
	ChallanStatusError   ChallanStatus = "error"
)

// NotFound is the sentinel placed in any challan field whose pattern chain
// produced no match. Distinct from a genuinely empty value.
const NotFound = "Not Found"

// ChallanFields are the nine extracted challan fields. Each is either the
// matched string or the NotFound sentinel; no numeric coercion happens here.
type ChallanFields struct {
	TransactionStatus    string `json:"transaction_status"`
	EmployerCode         string `json:"employer_code"`
	EmployerName         string `json:"employer_name"`
	ChallanPeriod        string `json:"challan_period"`
	ChallanNumber        string `json:"challan_number"`
	ChallanCreatedDate   string `json:"challan_created_date"`
	ChallanSubmittedDate string `json:"challan_submitted_date"`
	AmountPaid           string `json:"amount_paid"`
	TransactionNumber    string `json:"transaction_number"`
}

// ChallanResult is the outcome for one uploaded challan file. Fields and
// Tables are populated only when Status is success; Error only otherwise.
type ChallanResult struct {
	Filename string        `json:"filename"`
	Status   ChallanStatus `json:"status"`
	Fields   ChallanFields `json:"fields,omitempty"`
	Tables   [][][]string  `json:"tables,omitempty"`
	Error    string        `json:"error,omitempty"`
}
