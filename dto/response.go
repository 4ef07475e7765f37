package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ECRExtractResponse is the JSON envelope for a batch of processed ECR files.
type ECRExtractResponse struct {
	Documents      []ECRDocument `json:"documents"`
	TotalEmployees int           `json:"total_employees"`
	ProcessedAt    string        `json:"processed_at"`
}

// ChallanExtractResponse is the JSON envelope for a batch of processed challans.
type ChallanExtractResponse struct {
	Results     []ChallanResult `json:"results"`
	Successful  int             `json:"successful"`
	Failed      int             `json:"failed"`
	ProcessedAt string          `json:"processed_at"`
}
