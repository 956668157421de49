package dto

// Pagination describes the optional pagination block of the success envelope.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// SuccessResponse is the envelope for every successful API response.
type SuccessResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ErrorResponse is the envelope for failed API responses. Errors is a list of
// messages for business/auth failures, or a field→messages map for validation
// failures.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Errors  interface{} `json:"errors"`
}

// NewSuccessResponse wraps data in the success envelope.
func NewSuccessResponse(data interface{}) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

// NewErrorResponse wraps one or more error messages in the failure envelope.
func NewErrorResponse(messages ...string) ErrorResponse {
	return ErrorResponse{Success: false, Errors: messages}
}

// NewValidationErrorResponse wraps a field→messages map in the failure envelope.
func NewValidationErrorResponse(fieldErrors map[string][]string) ErrorResponse {
	return ErrorResponse{Success: false, Errors: fieldErrors}
}
