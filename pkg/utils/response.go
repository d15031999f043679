package utils

// ErrorResponse represents a standard error response format
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response format
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationErrorResponse represents a validation error with field-specific details
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
