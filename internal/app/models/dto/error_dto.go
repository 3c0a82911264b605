package dto

// Messages used in error envelopes
const (
	MessageConnectionFailed = "Database connection failed"
	MessageStudentNotFound  = "Student not found"
	MessageInvalidStudentID = "Invalid student ID"
	DatabaseErrorPrefix     = "Database error: "
	ServerErrorPrefix       = "Server error: "
	InvalidBodyPrefix       = "Invalid request body: "
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error string `json:"error" example:"Student not found"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
