package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Student suspended successfully"`
}

// NewSuccessResponse creates a SuccessResponse carrying message
func NewSuccessResponse(message string) SuccessResponse {
	return SuccessResponse{Success: true, Message: message}
}

// HealthResponse reports service and database health
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Database string `json:"database" example:"connected"`
}
