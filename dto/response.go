package dto

// ErrorResponseDTO is the shared error payload.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"not found"`
}
