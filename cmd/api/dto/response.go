package dto

// ErrInternal is the only error text a client ever sees for a 500.
const ErrInternal = "internal_server_error"

// ErrorResponseDTO is the body of every error response.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"tag \"Go\" already exists"`
}
