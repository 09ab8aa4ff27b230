package dto

// MessageResponse is the body of the root and health endpoints
type MessageResponse struct {
	Message string `json:"message"`
}
