package dto

// CreatePaketWisataResponse is returned after a successful insert
type CreatePaketWisataResponse struct {
	Message    string `json:"message"`
	InsertedID int64  `json:"insertedId"`
}

// MessageResponse carries a single confirmation or not-found message
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
