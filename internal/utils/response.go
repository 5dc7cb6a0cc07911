package utils

import (
	"encoding/json"
	"net/http"

	"PAKET_WISATA_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes the fixed {error} body used for server-side failures
func WriteErrorResponse(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: message})
}

// WriteMessageResponse writes a {message} body
func WriteMessageResponse(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, dto.MessageResponse{Message: message})
}
