package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// APIError is the error envelope returned by every failing endpoint.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RenderJSON writes data as a JSON response. Dashboard views poll
// these endpoints, so responses are marked uncacheable.
func RenderJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[API] failed to encode response: %v", err)
	}
}

// RenderError writes an APIError with the given status code.
func RenderError(w http.ResponseWriter, code int, message string) {
	RenderJSON(w, code, APIError{Code: code, Message: message})
}
