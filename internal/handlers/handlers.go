package handlers

import (
	"encoding/json"
	"mime"
	"net/http"
)

// errorResponse is the JSON error body shared by all routes
// swagger:model errorResponse
type errorResponse struct {
	// Error message
	// example: Error fetching posts
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}

// isJSON reports whether the request body is JSON-encoded. Form-encoded
// bodies are the alternative on every route that accepts both.
func isJSON(r *http.Request) bool {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return ct == "application/json"
}
