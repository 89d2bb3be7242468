// Package middleware holds the HTTP middleware shared by the API and the
// notifier's metrics endpoint.
package middleware

import (
	"encoding/json"
	"net/http"
)

// Middleware is a function that wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes the same JSON error shape the REST handlers use.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: code, Message: message})
}
