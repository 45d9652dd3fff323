// internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"net/http"

	"bookmarkhub/internal/logging"
)

const marshalFailureBody = `{"error":"Failed to encode response."}`

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON encodes payload before touching the header so a marshal
// failure can still turn into a 500.
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logging.Log.Errorf("Failed to encode %T response: %v", payload, err)
		code = http.StatusInternalServerError
		body = []byte(marshalFailureBody)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		logging.Log.Debugf("Failed to write response: %v", err)
	}
}
