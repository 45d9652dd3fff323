package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookmarkhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Run("Encodes Payload", func(t *testing.T) {
		rr := httptest.NewRecorder()
		respondWithJSON(rr, http.StatusOK, models.Info{Status: models.APIStatusOnline, Location: "gb"})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))

		var got models.Info
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, models.APIStatusOnline, got.Status)
		assert.Equal(t, "gb", got.Location)
	})

	t.Run("Unencodable Payload", func(t *testing.T) {
		rr := httptest.NewRecorder()
		respondWithJSON(rr, http.StatusOK, map[string]any{"ch": make(chan int)})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Failed to encode response.", body.Error)
	})

	t.Run("Error Shape", func(t *testing.T) {
		rr := httptest.NewRecorder()
		respondWithError(rr, http.StatusServiceUnavailable, "Service unavailable.")

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.JSONEq(t, `{"error":"Service unavailable."}`, rr.Body.String())
	})
}
