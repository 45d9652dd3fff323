// filepath: internal/api/handlers/info_handler.go
package handlers

import (
	"errors"
	"net/http"

	"bookmarkhub/internal/logging"
	"bookmarkhub/internal/services"
)

// @Summary Get service information
// @Description Retrieves the service status, version, sanitized service message, maximum sync size and whether new syncs are accepted. This is a public endpoint.
// @Tags Info
// @Produce  json
// @Success 200 {object} models.Info
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /info [get]
func (h *Handlers) GetInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.Info.GetInfo(r.Context())
	if err != nil {
		logging.Log.Errorf("GetInfo: %v", err)
		switch {
		case errors.Is(err, services.ErrAcceptanceCheckFailed):
			respondWithError(w, http.StatusServiceUnavailable, "Unable to determine whether new syncs are accepted.")
		default:
			respondWithError(w, http.StatusInternalServerError, "Service information is currently unavailable.")
		}
		return
	}
	respondWithJSON(w, http.StatusOK, info)
}
