package httpserver

import (
	"net/http"

	"bookmarkhub/internal/api/handlers"

	// Registers the generated OpenAPI document
	_ "bookmarkhub/docs"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter configures the main router.
func SetupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Use(recoverer)
	r.Use(requestLogger)

	// Public Endpoints
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/info", h.GetInfo).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// mux only runs Use middleware on matched routes.
	r.NotFoundHandler = recoverer(requestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "Not found.")
	})))
	r.MethodNotAllowedHandler = recoverer(requestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})))

	return r
}
