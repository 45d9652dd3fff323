// filepath: internal/api/handlers/main.go
package handlers

import (
	"bookmarkhub/internal/services"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	Info services.InfoService
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(info services.InfoService) *Handlers {
	return &Handlers{
		Info: info,
	}
}
