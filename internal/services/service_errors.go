// filepath: internal/services/service_errors.go
package services

import "errors"

// Standard errors returned by the service layer.
var (
	ErrConfigurationUnavailable = errors.New("configuration unavailable")
	ErrAcceptanceCheckFailed    = errors.New("acceptance check failed")
)
