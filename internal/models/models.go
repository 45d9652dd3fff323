// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

// APIStatus is the service state reported to clients.
// The numeric values are part of the wire format.
type APIStatus int

const (
	APIStatusOnline  APIStatus = 1
	APIStatusOffline APIStatus = 2
)

func (s APIStatus) String() string {
	switch s {
	case APIStatusOnline:
		return "online"
	case APIStatusOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// Info represents general information about the service.
type Info struct {
	Status            APIStatus `json:"status" enums:"1,2"`
	Message           string    `json:"message"`
	Version           string    `json:"version"`
	MaxSyncSize       int64     `json:"maxSyncSize"`
	AcceptingNewSyncs bool      `json:"acceptingNewSyncs"`
	Location          string    `json:"location"`
}
