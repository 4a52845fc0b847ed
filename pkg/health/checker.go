// Package health exposes liveness and readiness checks over the
// service's external dependencies.
package health

import (
	"context"
	"time"
)

// DefaultTimeout bounds a single dependency check.
const DefaultTimeout = 5 * time.Second

// Status of a checked component.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Result is the outcome of one check.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Checker probes one dependency.
type Checker interface {
	// Name identifies the component being checked.
	Name() string
	// Check probes the component within the context deadline.
	Check(ctx context.Context) Result
}
