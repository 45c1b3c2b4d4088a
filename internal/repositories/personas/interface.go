// Package personas stores generated personas. A stored persona is never
// updated; navigation creates a new one.
package personas

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=interface.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/historical-personas/internal/entities"
)

// Repository defines persona persistence
type Repository interface {
	// Create stores a new persona. The ID must be set and unused.
	Create(ctx context.Context, persona *entities.Persona) error

	// Get retrieves a persona by ID
	Get(ctx context.Context, id string) (*entities.Persona, error)

	// List returns every stored persona, newest first
	List(ctx context.Context) ([]*entities.Persona, error)

	// Delete removes a persona
	Delete(ctx context.Context, id string) error
}

// TimeProvider stamps CreatedAt
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the wall clock in UTC
type RealTimeProvider struct{}

// Now returns the current UTC time
func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
