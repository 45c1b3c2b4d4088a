// Package restorespecs holds one-shot character requests, such as ones
// decoded from a shared link, until they are consumed.
package restorespecs

import (
	"context"
	"time"

	"github.com/KirkDiggler/historical-personas/internal/entities"
)

// DefaultTTL is how long an unconsumed spec is kept
const DefaultTTL = 24 * time.Hour

// Repository defines restore spec persistence
type Repository interface {
	// Save stores spec under its ID until the TTL runs out
	Save(ctx context.Context, spec *entities.RestoreSpec) error

	// Get reads a spec without consuming it
	Get(ctx context.Context, id string) (*entities.RestoreSpec, error)

	// Consume returns the spec and removes it. A second call returns NotFound.
	Consume(ctx context.Context, id string) (*entities.RestoreSpec, error)
}

// Clock lets tests control expiry
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
