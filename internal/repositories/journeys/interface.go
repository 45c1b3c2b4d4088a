// Package journeys stores breadcrumb trails of family navigation
package journeys

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/historical-personas/internal/entities"
)

// Repository defines journey persistence
type Repository interface {
	Create(ctx context.Context, journey *entities.Journey) error
	Get(ctx context.Context, id string) (*entities.Journey, error)
	Update(ctx context.Context, journey *entities.Journey) error
	// ListByRoot returns the journeys that started at a persona
	ListByRoot(ctx context.Context, rootPersonaID string) ([]*entities.Journey, error)
}
