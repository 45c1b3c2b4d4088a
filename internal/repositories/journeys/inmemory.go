package journeys

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
)

// InMemoryRepository keeps journeys in a map
type InMemoryRepository struct {
	mu       sync.RWMutex
	journeys map[string]*entities.Journey
}

// NewInMemoryRepository creates an empty in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{journeys: make(map[string]*entities.Journey)}
}

func (r *InMemoryRepository) Create(ctx context.Context, journey *entities.Journey) error {
	if err := validate(journey); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.journeys[journey.ID]; exists {
		return perr.AlreadyExistsf("journey with ID '%s' already exists", journey.ID).
			WithMeta("journey_id", journey.ID)
	}
	r.journeys[journey.ID] = journey.Clone()
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.Journey, error) {
	if id == "" {
		return nil, perr.InvalidArgument("journey ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	j, exists := r.journeys[id]
	if !exists {
		return nil, perr.NotFoundf("journey with ID '%s' not found", id).
			WithMeta("journey_id", id)
	}
	return j.Clone(), nil
}

func (r *InMemoryRepository) Update(ctx context.Context, journey *entities.Journey) error {
	if err := validate(journey); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.journeys[journey.ID]; !exists {
		return perr.NotFoundf("journey with ID '%s' not found", journey.ID).
			WithMeta("journey_id", journey.ID)
	}
	r.journeys[journey.ID] = journey.Clone()
	return nil
}

func (r *InMemoryRepository) ListByRoot(ctx context.Context, rootPersonaID string) ([]*entities.Journey, error) {
	if rootPersonaID == "" {
		return nil, perr.InvalidArgument("root persona ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*entities.Journey
	for _, j := range r.journeys {
		if j.RootPersonaID == rootPersonaID {
			result = append(result, j.Clone())
		}
	}
	sort.Slice(result, func(i, k int) bool { return result[i].CreatedAt.Before(result[k].CreatedAt) })
	return result, nil
}

func validate(journey *entities.Journey) error {
	if journey == nil {
		return perr.InvalidArgument("journey cannot be nil")
	}
	if journey.ID == "" {
		return perr.InvalidArgument("journey ID is required")
	}
	if journey.RootPersonaID == "" {
		return perr.InvalidArgument("journey root persona ID is required")
	}
	return nil
}
