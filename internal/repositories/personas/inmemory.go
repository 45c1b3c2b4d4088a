package personas

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
)

// InMemoryRepository keeps personas in a map. Useful for tests and the CLI
// when no store is configured.
type InMemoryRepository struct {
	mu       sync.RWMutex
	personas map[string]*entities.Persona
	clock    TimeProvider
}

// NewInMemoryRepository creates an empty in-memory repository
func NewInMemoryRepository(clock TimeProvider) Repository {
	if clock == nil {
		clock = RealTimeProvider{}
	}
	return &InMemoryRepository{
		personas: make(map[string]*entities.Persona),
		clock:    clock,
	}
}

// Create stores a copy of persona
func (r *InMemoryRepository) Create(ctx context.Context, persona *entities.Persona) error {
	if err := validate(persona); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.personas[persona.ID]; exists {
		return perr.AlreadyExistsf("persona with ID '%s' already exists", persona.ID).
			WithMeta("persona_id", persona.ID)
	}

	stored := persona.Clone()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.clock.Now()
	}
	r.personas[persona.ID] = stored
	return nil
}

// Get returns a copy of the stored persona
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.Persona, error) {
	if id == "" {
		return nil, perr.InvalidArgument("persona ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.personas[id]
	if !exists {
		return nil, perr.NotFoundf("persona with ID '%s' not found", id).
			WithMeta("persona_id", id)
	}
	return p.Clone(), nil
}

// List returns copies of every persona, newest first
func (r *InMemoryRepository) List(ctx context.Context) ([]*entities.Persona, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Persona, 0, len(r.personas))
	for _, p := range r.personas {
		result = append(result, p.Clone())
	}
	sortNewestFirst(result)
	return result, nil
}

// Delete removes a persona
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return perr.InvalidArgument("persona ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.personas[id]; !exists {
		return perr.NotFoundf("persona with ID '%s' not found", id).
			WithMeta("persona_id", id)
	}
	delete(r.personas, id)
	return nil
}

func validate(persona *entities.Persona) error {
	if persona == nil {
		return perr.InvalidArgument("persona cannot be nil")
	}
	if persona.ID == "" {
		return perr.InvalidArgument("persona ID is required")
	}
	return nil
}

func sortNewestFirst(list []*entities.Persona) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}
