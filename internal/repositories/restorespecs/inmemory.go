package restorespecs

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
)

type entry struct {
	spec    entities.RestoreSpec
	expires time.Time
}

// InMemoryRepository keeps specs in a map and drops them lazily on expiry
type InMemoryRepository struct {
	mu    sync.Mutex
	specs map[string]entry
	ttl   time.Duration
	clock Clock
}

// NewInMemoryRepository creates an in-memory repository. A zero ttl uses
// DefaultTTL and a nil clock uses the system clock.
func NewInMemoryRepository(ttl time.Duration, clock Clock) Repository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = systemClock{}
	}
	return &InMemoryRepository{specs: make(map[string]entry), ttl: ttl, clock: clock}
}

func (r *InMemoryRepository) Save(ctx context.Context, spec *entities.RestoreSpec) error {
	if err := validate(spec); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *spec
	stored.Spec = *spec.Spec.Merge(nil)
	r.specs[spec.ID] = entry{spec: stored, expires: r.clock.Now().Add(r.ttl)}
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.RestoreSpec, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookup(id)
}

func (r *InMemoryRepository) Consume(ctx context.Context, id string) (*entities.RestoreSpec, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	spec, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	delete(r.specs, id)
	return spec, nil
}

// lookup must be called with the lock held
func (r *InMemoryRepository) lookup(id string) (*entities.RestoreSpec, error) {
	if id == "" {
		return nil, perr.InvalidArgument("restore spec ID is required")
	}
	e, ok := r.specs[id]
	if ok && !r.clock.Now().Before(e.expires) {
		delete(r.specs, id)
		ok = false
	}
	if !ok {
		return nil, perr.NotFoundf("restore spec '%s' not found", id).WithMeta("restore_id", id)
	}
	out := e.spec
	out.Spec = *e.spec.Spec.Merge(nil)
	return &out, nil
}

func validate(spec *entities.RestoreSpec) error {
	if spec == nil {
		return perr.InvalidArgument("restore spec cannot be nil")
	}
	if spec.ID == "" {
		return perr.InvalidArgument("restore spec ID is required")
	}
	return nil
}
