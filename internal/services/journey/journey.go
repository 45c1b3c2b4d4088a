// Package journey tracks which personas were opened from which, in order.
// The generator itself keeps no state; this service owns the trail.
package journey

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/repositories/journeys"
	"github.com/KirkDiggler/historical-personas/internal/uuid"
)

// Service manages navigation breadcrumbs
type Service interface {
	// Start opens a journey rooted at a persona
	Start(ctx context.Context, root *entities.Persona) (*entities.Journey, error)
	// Visit pushes a persona reached through family navigation
	Visit(ctx context.Context, journeyID string, persona *entities.Persona) (*entities.Journey, error)
	// Back pops the current crumb; the root is never popped
	Back(ctx context.Context, journeyID string) (*entities.Journey, error)
	Get(ctx context.Context, journeyID string) (*entities.Journey, error)
}

// ServiceConfig holds the service dependencies
type ServiceConfig struct {
	Repository    journeys.Repository
	UUIDGenerator uuid.Generator
	Now           func() time.Time
	Logger        *slog.Logger
}

type service struct {
	repo   journeys.Repository
	ids    uuid.Generator
	now    func() time.Time
	logger *slog.Logger
}

// NewService creates a journey service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("journey service config is required")
	}
	if cfg.Repository == nil {
		panic("journey repository is required")
	}
	s := &service{
		repo:   cfg.Repository,
		ids:    cfg.UUIDGenerator,
		now:    cfg.Now,
		logger: cfg.Logger,
	}
	if s.ids == nil {
		s.ids = uuid.NewGoogleUUIDGenerator()
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// DepthDelta is how a hop along relation changes the generation depth:
// parents are one generation up, children one down.
func DepthDelta(relation entities.Relation) int {
	kind, _ := relation.Kind()
	switch kind {
	case entities.KindParent:
		return 1
	case entities.KindChild:
		return -1
	}
	return 0
}

func (s *service) Start(ctx context.Context, root *entities.Persona) (*entities.Journey, error) {
	if root == nil || root.ID == "" {
		return nil, perr.InvalidArgument("root persona with an ID is required")
	}

	now := s.now()
	j := &entities.Journey{
		ID:            s.ids.New(),
		RootPersonaID: root.ID,
		Crumbs:        []entities.Crumb{{PersonaID: root.ID, Name: root.Character.Name}},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, j); err != nil {
		return nil, perr.Wrap(err, "failed to create journey")
	}
	return j, nil
}

func (s *service) Visit(ctx context.Context, journeyID string, persona *entities.Persona) (*entities.Journey, error) {
	if persona == nil || persona.ID == "" {
		return nil, perr.InvalidArgument("persona with an ID is required")
	}
	if persona.Origin == nil {
		return nil, perr.InvalidArgument("persona was not reached through navigation").
			WithMeta("persona_id", persona.ID)
	}

	j, err := s.repo.Get(ctx, journeyID)
	if err != nil {
		return nil, perr.Wrapf(err, "failed to load journey %s", journeyID)
	}
	current, _ := j.Current()
	if persona.Origin.PersonaID != current.PersonaID {
		return nil, perr.InvalidArgumentf("persona %s was opened from %s, not the current crumb %s",
			persona.ID, persona.Origin.PersonaID, current.PersonaID)
	}

	j.Crumbs = append(j.Crumbs, entities.Crumb{
		PersonaID: persona.ID,
		Name:      persona.Character.Name,
		Relation:  persona.Origin.Relation,
		Depth:     current.Depth + DepthDelta(persona.Origin.Relation),
	})
	j.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, j); err != nil {
		return nil, perr.Wrap(err, "failed to update journey")
	}
	s.logger.Debug("journey visit", "journey_id", j.ID, "persona_id", persona.ID, "depth", j.Crumbs[len(j.Crumbs)-1].Depth)
	return j, nil
}

func (s *service) Back(ctx context.Context, journeyID string) (*entities.Journey, error) {
	j, err := s.repo.Get(ctx, journeyID)
	if err != nil {
		return nil, perr.Wrapf(err, "failed to load journey %s", journeyID)
	}
	if len(j.Crumbs) <= 1 {
		return nil, perr.InvalidArgument("journey is already at its root").WithMeta("journey_id", journeyID)
	}

	j.Crumbs = j.Crumbs[:len(j.Crumbs)-1]
	j.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, j); err != nil {
		return nil, perr.Wrap(err, "failed to update journey")
	}
	return j, nil
}

func (s *service) Get(ctx context.Context, journeyID string) (*entities.Journey, error) {
	j, err := s.repo.Get(ctx, journeyID)
	if err != nil {
		return nil, perr.Wrapf(err, "failed to load journey %s", journeyID)
	}
	return j, nil
}
