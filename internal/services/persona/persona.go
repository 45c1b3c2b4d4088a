// Package persona orchestrates the generation pipeline and family
// navigation. Generation is pure: every call takes a fresh noise source from
// the factory and touches no shared state. Persistence is layered on top
// through the personas repository.
package persona

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/historical-personas/internal/clients/catalog"
	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/noise"
	"github.com/KirkDiggler/historical-personas/internal/repositories/personas"
	"github.com/KirkDiggler/historical-personas/internal/services/appearance"
	"github.com/KirkDiggler/historical-personas/internal/services/attributes"
	"github.com/KirkDiggler/historical-personas/internal/services/coherence"
	"github.com/KirkDiggler/historical-personas/internal/services/disease"
	"github.com/KirkDiggler/historical-personas/internal/services/family"
	"github.com/KirkDiggler/historical-personas/internal/services/ideology"
	"github.com/KirkDiggler/historical-personas/internal/services/naming"
	"github.com/KirkDiggler/historical-personas/internal/services/profile"
	"github.com/KirkDiggler/historical-personas/internal/services/role"
	"github.com/KirkDiggler/historical-personas/internal/setting"
	"github.com/KirkDiggler/historical-personas/internal/uuid"
)

// Service generates personas and opens family members as new personas
type Service interface {
	// Generate runs the pipeline for a date and location
	Generate(input *GenerateInput) (*GenerateOutput, error)
	// Navigate re-enters the pipeline for a member of the origin's family
	Navigate(input *NavigateInput) (*GenerateOutput, error)

	// Create generates and stores a persona
	Create(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
	// Open navigates to a stored persona's family member and stores the result
	Open(ctx context.Context, input *OpenInput) (*GenerateOutput, error)
	// Get loads a stored persona
	Get(ctx context.Context, id string) (*entities.Persona, error)
}

// GenerateInput is a generation request. Date and location are free text
// and never fail to resolve. Zero values fall back to the restore spec.
type GenerateInput struct {
	Date     string
	Location string
	// Seed replays a generation; zero draws a fresh seed
	Seed int64
	Spec *entities.CharacterSpecification

	// Restore is a one-shot request, e.g. decoded from a shared link.
	// Fields set on Spec win over it.
	Restore *entities.RestoreSpec
}

// GenerateOutput is a persona plus every substitution made on the way
type GenerateOutput struct {
	Persona  *entities.Persona
	Warnings []string
	Seed     int64

	// RestoreConsumed is true when Restore was applied; the caller clears it
	RestoreConsumed bool
}

// ServiceConfig holds the service dependencies
type ServiceConfig struct {
	Profiles   profile.Service
	Roles      role.Service
	Names      naming.Service
	Appearance appearance.Service
	Attributes attributes.Generator
	Families   family.Service
	Diseases   disease.Service
	Ideologies ideology.Service
	Coherence  coherence.Validator
	Languages  catalog.LanguageSource

	// Repository is only needed by Create, Open and Get
	Repository    personas.Repository
	UUIDGenerator uuid.Generator
	Noise         noise.Factory
	Logger        *slog.Logger
}

type service struct {
	profiles   profile.Service
	roles      role.Service
	names      naming.Service
	appearance appearance.Service
	attributes attributes.Generator
	families   family.Service
	diseases   disease.Service
	ideologies ideology.Service
	coherence  coherence.Validator
	languages  catalog.LanguageSource

	repository    personas.Repository
	uuidGenerator uuid.Generator
	noise         noise.Factory
	logger        *slog.Logger
}

// NewService creates the persona service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("persona service config is required")
	}
	switch {
	case cfg.Profiles == nil:
		panic("profile service is required")
	case cfg.Roles == nil:
		panic("role service is required")
	case cfg.Names == nil:
		panic("naming service is required")
	case cfg.Appearance == nil:
		panic("appearance service is required")
	case cfg.Attributes == nil:
		panic("attribute generator is required")
	case cfg.Families == nil:
		panic("family service is required")
	case cfg.Diseases == nil:
		panic("disease service is required")
	case cfg.Ideologies == nil:
		panic("ideology service is required")
	case cfg.Coherence == nil:
		panic("coherence validator is required")
	}

	svc := &service{
		profiles:      cfg.Profiles,
		roles:         cfg.Roles,
		names:         cfg.Names,
		appearance:    cfg.Appearance,
		attributes:    cfg.Attributes,
		families:      cfg.Families,
		diseases:      cfg.Diseases,
		ideologies:    cfg.Ideologies,
		coherence:     cfg.Coherence,
		languages:     cfg.Languages,
		repository:    cfg.Repository,
		uuidGenerator: cfg.UUIDGenerator,
		noise:         cfg.Noise,
		logger:        cfg.Logger,
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.noise == nil {
		svc.noise = noise.SeededFactory
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

// Generate resolves the setting and runs the pipeline
func (s *service) Generate(input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, perr.InvalidArgument("generate input is required")
	}

	date, location, seed := input.Date, input.Location, input.Seed
	spec := input.Spec.Merge(nil)
	consumed := false
	if input.Restore != nil {
		consumed = true
		if strings.TrimSpace(date) == "" {
			date = input.Restore.Date
		}
		if strings.TrimSpace(location) == "" {
			location = input.Restore.Location
		}
		if seed == 0 {
			seed = input.Restore.Seed
		}
		spec = spec.Merge(&input.Restore.Spec)
	}
	if seed == 0 {
		seed = noise.NewSeed()
	}

	ctx := setting.Resolve(date, location)
	if ctx.Date.Defaulted {
		s.logger.Debug("date defaulted", "input", date, "year", ctx.Year)
	}

	d, err := s.build(s.noise(seed), &request{setting: ctx, spec: spec, seed: seed})
	if err != nil {
		return nil, err
	}
	s.finish(d)

	return &GenerateOutput{
		Persona:         d.persona,
		Warnings:        d.warnings,
		Seed:            seed,
		RestoreConsumed: consumed,
	}, nil
}
