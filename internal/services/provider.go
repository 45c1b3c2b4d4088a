package services

import (
	"log/slog"

	"github.com/KirkDiggler/historical-personas/internal/clients/catalog"
	"github.com/KirkDiggler/historical-personas/internal/noise"
	"github.com/KirkDiggler/historical-personas/internal/repositories/journeys"
	"github.com/KirkDiggler/historical-personas/internal/repositories/personas"
	"github.com/KirkDiggler/historical-personas/internal/services/appearance"
	"github.com/KirkDiggler/historical-personas/internal/services/attributes"
	"github.com/KirkDiggler/historical-personas/internal/services/coherence"
	"github.com/KirkDiggler/historical-personas/internal/services/disease"
	"github.com/KirkDiggler/historical-personas/internal/services/family"
	"github.com/KirkDiggler/historical-personas/internal/services/ideology"
	journeyService "github.com/KirkDiggler/historical-personas/internal/services/journey"
	"github.com/KirkDiggler/historical-personas/internal/services/naming"
	personaService "github.com/KirkDiggler/historical-personas/internal/services/persona"
	"github.com/KirkDiggler/historical-personas/internal/services/profile"
	"github.com/KirkDiggler/historical-personas/internal/services/role"
	"github.com/KirkDiggler/historical-personas/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	PersonaService personaService.Service
	JourneyService journeyService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	// Catalog defaults to the embedded tables
	Catalog           catalog.Client
	PersonaRepository personas.Repository
	JourneyRepository journeys.Repository
	UUIDGenerator     uuid.Generator
	Noise             noise.Factory
	Logger            *slog.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	data := cfg.Catalog
	if data == nil {
		c, err := catalog.Default()
		if err != nil {
			return nil, err
		}
		data = c
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Use in-memory repositories if none provided
	personaRepo := cfg.PersonaRepository
	if personaRepo == nil {
		personaRepo = personas.NewInMemoryRepository(nil)
	}
	journeyRepo := cfg.JourneyRepository
	if journeyRepo == nil {
		journeyRepo = journeys.NewInMemoryRepository()
	}

	ids := cfg.UUIDGenerator
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	names := naming.NewService(&naming.ServiceConfig{Names: data, Logger: logger})

	personaSvc := personaService.NewService(&personaService.ServiceConfig{
		Profiles:      profile.NewService(&profile.ServiceConfig{Logger: logger}),
		Roles:         role.NewService(&role.ServiceConfig{Professions: data, Equipment: data, Logger: logger}),
		Names:         names,
		Appearance:    appearance.NewService(&appearance.ServiceConfig{Appearance: data, Markings: data, Logger: logger}),
		Attributes:    attributes.NewGenerator(&attributes.Config{Logger: logger}),
		Families:      family.NewService(&family.ServiceConfig{Namer: names, Professions: data, Logger: logger}),
		Diseases:      disease.NewService(&disease.ServiceConfig{Source: disease.NewCatalogSource(data), Logger: logger}),
		Ideologies:    ideology.NewService(&ideology.ServiceConfig{Source: data, Logger: logger}),
		Coherence:     coherence.NewValidator(&coherence.Config{Logger: logger}),
		Languages:     data,
		Repository:    personaRepo,
		UUIDGenerator: ids,
		Noise:         cfg.Noise,
		Logger:        logger,
	})

	journeySvc := journeyService.NewService(&journeyService.ServiceConfig{
		Repository:    journeyRepo,
		UUIDGenerator: ids,
		Logger:        logger,
	})

	return &Provider{
		PersonaService: personaSvc,
		JourneyService: journeySvc,
	}, nil
}
