// Package role resolves a character's social class label, profession and
// starting equipment from their era and wealth.
package role

import (
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/historical-personas/internal/clients/catalog"
	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/noise"
)

// NobleNameKey selects the noble name lists when a zone has them
const NobleNameKey = "noble"

// Service resolves social roles
type Service interface {
	Resolve(src noise.Source, input *ResolveInput) (*Role, error)
}

// ResolveInput carries the facts a role depends on
type ResolveInput struct {
	Era    entities.Era
	Wealth entities.WealthLevel

	// Profession overrides the drawn profession when set
	Profession string
}

// Role is the resolved social position
type Role struct {
	SocialClass string
	Profession  string
	NameKey     string
	Equipment   catalog.StartingPackage
}

// ServiceConfig holds the service dependencies
type ServiceConfig struct {
	Professions catalog.ProfessionSource
	Equipment   catalog.EquipmentSource
	Logger      *slog.Logger
}

type service struct {
	professions catalog.ProfessionSource
	equipment   catalog.EquipmentSource
	logger      *slog.Logger
}

// NewService creates a role service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Professions == nil {
		panic("profession source is required")
	}
	if cfg.Equipment == nil {
		panic("equipment source is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		professions: cfg.Professions,
		equipment:   cfg.Equipment,
		logger:      logger,
	}
}

// TitleCase normalizes a profession for display. Casers carry state, so
// each call builds its own.
func TitleCase(s string) string {
	return cases.Title(language.English, cases.NoLower).String(strings.TrimSpace(s))
}

func (s *service) Resolve(src noise.Source, input *ResolveInput) (*Role, error) {
	if input == nil {
		return nil, perr.InvalidArgument("role input is required")
	}

	class := entities.ClassLabel(input.Era, input.Wealth)
	r := &Role{SocialClass: class}

	if input.Wealth == entities.WealthNoble {
		r.NameKey = NobleNameKey
	}

	if override := strings.TrimSpace(input.Profession); override != "" {
		r.Profession = TitleCase(override)
	} else if profession, ok := noise.Pick(src, s.professions.Professions(input.Era, class)); ok {
		r.Profession = TitleCase(profession)
	}

	r.Equipment = s.equipment.AssembleStartingPackage(r.Profession, class)
	if r.Equipment.Note != "" {
		s.logger.Debug("starting package fallback", "profession", r.Profession, "note", r.Equipment.Note)
	}

	return r, nil
}
