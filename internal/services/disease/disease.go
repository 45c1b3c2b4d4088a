// Package disease decides whether a character is afflicted and with what.
package disease

import (
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/historical-personas/internal/clients/catalog"
	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/noise"
)

// PrimarySlot is the only affliction slot
const PrimarySlot = "primary"

const (
	baseProbability     = 1.0 / 3.0
	epidemicPreference  = 0.8
	recentContractYears = 10
)

var tierProbability = map[entities.HealthTier]float64{
	entities.HealthHealthy: 0.15,
	entities.HealthSickly:  0.66,
	entities.HealthSick:    1.0,
}

// Service assigns diseases
type Service interface {
	Assign(src noise.Source, input *AssignInput) (*AssignOutput, error)
}

// AssignInput is the character and setting
type AssignInput struct {
	Zone       entities.CulturalZone
	Year       int
	BirthYear  int
	HealthTier entities.HealthTier
	// DiseaseID requests a specific disease
	DiseaseID string
}

// AssignOutput holds the assignment, nil when healthy
type AssignOutput struct {
	Health   *entities.DiseaseHealth
	Warnings []string
}

// ServiceConfig holds the service dependencies
type ServiceConfig struct {
	Source Source
	Logger *slog.Logger
}

type service struct {
	source Source
	logger *slog.Logger
}

// NewService creates a disease assigner
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Source == nil {
		panic("disease source is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &service{source: cfg.Source, logger: logger}
}

// Assign applies the policy: a requested disease available in context is
// always assigned. A requested disease that is not available is substituted
// and the draw is forced. Otherwise the probability comes from the health
// tier, an active epidemic is preferred, and the rest is weighted by
// prevalence.
func (s *service) Assign(src noise.Source, input *AssignInput) (*AssignOutput, error) {
	if input == nil {
		return nil, perr.InvalidArgument("disease input is required")
	}
	out := &AssignOutput{}

	p := baseProbability
	if tp, ok := tierProbability[input.HealthTier]; ok {
		p = tp
	}

	note := ""
	if input.DiseaseID != "" {
		if d, ok := s.source.AssignSpecific(input.DiseaseID, input.Zone, input.Year); ok {
			out.Health = s.afflict(src, input, d, nil)
			return out, nil
		}
		note = fmt.Sprintf("%q is not known in this place and year, substituted", input.DiseaseID)
		out.Warnings = append(out.Warnings, note)
		s.logger.Warn("disease substitution", "requested", input.DiseaseID, "zone", input.Zone, "year", input.Year)
		p = 1.0
	}

	if !noise.Chance(src, p) {
		return out, nil
	}

	if epi, d, ok := s.source.Epidemic(input.Zone, input.Year); ok && noise.Chance(src, epidemicPreference) {
		out.Health = s.afflict(src, input, d, &epi)
		out.Health.Note = note
		return out, nil
	}

	pool := s.source.AvailableForContext(input.Zone, input.Year)
	options := make([]noise.Weighted[catalog.Disease], len(pool))
	for i, d := range pool {
		options[i] = noise.Weighted[catalog.Disease]{Value: d, Weight: d.Prevalence}
	}
	d, ok := noise.Choose(src, options)
	if !ok {
		return out, nil
	}
	out.Health = s.afflict(src, input, d, nil)
	out.Health.Note = note
	return out, nil
}

func (s *service) afflict(src noise.Source, input *AssignInput, d catalog.Disease, epi *catalog.Epidemic) *entities.DiseaseHealth {
	from := maxInt(input.BirthYear, input.Year-recentContractYears)
	if epi != nil && epi.From != nil {
		from = maxInt(from, *epi.From)
	}
	if from > input.Year {
		from = input.Year
	}

	return &entities.DiseaseHealth{
		Slot: PrimarySlot,
		Affliction: entities.Affliction{
			DiseaseID:      d.ID,
			Name:           d.Name,
			Severity:       d.Severity,
			ContractedYear: noise.Range(src, from, input.Year),
			Epidemic:       epi != nil,
			Symptoms:       append([]string(nil), d.Symptoms...),
		},
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
