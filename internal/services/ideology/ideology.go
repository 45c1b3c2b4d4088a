// Package ideology picks a worldview and a handful of beliefs.
package ideology

import (
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/historical-personas/internal/clients/catalog"
	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/noise"
)

const (
	minBeliefs = 1
	maxBeliefs = 3
	minWeight  = 0.1
)

// Service draws ideology and beliefs
type Service interface {
	Generate(src noise.Source, input *GenerateInput) (*GenerateOutput, error)
}

// GenerateInput is the year and the personality that weights the draw
type GenerateInput struct {
	Year        int
	Personality entities.Personality
	// IdeologyID requests a specific ideology
	IdeologyID string
}

// GenerateOutput holds the draw
type GenerateOutput struct {
	Ideology entities.Ideology
	Beliefs  []entities.Belief
	Warnings []string
}

// ServiceConfig holds the service dependencies
type ServiceConfig struct {
	Source catalog.IdeologySource
	Logger *slog.Logger
}

type service struct {
	source catalog.IdeologySource
	logger *slog.Logger
}

// NewService creates the ideology service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Source == nil {
		panic("ideology source is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &service{source: cfg.Source, logger: logger}
}

func (s *service) Generate(src noise.Source, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, perr.InvalidArgument("ideology input is required")
	}
	out := &GenerateOutput{}

	picked := false
	if input.IdeologyID != "" {
		if ideo, ok := s.source.FindIdeology(input.IdeologyID); ok {
			out.Ideology = ideo
			picked = true
		} else {
			msg := fmt.Sprintf("ideology %q is unknown, drew one instead", input.IdeologyID)
			out.Warnings = append(out.Warnings, msg)
			s.logger.Warn("ideology substitution", "requested", input.IdeologyID)
		}
	}

	if !picked {
		available := s.source.Ideologies(input.Year)
		options := make([]noise.Weighted[entities.Ideology], len(available))
		for i, entry := range available {
			options[i] = noise.Weighted[entities.Ideology]{Value: entry.Ideology, Weight: Affinity(entry.Lean, input.Personality)}
		}
		if ideo, ok := noise.Choose(src, options); ok {
			out.Ideology = ideo
		}
	}

	out.Beliefs = drawBeliefs(src, s.source.Beliefs(input.Year))
	return out, nil
}

// Affinity weights an ideology by how well the personality leans its way.
// A neutral personality scores 1.
func Affinity(lean catalog.Lean, p entities.Personality) float64 {
	traits := map[string]float64{
		"openness":          p.Openness,
		"conscientiousness": p.Conscientiousness,
		"extraversion":      p.Extraversion,
		"agreeableness":     p.Agreeableness,
		"neuroticism":       p.Neuroticism,
	}
	w := 1.0
	for trait, dir := range lean {
		v, ok := traits[trait]
		if !ok {
			continue
		}
		w += dir * (v - 0.5) * 2
	}
	if w < minWeight {
		return minWeight
	}
	return w
}

// drawBeliefs picks distinct beliefs by partial shuffle
func drawBeliefs(src noise.Source, pool []entities.Belief) []entities.Belief {
	if len(pool) == 0 {
		return nil
	}
	n := noise.Range(src, minBeliefs, maxBeliefs)
	if n > len(pool) {
		n = len(pool)
	}
	shuffled := append([]entities.Belief(nil), pool...)
	for i := 0; i < n; i++ {
		j := i + src.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:n]
}
