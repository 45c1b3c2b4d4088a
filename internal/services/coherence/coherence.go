// Package coherence reconciles personality with ideology, role and stats.
package coherence

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
)

// Input is the character state the rules read
type Input struct {
	Personality   entities.Personality
	SocialContext entities.SocialContext
	Stats         entities.Stats
	Ideology      entities.Ideology
	Profession    string
}

// Output is the adjusted personality and one warning per adjustment
type Output struct {
	Personality entities.Personality
	Warnings    []string
}

// Validator runs the coherence pass
type Validator interface {
	Validate(input *Input) (*Output, error)
}

// rule clamps one trait to Bound when Applies holds. Every rule moves its
// trait only in the direction that makes its own condition false, and no two
// rules move a trait in opposite directions, so a second pass is a no-op.
type rule struct {
	Applies func(in *Input, p *entities.Personality) bool
	Trait   func(p *entities.Personality) *float64
	Bound   float64
	Message string
}

func openness(p *entities.Personality) *float64          { return &p.Openness }
func conscientiousness(p *entities.Personality) *float64 { return &p.Conscientiousness }
func extraversion(p *entities.Personality) *float64      { return &p.Extraversion }
func agreeableness(p *entities.Personality) *float64     { return &p.Agreeableness }
func neuroticism(p *entities.Personality) *float64       { return &p.Neuroticism }

var rules = []rule{
	{
		Applies: func(in *Input, p *entities.Personality) bool {
			return in.Ideology.ID == "revolutionary" && p.Agreeableness > 0.7
		},
		Trait:   agreeableness,
		Bound:   0.7,
		Message: "high agreeableness conflicts with revolutionary ideology, softened",
	},
	{
		Applies: func(in *Input, p *entities.Personality) bool {
			return in.Ideology.ID == "traditionalist" && p.Openness > 0.75
		},
		Trait:   openness,
		Bound:   0.75,
		Message: "very high openness conflicts with traditionalist ideology, softened",
	},
	{
		Applies: func(in *Input, p *entities.Personality) bool {
			return in.SocialContext.Religiosity > 0.8 && p.Openness > 0.85
		},
		Trait:   openness,
		Bound:   0.85,
		Message: "extreme openness conflicts with deep religiosity, softened",
	},
	{
		Applies: func(in *Input, p *entities.Personality) bool {
			return in.Stats.Intelligence <= 6 && p.Openness > 0.8
		},
		Trait:   openness,
		Bound:   0.8,
		Message: "very high openness is unlikely with low intelligence, softened",
	},
	{
		Applies: func(in *Input, p *entities.Personality) bool {
			return in.Stats.Charisma >= 16 && p.Extraversion < 0.2
		},
		Trait:   extraversion,
		Bound:   0.2,
		Message: "very low extraversion conflicts with high charisma, raised",
	},
	{
		Applies: func(in *Input, p *entities.Personality) bool {
			return in.SocialContext.Ambition >= 0.8 && p.Conscientiousness < 0.3
		},
		Trait:   conscientiousness,
		Bound:   0.3,
		Message: "very low conscientiousness conflicts with strong ambition, raised",
	},
	{
		Applies: func(in *Input, p *entities.Personality) bool {
			return isSoldier(in.Profession) && p.Neuroticism > 0.8
		},
		Trait:   neuroticism,
		Bound:   0.8,
		Message: "extreme neuroticism conflicts with a soldier's role, steadied",
	},
}

var martialProfessions = []string{"soldier", "knight", "guard", "warrior", "mercenary", "man-at-arms"}

func isSoldier(profession string) bool {
	p := strings.ToLower(profession)
	for _, m := range martialProfessions {
		if strings.Contains(p, m) {
			return true
		}
	}
	return false
}

// Config holds the validator dependencies
type Config struct {
	Logger *slog.Logger
}

type validator struct {
	logger *slog.Logger
}

// NewValidator creates the coherence validator
func NewValidator(cfg *Config) Validator {
	v := &validator{logger: slog.Default()}
	if cfg != nil && cfg.Logger != nil {
		v.logger = cfg.Logger
	}
	return v
}

// Validate applies every rule in order. Running it on its own output
// changes nothing and returns no warnings.
func (v *validator) Validate(input *Input) (*Output, error) {
	if input == nil {
		return nil, perr.InvalidArgument("coherence input is required")
	}
	p := input.Personality
	out := &Output{}

	for _, r := range rules {
		if !r.Applies(input, &p) {
			continue
		}
		trait := r.Trait(&p)
		before := *trait
		*trait = r.Bound
		out.Warnings = append(out.Warnings, r.Message)
		v.logger.Debug("coherence adjustment", "rule", r.Message, "from", fmt.Sprintf("%.2f", before), "to", r.Bound)
	}

	out.Personality = p
	return out, nil
}
