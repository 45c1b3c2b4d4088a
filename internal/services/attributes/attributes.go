// Package attributes draws special trait badges such as "twin". Badges are
// generated before the family so the synthesizer can see them.
package attributes

import (
	"log/slog"
	"strings"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/noise"
)

//go:generate mockgen -destination=mock/mock_generator.go -package=mockattributes . Generator

// Generator produces attribute badges for a character
type Generator interface {
	Generate(src noise.Source, input *GenerateInput) (*GenerateOutput, error)
}

// GenerateInput is the character the badges are drawn for
type GenerateInput struct {
	Character *entities.Character
	Year      int
	Location  string
	// Forced badge IDs are always included
	Forced []string
}

// Validate checks the input
func (i *GenerateInput) Validate() error {
	if i == nil {
		return perr.InvalidArgument("attributes input is required")
	}
	if i.Character == nil {
		return perr.InvalidArgument("character is required")
	}
	return nil
}

// GenerateOutput holds the badges and any forced IDs that were not known
type GenerateOutput struct {
	Badges   []entities.AttributeBadge
	Warnings []string
}

type badge struct {
	entities.AttributeBadge
	Chance float64
	// Eligible limits a badge to characters that fit; nil means everyone
	Eligible func(c *entities.Character, year int) bool
}

var badges = []badge{
	{
		AttributeBadge: entities.AttributeBadge{ID: entities.BadgeTwin, Name: "Twin", Description: "born on the same day as a sibling"},
		Chance:         0.03,
	},
	{
		AttributeBadge: entities.AttributeBadge{ID: "left-handed", Name: "Left-handed", Description: "favors the left hand"},
		Chance:         0.10,
	},
	{
		AttributeBadge: entities.AttributeBadge{ID: "polyglot", Name: "Polyglot", Description: "speaks several languages"},
		Chance:         0.08,
		Eligible: func(c *entities.Character, _ int) bool {
			return c.Stats.Intelligence >= 13 || c.SocialContext.Wanderlust > 0.7
		},
	},
	{
		AttributeBadge: entities.AttributeBadge{ID: "literate", Name: "Literate", Description: "can read and write"},
		Chance:         0.25,
		Eligible: func(c *entities.Character, year int) bool {
			return year < 1850 && c.WealthLevel >= entities.WealthComfortable
		},
	},
	{
		AttributeBadge: entities.AttributeBadge{ID: "veteran", Name: "Veteran", Description: "has seen battle"},
		Chance:         0.12,
		Eligible: func(c *entities.Character, _ int) bool {
			return c.Age >= 20 && c.Stats.Strength >= 12
		},
	},
	{
		AttributeBadge: entities.AttributeBadge{ID: "storyteller", Name: "Storyteller", Description: "known for telling tales"},
		Chance:         0.06,
		Eligible: func(c *entities.Character, _ int) bool {
			return c.Stats.Charisma >= 13
		},
	},
	{
		AttributeBadge: entities.AttributeBadge{ID: "stutter", Name: "Stutter", Description: "speech catches on hard sounds"},
		Chance:         0.02,
	},
	{
		AttributeBadge: entities.AttributeBadge{ID: "pilgrim", Name: "Pilgrim", Description: "has made a journey of faith"},
		Chance:         0.15,
		Eligible: func(c *entities.Character, _ int) bool {
			return c.SocialContext.Religiosity > 0.7 && c.Age >= 16
		},
	},
}

// Lookup returns the badge with id
func Lookup(id string) (entities.AttributeBadge, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, b := range badges {
		if b.ID == id {
			return b.AttributeBadge, true
		}
	}
	return entities.AttributeBadge{}, false
}

// Config holds the generator dependencies
type Config struct {
	Logger *slog.Logger
}

type generator struct {
	logger *slog.Logger
}

// NewGenerator creates the default badge generator
func NewGenerator(cfg *Config) Generator {
	g := &generator{logger: slog.Default()}
	if cfg != nil && cfg.Logger != nil {
		g.logger = cfg.Logger
	}
	return g
}

// Generate includes forced badges first, then rolls each table row once.
// One draw is consumed per eligible row whether or not it is forced.
func (g *generator) Generate(src noise.Source, input *GenerateInput) (*GenerateOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	out := &GenerateOutput{}
	have := make(map[string]bool)

	for _, id := range input.Forced {
		b, ok := Lookup(id)
		if !ok {
			out.Warnings = append(out.Warnings, "unknown attribute "+strings.TrimSpace(id)+" ignored")
			g.logger.Warn("unknown forced attribute", "attribute", id)
			continue
		}
		if have[b.ID] {
			continue
		}
		have[b.ID] = true
		out.Badges = append(out.Badges, b)
	}

	for _, b := range badges {
		if b.Eligible != nil && !b.Eligible(input.Character, input.Year) {
			continue
		}
		if noise.Chance(src, b.Chance) && !have[b.ID] {
			have[b.ID] = true
			out.Badges = append(out.Badges, b.AttributeBadge)
		}
	}
	return out, nil
}
