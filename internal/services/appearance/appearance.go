// Package appearance assembles a physical description, clothing, markings
// and spectacles for a character.
package appearance

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/KirkDiggler/historical-personas/internal/clients/catalog"
	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/noise"
)

// SpectaclesFrom is the first year glasses can appear
const SpectaclesFrom = 1290

const greyHex = "#9e9e9e"

// Service assembles appearances
type Service interface {
	Assemble(src noise.Source, input *AssembleInput) (*entities.Appearance, error)
}

// AssembleInput describes who is being drawn
type AssembleInput struct {
	Zone   entities.CulturalZone
	Era    entities.Era
	Year   int
	Gender entities.Gender
	Age    int
	Wealth entities.WealthLevel
	Stats  entities.Stats
}

// ServiceConfig holds the service dependencies
type ServiceConfig struct {
	Appearance catalog.AppearanceSource
	Markings   catalog.MarkingSource
	Logger     *slog.Logger
}

type service struct {
	tables   catalog.AppearanceSource
	markings catalog.MarkingSource
	logger   *slog.Logger
}

// NewService creates an appearance service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Appearance == nil {
		panic("appearance source is required")
	}
	if cfg.Markings == nil {
		panic("marking source is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &service{tables: cfg.Appearance, markings: cfg.Markings, logger: logger}
}

func (s *service) Assemble(src noise.Source, input *AssembleInput) (*entities.Appearance, error) {
	if input == nil {
		return nil, perr.InvalidArgument("appearance input is required")
	}

	palette := s.tables.Palette(input.Zone)
	a := &entities.Appearance{}

	a.Build = s.build(src, input.Stats)
	a.Height = height(src, input)
	a.Face, _ = noise.Pick(src, s.tables.Faces())
	if input.Age >= 50 && a.Face != "" {
		a.Face = "lined, " + a.Face
	}

	skin, _ := noise.Choose(src, shades(palette.Skin))
	hair, _ := noise.Choose(src, shades(palette.Hair))
	eyes, _ := noise.Choose(src, shades(palette.Eyes))
	if greying(src, input.Age) {
		hair = catalog.Shade{Name: "grey", Hex: greyHex}
	}
	a.Skin, a.Hair, a.Eyes = skin.Name, hair.Name, eyes.Name

	accent, _ := noise.Pick(src, s.tables.Accents())
	a.Palette = entities.Palette{Skin: skin.Hex, Hair: hair.Hex, Eyes: eyes.Hex, Accent: accent}

	quality := s.tables.Quality(input.Wealth)
	for _, g := range s.tables.Garments(input.Era) {
		if quality != "" {
			g = quality + " " + g
		}
		a.Garments = append(a.Garments, g)
	}

	if m, ok := s.marking(src, input); ok {
		s.logger.Debug("marking assigned", "marking", m.ID, "zone", input.Zone)
		a.Markings = append(a.Markings, m)
	}
	a.Glasses = glasses(src, input)

	return a, nil
}

func shades(list []catalog.Shade) []noise.Weighted[catalog.Shade] {
	out := make([]noise.Weighted[catalog.Shade], len(list))
	for i, sh := range list {
		out[i] = noise.Weighted[catalog.Shade]{Value: sh, Weight: sh.Weight}
	}
	return out
}

func (s *service) build(src noise.Source, stats entities.Stats) string {
	switch {
	case stats.Strength >= 15 && stats.Constitution >= 12:
		b, _ := noise.Pick(src, []string{"broad-shouldered", "stocky"})
		return b
	case stats.Strength <= 6:
		b, _ := noise.Pick(src, []string{"slight", "lean"})
		return b
	}
	b, _ := noise.Pick(src, s.tables.Builds())
	return b
}

func height(src noise.Source, input *AssembleInput) string {
	mean := 168.0
	switch input.Gender {
	case entities.GenderFemale:
		mean = 156
	case entities.GenderNonBinary:
		mean = 162
	}
	if !input.Era.IsPreModern() {
		mean += 4
	}
	cm := int(noise.Norm(src, mean, 7))
	if input.Age < 14 {
		cm = cm * (60 + input.Age*3) / 100
	}

	label := "average height"
	switch {
	case cm < int(mean)-8:
		label = "short"
	case cm > int(mean)+8:
		label = "tall"
	}
	return fmt.Sprintf("%s (%d cm)", label, cm)
}

func greying(src noise.Source, age int) bool {
	switch {
	case age >= 55:
		return noise.Chance(src, 0.7)
	case age >= 40:
		return noise.Chance(src, 0.3)
	}
	return false
}

func (s *service) marking(src noise.Source, input *AssembleInput) (entities.Marking, bool) {
	if !noise.Chance(src, s.markings.MarkingChance(input.Zone)) {
		return entities.Marking{}, false
	}
	entries := s.markings.Markings(input.Zone, input.Year)
	options := make([]noise.Weighted[entities.Marking], len(entries))
	for i, e := range entries {
		options[i] = noise.Weighted[entities.Marking]{Value: e.Marking, Weight: e.Weight}
	}
	return noise.Choose(src, options)
}

type glassesRule struct {
	Until     int
	MinWealth entities.WealthLevel
	Chance    float64
	Style     string
	Detail    string
}

var glassesRules = []glassesRule{
	{Until: 1749, MinWealth: entities.WealthComfortable, Chance: 0.05, Style: "rivet spectacles", Detail: "two hand-ground lenses joined by a rivet"},
	{Until: 1899, Chance: 0.15, Style: "wire-rimmed spectacles", Detail: "thin steel frames with round lenses"},
	{Until: 2019, Chance: 0.3, Style: "horn-rimmed glasses", Detail: "heavy dark frames"},
	{Until: math.MaxInt32, Chance: 0.1, Style: "smart lenses", Detail: "frameless lenses with a faint display glow"},
}

// glasses only appear after SpectaclesFrom and mostly for the middle-aged or
// the bookish.
func glasses(src noise.Source, input *AssembleInput) *entities.Glasses {
	if input.Year < SpectaclesFrom {
		return nil
	}
	if input.Age < 40 && input.Stats.Intelligence < 15 {
		return nil
	}
	for _, rule := range glassesRules {
		if input.Year > rule.Until {
			continue
		}
		if input.Wealth < rule.MinWealth {
			return nil
		}
		if !noise.Chance(src, rule.Chance) {
			return nil
		}
		return &entities.Glasses{Style: rule.Style, Description: rule.Detail}
	}
	return nil
}
