// Package profile draws the base profile of a character: gender, timeline,
// stats, personality, social context, religion and wealth.
package profile

import (
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/noise"
)

// Service generates base profiles
type Service interface {
	Generate(src noise.Source, input *GenerateInput) (*Profile, error)
}

// GenerateInput is the resolved setting plus any explicit overrides
type GenerateInput struct {
	Year int
	Era  entities.Era
	Zone entities.CulturalZone
	Spec *entities.CharacterSpecification
}

// Validate checks the input for programmer errors
func (in *GenerateInput) Validate() error {
	if in == nil {
		return perr.InvalidArgument("profile input is required")
	}
	if in.Era.Index() < 0 {
		return perr.InvalidArgumentf("unknown era %q", in.Era)
	}
	return nil
}

// Profile is the drafted base of a character
type Profile struct {
	Gender        entities.Gender
	Timeline      entities.Timeline
	Stats         entities.Stats
	Personality   entities.Personality
	SocialContext entities.SocialContext
	Religion      string
	Wealth        entities.WealthLevel

	// WealthCeiling is computed once from the religion, zone and era
	WealthCeiling entities.WealthLevel

	Warnings []string
}

// ServiceConfig holds the service dependencies
type ServiceConfig struct {
	Logger *slog.Logger
}

type service struct {
	logger *slog.Logger
}

// NewService creates a profile service
func NewService(cfg *ServiceConfig) Service {
	logger := slog.Default()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}
	return &service{logger: logger}
}

var genderWeights = []noise.Weighted[entities.Gender]{
	{Value: entities.GenderMale, Weight: 49},
	{Value: entities.GenderFemale, Weight: 49},
	{Value: entities.GenderNonBinary, Weight: 2},
}

var wealthWeights = map[string][]noise.Weighted[entities.WealthLevel]{
	"prehistoric": wealthTable(50, 35, 10, 4, 1),
	"premodern":   wealthTable(45, 30, 15, 7, 3),
	"industrial":  wealthTable(35, 35, 18, 9, 3),
	"modern":      wealthTable(20, 40, 25, 12, 3),
}

func wealthTable(weights ...float64) []noise.Weighted[entities.WealthLevel] {
	out := make([]noise.Weighted[entities.WealthLevel], len(weights))
	for i, wt := range weights {
		out[i] = noise.Weighted[entities.WealthLevel]{Value: entities.WealthLevels[i], Weight: wt}
	}
	return out
}

func wealthGroup(era entities.Era) string {
	switch era {
	case entities.EraPrehistory:
		return "prehistoric"
	case entities.EraIndustrial:
		return "industrial"
	case entities.EraModern, entities.EraFuture:
		return "modern"
	default:
		return "premodern"
	}
}

var eraReligiosity = map[entities.Era]float64{
	entities.EraPrehistory:  0.8,
	entities.EraAntiquity:   0.75,
	entities.EraMedieval:    0.85,
	entities.EraRenaissance: 0.75,
	entities.EraIndustrial:  0.6,
	entities.EraModern:      0.4,
	entities.EraFuture:      0.3,
}

var privilegeBase = map[entities.WealthLevel]float64{
	entities.WealthPoor:        0.1,
	entities.WealthModest:      0.3,
	entities.WealthComfortable: 0.5,
	entities.WealthWealthy:     0.7,
	entities.WealthNoble:       0.9,
}

// Generate draws a profile. Draw order is fixed so a seed replays exactly:
// gender, age, religion, wealth, stats, personality, social context.
func (s *service) Generate(src noise.Source, input *GenerateInput) (*Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	spec := input.Spec
	if spec == nil {
		spec = &entities.CharacterSpecification{}
	}

	p := &Profile{}

	if spec.Gender != "" {
		p.Gender = spec.Gender
	} else {
		p.Gender, _ = noise.Choose(src, genderWeights)
	}

	timeline, err := s.timeline(src, input, spec)
	if err != nil {
		return nil, err
	}
	p.Timeline = timeline
	if timeline.IgnoredAge != nil {
		p.warn(s.logger, fmt.Sprintf("requested age %d ignored in favor of birth year %d", *timeline.IgnoredAge, timeline.BirthYear))
	}

	if spec.Religion != "" {
		p.Religion = spec.Religion
	} else {
		p.Religion = drawReligion(src, input.Zone, input.Year)
	}
	p.WealthCeiling = WealthCeiling(p.Religion, input.Zone, input.Era)

	drawn, _ := noise.Choose(src, wealthWeights[wealthGroup(input.Era)])
	p.Wealth = entities.MinWealth(drawn, p.WealthCeiling)

	if spec.SocialClass != "" {
		if warning := p.ApplySocialClassRequest(input.Era, spec.SocialClass); warning != "" {
			p.warn(s.logger, warning)
		}
	}

	p.Stats = drawStats(src, input.Era, timeline.Age)
	p.Personality = drawPersonality(src)
	p.SocialContext = drawSocialContext(src, input.Era, p.Wealth)

	s.logger.Debug("profile drafted",
		"gender", p.Gender,
		"birth_year", timeline.BirthYear,
		"religion", p.Religion,
		"wealth", p.Wealth.String(),
		"ceiling", p.WealthCeiling.String())

	return p, nil
}

func (s *service) timeline(src noise.Source, input *GenerateInput, spec *entities.CharacterSpecification) (entities.Timeline, error) {
	draft := entities.NewCharacterDraft(input.Year)
	if spec.BirthYear != nil {
		draft.WithExplicitBirthYear(*spec.BirthYear)
	}
	switch {
	case spec.Age != nil:
		draft.WithDerivedAge(*spec.Age)
	case !draft.IsSet():
		draft.WithDerivedAge(noise.Range(src, 16, entities.Lifespan(input.Era)-10))
	}

	timeline, err := draft.Timeline()
	if err != nil {
		return entities.Timeline{}, perr.WrapWithCode(err, perr.CodeInvalidArgument, "resolve timeline").
			WithMeta("display_year", input.Year)
	}
	return timeline, nil
}

// ApplySocialClassRequest moves wealth to the lowest tier carrying label,
// clipped to the stored ceiling. It returns a warning when the request was
// downgraded or the label is unknown for the era; unknown labels change
// nothing.
func (p *Profile) ApplySocialClassRequest(era entities.Era, label string) string {
	requested, ok := entities.WealthForClass(era, label)
	if !ok {
		return fmt.Sprintf("unknown social class %q for the %s era ignored", label, era.Key())
	}
	if requested > p.WealthCeiling {
		p.Wealth = p.WealthCeiling
		return fmt.Sprintf("social class %q is out of reach for a follower of %s here, downgraded to %q",
			label, p.Religion, entities.ClassLabel(era, p.WealthCeiling))
	}
	p.Wealth = requested
	return ""
}

func (p *Profile) warn(logger *slog.Logger, msg string) {
	logger.Warn("profile substitution", "detail", msg)
	p.Warnings = append(p.Warnings, msg)
}

func drawStats(src noise.Source, era entities.Era, age int) entities.Stats {
	roll := func() int { return noise.Roll(src, 3, 6) }
	st := entities.Stats{
		Strength:     roll(),
		Dexterity:    roll(),
		Constitution: roll(),
		Intelligence: roll(),
		Wisdom:       roll(),
		Charisma:     roll(),
		Perception:   roll(),
		Luck:         roll(),
		Craftiness:   roll(),
	}

	switch era {
	case entities.EraPrehistory:
		st.Strength++
		st.Constitution++
		st.Perception++
	case entities.EraModern, entities.EraFuture:
		st.Intelligence++
	}

	switch {
	case age < 16:
		st.Strength -= 2
		st.Wisdom -= 2
	case age >= 65:
		st.Strength -= 2
		st.Dexterity -= 2
		st.Constitution -= 2
		st.Wisdom += 2
	case age >= 50:
		st.Strength--
		st.Dexterity--
		st.Wisdom++
	}

	clamp := func(v *int) {
		if *v < 1 {
			*v = 1
		}
		if *v > 20 {
			*v = 20
		}
	}
	for _, v := range []*int{
		&st.Strength, &st.Dexterity, &st.Constitution, &st.Intelligence, &st.Wisdom,
		&st.Charisma, &st.Perception, &st.Luck, &st.Craftiness,
	} {
		clamp(v)
	}
	return st
}

func drawPersonality(src noise.Source) entities.Personality {
	trait := func() float64 { return noise.Clamp01(noise.Norm(src, 0.5, 0.15)) }
	return entities.Personality{
		Openness:          trait(),
		Conscientiousness: trait(),
		Extraversion:      trait(),
		Agreeableness:     trait(),
		Neuroticism:       trait(),
	}
}

func drawSocialContext(src noise.Source, era entities.Era, wealth entities.WealthLevel) entities.SocialContext {
	entrepreneurial := 0.4
	if wealth >= entities.WealthComfortable {
		entrepreneurial = 0.5
	}
	return entities.SocialContext{
		Privilege:       noise.Clamp01(noise.Norm(src, privilegeBase[wealth], 0.05)),
		Wanderlust:      noise.Clamp01(noise.Norm(src, 0.4, 0.2)),
		Religiosity:     noise.Clamp01(noise.Norm(src, eraReligiosity[era], 0.15)),
		Ambition:        noise.Clamp01(noise.Norm(src, 0.5, 0.2)),
		Entrepreneurial: noise.Clamp01(noise.Norm(src, entrepreneurial, 0.2)),
	}
}
