package persona

import (
	"strings"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/noise"
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
)

// ChildAge is the age below which a character has no trade of their own
const ChildAge = 14

// ChildProfession is shown for characters younger than ChildAge
const ChildProfession = "Child"

// request is one pass through the pipeline
type request struct {
	setting setting.Context
	spec    *entities.CharacterSpecification
	seed    int64
	// surname is kept instead of drawn, e.g. a navigated relative's
	surname string
	origin  *entities.OriginLink
}

// draft is a built persona before life events are derived
type draft struct {
	persona      *entities.Persona
	marriageYear *int
	warnings     []string
}

// build runs every stage in a fixed order so a seed replays exactly:
// profile, role, name, appearance, attributes, family, disease, ideology,
// coherence.
func (s *service) build(src noise.Source, req *request) (*draft, error) {
	ctx := req.setting
	spec := req.spec
	if spec == nil {
		spec = &entities.CharacterSpecification{}
	}
	if g, ok := entities.ParseGender(string(spec.Gender)); ok {
		spec.Gender = g
	}
	d := &draft{}

	prof, err := s.profiles.Generate(src, &profile.GenerateInput{
		Year: ctx.Year,
		Era:  ctx.Era,
		Zone: ctx.Zone,
		Spec: spec,
	})
	if err != nil {
		return nil, perr.Wrap(err, "generate profile")
	}
	d.warnings = append(d.warnings, prof.Warnings...)
	timeline := prof.Timeline

	profession := spec.Profession
	if profession == "" && timeline.Age < ChildAge {
		profession = ChildProfession
	}
	rl, err := s.roles.Resolve(src, &role.ResolveInput{
		Era:        ctx.Era,
		Wealth:     prof.Wealth,
		Profession: profession,
	})
	if err != nil {
		return nil, perr.Wrap(err, "resolve role")
	}

	name, err := s.name(src, req, spec, prof.Gender, timeline.BirthYear, rl.NameKey)
	if err != nil {
		return nil, err
	}
	nameZone := ctx.Zone
	ethnic := spec.EthnicZone
	if ethnic == "" {
		ethnic = name.Source
	}
	if ethnic == ctx.Zone {
		ethnic = ""
	}
	if ethnic != "" {
		nameZone = ethnic
	}

	look, err := s.appearance.Assemble(src, &appearance.AssembleInput{
		Zone:   nameZone,
		Era:    ctx.Era,
		Year:   ctx.Year,
		Gender: prof.Gender,
		Age:    timeline.Age,
		Wealth: prof.Wealth,
		Stats:  prof.Stats,
	})
	if err != nil {
		return nil, perr.Wrap(err, "assemble appearance")
	}

	c := entities.Character{
		Name:            name.Full,
		GivenName:       name.Given,
		Surname:         name.Surname,
		Gender:          prof.Gender,
		Age:             timeline.Age,
		BirthYear:       timeline.BirthYear,
		BirthYearSource: timeline.Source,
		Profession:      rl.Profession,
		SocialClass:     rl.SocialClass,
		WealthLevel:     prof.Wealth,
		WealthCeiling:   prof.WealthCeiling,
		Religion:        prof.Religion,
		EthnicZone:      ethnic,
		Stats:           prof.Stats,
		Personality:     prof.Personality,
		SocialContext:   prof.SocialContext,
		Appearance:      *look,
		Inventory:       rl.Equipment.Inventory,
		EquippedItems:   rl.Equipment.Equipped,
	}

	badges, err := s.attributes.Generate(src, &attributes.GenerateInput{
		Character: &c,
		Year:      ctx.Year,
		Location:  ctx.Location,
		Forced:    spec.Attributes,
	})
	if err != nil {
		return nil, perr.Wrap(err, "generate attributes")
	}
	c.Attributes = badges.Badges
	d.warnings = append(d.warnings, badges.Warnings...)

	fam, err := s.families.Synthesize(src, &family.SynthesizeInput{
		DisplayYear: ctx.Year,
		Era:         ctx.Era,
		Zone:        nameZone,
		Subject: family.Subject{
			Gender:      c.Gender,
			BirthYear:   c.BirthYear,
			Surname:     c.Surname,
			SocialClass: c.SocialClass,
		},
		Twin: c.HasBadge(entities.BadgeTwin),
	})
	if err != nil {
		return nil, perr.Wrap(err, "synthesize family")
	}
	c.Family = fam.Members
	d.marriageYear = fam.MarriageYear

	sick, err := s.diseases.Assign(src, &disease.AssignInput{
		Zone:       ctx.Zone,
		Year:       ctx.Year,
		BirthYear:  c.BirthYear,
		HealthTier: spec.HealthTier,
		DiseaseID:  spec.DiseaseID,
	})
	if err != nil {
		return nil, perr.Wrap(err, "assign disease")
	}
	c.DiseaseHealth = sick.Health
	d.warnings = append(d.warnings, sick.Warnings...)

	beliefs, err := s.ideologies.Generate(src, &ideology.GenerateInput{
		Year:        ctx.Year,
		Personality: c.Personality,
		IdeologyID:  spec.Ideology,
	})
	if err != nil {
		return nil, perr.Wrap(err, "generate ideology")
	}
	c.Ideology = beliefs.Ideology
	c.Beliefs = beliefs.Beliefs
	d.warnings = append(d.warnings, beliefs.Warnings...)

	checked, err := s.coherence.Validate(&coherence.Input{
		Personality:   c.Personality,
		SocialContext: c.SocialContext,
		Stats:         c.Stats,
		Ideology:      c.Ideology,
		Profession:    c.Profession,
	})
	if err != nil {
		return nil, perr.Wrap(err, "validate coherence")
	}
	c.Personality = checked.Personality
	d.warnings = append(d.warnings, checked.Warnings...)

	p := &entities.Persona{
		ID:           s.uuidGenerator.New(),
		Character:    c,
		Year:         ctx.Year,
		Month:        ctx.Date.Month,
		Day:          ctx.Date.Day,
		Era:          ctx.Era,
		CulturalZone: ctx.Zone,
		Region:       ctx.Region,
		Location:     ctx.Location,
		Seed:         req.seed,
		Origin:       req.origin,
	}
	if s.languages != nil {
		if lang, ok := s.languages.Language(ctx.Zone, ctx.Year); ok {
			p.LanguageData = &lang
		}
	}
	d.persona = p
	return d, nil
}

// name keeps an explicit name and infers the ethnic zone from it, or draws a
// fresh one from the geographic or requested ethnic zone
func (s *service) name(src noise.Source, req *request, spec *entities.CharacterSpecification,
	gender entities.Gender, birthYear int, nameKey string) (*naming.Name, error) {
	if full := strings.TrimSpace(spec.Name); full != "" {
		given, surname := splitName(full, req.surname)
		n := &naming.Name{Full: full, Given: given, Surname: surname, Source: req.setting.Zone}
		if spec.EthnicZone == "" {
			if zone, ok := s.names.DetectEthnicity(full); ok {
				n.Source = zone
			}
		}
		return n, nil
	}

	n, err := s.names.Resolve(src, &naming.ResolveInput{
		Gender:     gender,
		Zone:       req.setting.Zone,
		BirthYear:  birthYear,
		NameKey:    nameKey,
		EthnicZone: spec.EthnicZone,
		Surname:    req.surname,
	})
	if err != nil {
		return nil, perr.Wrap(err, "resolve name")
	}
	return n, nil
}

// splitName separates a full name into given name and surname. A known
// surname is matched wherever it sits; otherwise the first word is taken as
// the given name.
func splitName(full, surname string) (string, string) {
	if surname != "" && strings.Contains(full, surname) {
		given := strings.Join(strings.Fields(strings.Replace(full, surname, "", 1)), " ")
		if given == "" {
			given = full
		}
		return given, surname
	}
	fields := strings.Fields(full)
	if len(fields) < 2 {
		return full, ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// finish derives life events once the family is final
func (s *service) finish(d *draft) {
	events, enhanced := lifeEvents(d.persona, d.marriageYear)
	d.persona.Character.LifeEvents = events
	d.persona.EnhancedLifeEvents = enhanced

	c := &d.persona.Character
	s.logger.Debug("persona generated",
		"persona_id", d.persona.ID,
		"name", c.Name,
		"year", d.persona.Year,
		"zone", d.persona.CulturalZone,
		"family", len(c.Family),
		"warnings", len(d.warnings))
}
