package persona_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/historical-personas/internal/clients/catalog"
	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/services/appearance"
	"github.com/KirkDiggler/historical-personas/internal/noise"
	"github.com/KirkDiggler/historical-personas/internal/services/attributes"
	mockattributes "github.com/KirkDiggler/historical-personas/internal/services/attributes/mock"
	"github.com/KirkDiggler/historical-personas/internal/services/coherence"
	"github.com/KirkDiggler/historical-personas/internal/services/disease"
	"github.com/KirkDiggler/historical-personas/internal/services/family"
	"github.com/KirkDiggler/historical-personas/internal/services/ideology"
	"github.com/KirkDiggler/historical-personas/internal/services/naming"
	"github.com/KirkDiggler/historical-personas/internal/services/persona"
	"github.com/KirkDiggler/historical-personas/internal/services/profile"
	"github.com/KirkDiggler/historical-personas/internal/services/role"
)

// newConfig wires the real services over the embedded catalog
func newConfig(t *testing.T) *persona.ServiceConfig {
	t.Helper()
	c, err := catalog.LoadEmbedded()
	require.NoError(t, err)

	names := naming.NewService(&naming.ServiceConfig{Names: c})
	return &persona.ServiceConfig{
		Profiles:   profile.NewService(&profile.ServiceConfig{}),
		Roles:      role.NewService(&role.ServiceConfig{Professions: c, Equipment: c}),
		Names:      names,
		Appearance: appearance.NewService(&appearance.ServiceConfig{Appearance: c, Markings: c}),
		Attributes: attributes.NewGenerator(&attributes.Config{}),
		Families:   family.NewService(&family.ServiceConfig{Namer: names, Professions: c}),
		Diseases:   disease.NewService(&disease.ServiceConfig{Source: disease.NewCatalogSource(c)}),
		Ideologies: ideology.NewService(&ideology.ServiceConfig{Source: c}),
		Coherence:  coherence.NewValidator(&coherence.Config{}),
		Languages:  c,
	}
}

type GenerateTestSuite struct {
	suite.Suite
	svc persona.Service
}

func (s *GenerateTestSuite) SetupSuite() {
	s.svc = persona.NewService(newConfig(s.T()))
}

func TestGenerateSuite(t *testing.T) {
	suite.Run(t, new(GenerateTestSuite))
}

func (s *GenerateTestSuite) TestEnglandIn1348() {
	out, err := s.svc.Generate(&persona.GenerateInput{Date: "1348", Location: "England", Seed: 7})
	s.Require().NoError(err)

	p := out.Persona
	s.Equal(1348, p.Year)
	s.Equal(entities.EraMedieval, p.Era)
	s.Equal(entities.ZoneEuropean, p.CulturalZone)
	s.Equal(int64(7), out.Seed)
	s.NotEmpty(p.ID)
	s.NotEmpty(p.Character.Name)
	s.Equal(p.Year-p.Character.BirthYear, p.Character.Age)
	s.False(out.RestoreConsumed)
}

func (s *GenerateTestSuite) TestBeforeCommonEra() {
	out, err := s.svc.Generate(&persona.GenerateInput{Date: "200 BC", Location: "Rome", Seed: 11})
	s.Require().NoError(err)

	p := out.Persona
	s.Equal(-200, p.Year)
	s.Equal(entities.EraAntiquity, p.Era)
	s.Equal(p.Year-p.Character.BirthYear, p.Character.Age)
}

func (s *GenerateTestSuite) TestSameSeedReplays() {
	first, err := s.svc.Generate(&persona.GenerateInput{Date: "1600", Location: "France", Seed: 99})
	s.Require().NoError(err)
	second, err := s.svc.Generate(&persona.GenerateInput{Date: "1600", Location: "France", Seed: 99})
	s.Require().NoError(err)

	first.Persona.ID, second.Persona.ID = "", ""
	s.Equal(first.Persona, second.Persona)
}

func (s *GenerateTestSuite) TestTimelineHoldsEverywhere() {
	dates := []string{"200 BC", "800", "1348", "1600", "1850", "1975"}
	locations := []string{"England", "China", "Egypt", "Peru", "Tonga"}

	for _, date := range dates {
		for _, location := range locations {
			for seed := int64(1); seed <= 5; seed++ {
				out, err := s.svc.Generate(&persona.GenerateInput{Date: date, Location: location, Seed: seed})
				s.Require().NoError(err, "%s %s seed %d", date, location, seed)

				p := out.Persona
				c := p.Character
				s.GreaterOrEqual(c.Age, 0)
				s.Equal(p.Year-c.BirthYear, c.Age)
				s.LessOrEqual(c.WealthLevel, c.WealthCeiling)

				for _, m := range c.Family {
					s.Require().NotNil(m.BirthYear)
					s.LessOrEqual(*m.BirthYear, p.Year)
					if m.IsDeceased {
						s.Require().NotNil(m.DeathYear)
						s.LessOrEqual(*m.DeathYear, p.Year)
						s.Equal(*m.DeathYear-*m.BirthYear, m.Age)
					} else {
						s.Equal(p.Year-*m.BirthYear, m.Age)
					}
					if kind, _ := m.Relation.Kind(); kind == entities.KindParent {
						s.Less(*m.BirthYear, c.BirthYear)
					}
				}

				last := c.BirthYear
				for _, e := range c.LifeEvents {
					s.GreaterOrEqual(e.Year, last)
					s.LessOrEqual(e.Year, p.Year)
					last = e.Year
				}
				s.Len(p.EnhancedLifeEvents, len(c.LifeEvents))
			}
		}
	}
}

func (s *GenerateTestSuite) TestExplicitOverridesWin() {
	out, err := s.svc.Generate(&persona.GenerateInput{
		Date:     "1348",
		Location: "England",
		Seed:     5,
		Spec: &entities.CharacterSpecification{
			Name:       "Hugh Tanner",
			Gender:     entities.GenderMale,
			BirthYear:  entities.Year(1300),
			Age:        entities.Year(40),
			Profession: "cooper",
			Religion:   "Lollardy",
		},
	})
	s.Require().NoError(err)

	c := out.Persona.Character
	s.Equal("Hugh Tanner", c.Name)
	s.Equal("Hugh", c.GivenName)
	s.Equal("Tanner", c.Surname)
	s.Equal(entities.GenderMale, c.Gender)
	s.Equal(1300, c.BirthYear)
	s.Equal(48, c.Age)
	s.Equal(entities.BirthYearExplicit, c.BirthYearSource)
	s.Equal("Cooper", c.Profession)
	s.Equal("Lollardy", c.Religion)
	s.Contains(out.Warnings, "requested age 40 ignored in favor of birth year 1300")
}

func (s *GenerateTestSuite) TestYoungChildHasNoTrade() {
	out, err := s.svc.Generate(&persona.GenerateInput{
		Date: "1600", Location: "England", Seed: 3,
		Spec: &entities.CharacterSpecification{Age: entities.Year(6)},
	})
	s.Require().NoError(err)
	s.Equal(persona.ChildProfession, out.Persona.Character.Profession)
}

func (s *GenerateTestSuite) TestUnavailableDiseaseIsSubstituted() {
	out, err := s.svc.Generate(&persona.GenerateInput{
		Date: "1100", Location: "Tonga", Seed: 21,
		Spec: &entities.CharacterSpecification{DiseaseID: "plague"},
	})
	s.Require().NoError(err)

	health := out.Persona.Character.DiseaseHealth
	s.Require().NotNil(health)
	s.NotEqual("plague", health.Affliction.DiseaseID)
	s.NotEmpty(health.Note)
	s.NotEmpty(out.Warnings)
}

func (s *GenerateTestSuite) TestForcedTwinHasTwinSibling() {
	out, err := s.svc.Generate(&persona.GenerateInput{
		Date: "1600", Location: "England", Seed: 13,
		Spec: &entities.CharacterSpecification{Attributes: []string{entities.BadgeTwin}},
	})
	s.Require().NoError(err)

	c := out.Persona.Character
	s.True(c.HasBadge(entities.BadgeTwin))
	var twins []entities.FamilyStub
	for _, m := range c.Family {
		if m.Relation == entities.RelationTwin {
			twins = append(twins, m)
		}
	}
	s.Require().Len(twins, 1)
	s.Equal(c.BirthYear, *twins[0].BirthYear)
}

func (s *GenerateTestSuite) TestRestoreSpecPrecedence() {
	out, err := s.svc.Generate(&persona.GenerateInput{
		Spec: &entities.CharacterSpecification{Profession: "miller"},
		Restore: &entities.RestoreSpec{
			ID:       "shared-link",
			Date:     "1700",
			Location: "France",
			Seed:     1234,
			Spec: entities.CharacterSpecification{
				Name:       "Marie Dupont",
				Gender:     entities.GenderFemale,
				Profession: "baker",
			},
		},
	})
	s.Require().NoError(err)

	p := out.Persona
	s.True(out.RestoreConsumed)
	s.Equal(int64(1234), out.Seed)
	s.Equal(1700, p.Year)
	s.Equal("France", p.Region)
	s.Equal("Marie Dupont", p.Character.Name)
	s.Equal(entities.GenderFemale, p.Character.Gender)
	s.Equal("Miller", p.Character.Profession)
}

func (s *GenerateTestSuite) TestExplicitAgeBeatsRestoredBirthYear() {
	out, err := s.svc.Generate(&persona.GenerateInput{
		Spec: &entities.CharacterSpecification{Age: entities.Year(40)},
		Restore: &entities.RestoreSpec{
			Date:     "1700",
			Location: "France",
			Seed:     9,
			Spec:     entities.CharacterSpecification{BirthYear: entities.Year(1680)},
		},
	})
	s.Require().NoError(err)

	c := out.Persona.Character
	s.Equal(40, c.Age)
	s.Equal(1660, c.BirthYear)
	s.Equal(entities.BirthYearDerived, c.BirthYearSource)
}

func (s *GenerateTestSuite) TestMalformedInputDefaults() {
	out, err := s.svc.Generate(&persona.GenerateInput{Date: "once upon a time", Location: "nowhere", Seed: 2})
	s.Require().NoError(err)
	s.NotNil(out.Persona)
}

func (s *GenerateTestSuite) TestNilInput() {
	_, err := s.svc.Generate(nil)
	s.True(perr.IsInvalidArgument(err))
}

func TestNewServicePanicsWithoutDependencies(t *testing.T) {
	assert.Panics(t, func() { persona.NewService(nil) })
	assert.Panics(t, func() { persona.NewService(&persona.ServiceConfig{}) })

	cfg := newConfig(t)
	cfg.Coherence = nil
	assert.Panics(t, func() { persona.NewService(cfg) })
}

func TestAttributeWarningsReachOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	badges := mockattributes.NewMockGenerator(ctrl)

	cfg := newConfig(t)
	cfg.Attributes = badges
	svc := persona.NewService(cfg)

	badges.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ noise.Source, input *attributes.GenerateInput) (*attributes.GenerateOutput, error) {
			assert.Equal(t, []string{"dragon-slayer"}, input.Forced)
			assert.Equal(t, 1348, input.Year)
			return &attributes.GenerateOutput{
				Warnings: []string{"unknown attribute dragon-slayer ignored"},
			}, nil
		})

	out, err := svc.Generate(&persona.GenerateInput{
		Date:     "1348",
		Location: "England",
		Seed:     3,
		Spec:     &entities.CharacterSpecification{Attributes: []string{"dragon-slayer"}},
	})
	require.NoError(t, err)
	assert.Contains(t, out.Warnings, "unknown attribute dragon-slayer ignored")
	assert.Empty(t, out.Persona.Character.Attributes)
}
