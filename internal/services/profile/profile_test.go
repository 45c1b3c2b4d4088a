package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/noise"
	"github.com/KirkDiggler/historical-personas/internal/services/profile"
)

type ProfileServiceTestSuite struct {
	suite.Suite
	svc profile.Service
}

func (s *ProfileServiceTestSuite) SetupTest() {
	s.svc = profile.NewService(nil)
}

func TestProfileServiceSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}

func (s *ProfileServiceTestSuite) TestGeneratedProfilesHoldInvariants() {
	for _, era := range entities.Eras {
		for seed := int64(1); seed <= 40; seed++ {
			year := map[entities.Era]int{
				entities.EraPrehistory:  -5000,
				entities.EraAntiquity:   -200,
				entities.EraMedieval:    1348,
				entities.EraRenaissance: 1500,
				entities.EraIndustrial:  1850,
				entities.EraModern:      1960,
				entities.EraFuture:      2200,
			}[era]

			p, err := s.svc.Generate(noise.NewSeeded(seed), &profile.GenerateInput{
				Year: year,
				Era:  era,
				Zone: entities.CulturalZones[int(seed)%len(entities.CulturalZones)],
			})
			s.Require().NoError(err)

			s.Equal(year, p.Timeline.BirthYear+p.Timeline.Age)
			s.GreaterOrEqual(p.Timeline.Age, 16)
			s.LessOrEqual(p.Wealth, p.WealthCeiling)
			s.NotEmpty(p.Religion)

			for _, v := range []int{p.Stats.Strength, p.Stats.Dexterity, p.Stats.Constitution,
				p.Stats.Intelligence, p.Stats.Wisdom, p.Stats.Charisma, p.Stats.Perception,
				p.Stats.Luck, p.Stats.Craftiness} {
				s.GreaterOrEqual(v, 1)
				s.LessOrEqual(v, 20)
			}
			for _, v := range []float64{p.Personality.Openness, p.Personality.Conscientiousness,
				p.Personality.Extraversion, p.Personality.Agreeableness, p.Personality.Neuroticism,
				p.SocialContext.Privilege, p.SocialContext.Religiosity} {
				s.GreaterOrEqual(v, 0.0)
				s.LessOrEqual(v, 1.0)
			}
		}
	}
}

func (s *ProfileServiceTestSuite) TestSameSeedSameProfile() {
	input := &profile.GenerateInput{Year: 1500, Era: entities.EraRenaissance, Zone: entities.ZoneEuropean}

	a, err := s.svc.Generate(noise.NewSeeded(99), input)
	s.Require().NoError(err)
	b, err := s.svc.Generate(noise.NewSeeded(99), input)
	s.Require().NoError(err)

	s.Equal(a, b)
}

func (s *ProfileServiceTestSuite) TestExplicitBirthYearBeatsAge() {
	p, err := s.svc.Generate(noise.NewSeeded(1), &profile.GenerateInput{
		Year: 1470,
		Era:  entities.EraRenaissance,
		Zone: entities.ZoneEuropean,
		Spec: &entities.CharacterSpecification{
			BirthYear: entities.Year(1442),
			Age:       entities.Year(50),
			Gender:    entities.GenderMale,
		},
	})
	s.Require().NoError(err)

	s.Equal(1442, p.Timeline.BirthYear)
	s.Equal(28, p.Timeline.Age)
	s.Equal(entities.BirthYearExplicit, p.Timeline.Source)
	s.Equal(entities.GenderMale, p.Gender)
	s.Len(p.Warnings, 1)
}

func (s *ProfileServiceTestSuite) TestBirthYearAfterDisplayYearIsInvalid() {
	_, err := s.svc.Generate(noise.NewSeeded(1), &profile.GenerateInput{
		Year: 1400,
		Era:  entities.EraRenaissance,
		Zone: entities.ZoneEuropean,
		Spec: &entities.CharacterSpecification{BirthYear: entities.Year(1410)},
	})

	s.Require().Error(err)
	s.True(perr.IsInvalidArgument(err))
}

func (s *ProfileServiceTestSuite) TestNilInputIsInvalid() {
	_, err := s.svc.Generate(noise.NewSeeded(1), nil)
	s.True(perr.IsInvalidArgument(err))
}

func (s *ProfileServiceTestSuite) TestClassRequestClippedByCeiling() {
	p, err := s.svc.Generate(noise.NewSeeded(3), &profile.GenerateInput{
		Year: 1348,
		Era:  entities.EraMedieval,
		Zone: entities.ZoneEuropean,
		Spec: &entities.CharacterSpecification{Religion: "Judaism", SocialClass: "Noble"},
	})
	s.Require().NoError(err)

	s.Equal(entities.WealthWealthy, p.WealthCeiling)
	s.Equal(entities.WealthWealthy, p.Wealth)
	s.Require().Len(p.Warnings, 1)
	s.Contains(p.Warnings[0], "Merchant")
}

func (s *ProfileServiceTestSuite) TestClassRequestHonoredWithinCeiling() {
	p, err := s.svc.Generate(noise.NewSeeded(3), &profile.GenerateInput{
		Year: 1348,
		Era:  entities.EraMedieval,
		Zone: entities.ZoneEuropean,
		Spec: &entities.CharacterSpecification{Religion: "Catholic Christianity", SocialClass: "Noble"},
	})
	s.Require().NoError(err)

	s.Equal(entities.WealthNoble, p.Wealth)
	s.Empty(p.Warnings)
}

func TestApplySocialClassRequestUnknownLabel(t *testing.T) {
	p := &profile.Profile{Wealth: entities.WealthModest, WealthCeiling: entities.WealthNoble}

	warning := p.ApplySocialClassRequest(entities.EraMedieval, "Working Class")

	assert.NotEmpty(t, warning)
	assert.Equal(t, entities.WealthModest, p.Wealth)
}

func TestWealthCeiling(t *testing.T) {
	testCases := []struct {
		name     string
		religion string
		zone     entities.CulturalZone
		era      entities.Era
		want     entities.WealthLevel
	}{
		{"judaism in medieval europe", "Judaism", entities.ZoneEuropean, entities.EraMedieval, entities.WealthWealthy},
		{"judaism in modern europe", "Judaism", entities.ZoneEuropean, entities.EraModern, entities.WealthNoble},
		{"christians under the caliphates", "Eastern Christianity", entities.ZoneMENA, entities.EraMedieval, entities.WealthWealthy},
		{"native spirituality in colonies", "Native spirituality", entities.ZoneNorthAmericanColonial, entities.EraIndustrial, entities.WealthModest},
		{"majority faith", "Islam", entities.ZoneMENA, entities.EraMedieval, entities.WealthNoble},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, profile.WealthCeiling(tc.religion, tc.zone, tc.era))
		})
	}
}
