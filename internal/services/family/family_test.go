package family_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/historical-personas/internal/clients/catalog"
	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/noise"
	"github.com/KirkDiggler/historical-personas/internal/services/family"
	"github.com/KirkDiggler/historical-personas/internal/services/naming"
)

type FamilyServiceTestSuite struct {
	suite.Suite
	svc family.Service
}

func (s *FamilyServiceTestSuite) SetupSuite() {
	c, err := catalog.LoadEmbedded()
	s.Require().NoError(err)
	s.svc = family.NewService(&family.ServiceConfig{
		Namer:       naming.NewService(&naming.ServiceConfig{Names: c}),
		Professions: c,
	})
}

func TestFamilyServiceSuite(t *testing.T) {
	suite.Run(t, new(FamilyServiceTestSuite))
}

var eraYears = map[entities.Era]int{
	entities.EraPrehistory:  -4000,
	entities.EraAntiquity:   -200,
	entities.EraMedieval:    1348,
	entities.EraRenaissance: 1500,
	entities.EraIndustrial:  1850,
	entities.EraModern:      1975,
	entities.EraFuture:      2150,
}

func (s *FamilyServiceTestSuite) TestTemporalConsistency() {
	genders := []entities.Gender{entities.GenderMale, entities.GenderFemale, entities.GenderNonBinary}
	for era, year := range eraYears {
		lifespan := entities.Lifespan(era)
		for seed := int64(1); seed <= 30; seed++ {
			src := noise.NewSeeded(seed)
			age := noise.Range(src, 0, lifespan-10)
			gender := genders[int(seed)%len(genders)]
			subjectBirth := year - age

			fam, err := s.svc.Synthesize(src, &family.SynthesizeInput{
				DisplayYear: year,
				Era:         era,
				Zone:        entities.ZoneEuropean,
				Subject: family.Subject{
					Gender:      gender,
					BirthYear:   subjectBirth,
					Surname:     "Fletcher",
					SocialClass: entities.ClassLabel(era, entities.WealthModest),
				},
				Twin: seed%5 == 0,
			})
			s.Require().NoError(err)

			var mother, father, spouse *entities.FamilyStub
			twins := 0
			for i := range fam.Members {
				m := &fam.Members[i]
				s.Require().NotNil(m.BirthYear, "era %s seed %d", era, seed)
				s.GreaterOrEqual(m.Age, 0)
				s.LessOrEqual(m.Age, lifespan)
				s.Equal(m.EvaluationYear(), *m.BirthYear+m.Age)
				if m.IsDeceased {
					s.Require().NotNil(m.DeathYear)
					s.LessOrEqual(*m.DeathYear, year)
				} else {
					s.Equal(year, *m.BirthYear+m.Age)
				}

				switch m.Relation {
				case entities.RelationMother:
					mother = m
				case entities.RelationFather:
					father = m
				case entities.RelationSpouse:
					spouse = m
				case entities.RelationTwin:
					twins++
					s.Equal(subjectBirth, *m.BirthYear)
				}
			}

			s.Require().NotNil(mother)
			s.Require().NotNil(father)
			s.True(family.InBand(entities.GenderFemale, *mother.BirthYear, subjectBirth))
			s.True(family.InBand(entities.GenderMale, *father.BirthYear, subjectBirth))
			if mother.IsDeceased {
				s.Greater(*mother.DeathYear, subjectBirth)
			}

			if seed%5 == 0 {
				s.Equal(1, twins)
			} else {
				s.Equal(0, twins)
			}

			if spouse != nil {
				s.GreaterOrEqual(age, family.HistoricalMarriageAge(era, gender))
				s.Require().NotNil(fam.MarriageYear)
				s.LessOrEqual(*fam.MarriageYear, year)
			}

			for _, m := range fam.Members {
				kind, _ := m.Relation.Kind()
				switch kind {
				case entities.KindSibling:
					s.NotEqual(subjectBirth, *m.BirthYear)
					s.True(family.InBand(entities.GenderFemale, *mother.BirthYear, *m.BirthYear))
					s.True(family.InBand(entities.GenderMale, *father.BirthYear, *m.BirthYear))
					s.True(family.AliveAtBirth(*mother, *m.BirthYear), "era %s seed %d", era, seed)
					s.True(family.AliveAtBirth(*father, *m.BirthYear), "era %s seed %d", era, seed)
				case entities.KindChild:
					s.Require().NotNil(spouse)
					s.True(family.InBand(gender, subjectBirth, *m.BirthYear))
					s.True(family.InBand(spouse.Gender, *spouse.BirthYear, *m.BirthYear))
					s.GreaterOrEqual(*m.BirthYear, *fam.MarriageYear)
					s.True(family.AliveAtBirth(*spouse, *m.BirthYear), "era %s seed %d", era, seed)
				}
			}
		}
	}
}

func (s *FamilyServiceTestSuite) TestNoRelativeBornAfterParentDied() {
	for seed := int64(1); seed <= 2000; seed++ {
		fam, err := s.svc.Synthesize(noise.NewSeeded(seed), &family.SynthesizeInput{
			DisplayYear: 1380,
			Era:         entities.EraMedieval,
			Zone:        entities.ZoneEuropean,
			Subject: family.Subject{
				Gender:      entities.GenderMale,
				BirthYear:   1340,
				Surname:     "Cooper",
				SocialClass: entities.ClassCommoner,
			},
		})
		s.Require().NoError(err)

		var parents []entities.FamilyStub
		var spouse *entities.FamilyStub
		for i, m := range fam.Members {
			switch kind, _ := m.Relation.Kind(); kind {
			case entities.KindParent:
				parents = append(parents, m)
			case entities.KindSpouse:
				spouse = &fam.Members[i]
			}
		}

		for _, m := range fam.Members {
			switch kind, _ := m.Relation.Kind(); kind {
			case entities.KindSibling:
				for _, p := range parents {
					s.True(family.AliveAtBirth(p, *m.BirthYear),
						"seed %d: %s born %d after %s died", seed, m.Name, *m.BirthYear, p.Name)
				}
			case entities.KindChild:
				s.Require().NotNil(spouse)
				s.True(family.AliveAtBirth(*spouse, *m.BirthYear),
					"seed %d: %s born %d after %s died", seed, m.Name, *m.BirthYear, spouse.Name)
			}
		}
	}
}

func TestAliveAtBirth(t *testing.T) {
	father := entities.FamilyStub{Gender: entities.GenderMale, IsDeceased: true, DeathYear: entities.Year(1343)}
	mother := entities.FamilyStub{Gender: entities.GenderFemale, IsDeceased: true, DeathYear: entities.Year(1343)}
	living := entities.FamilyStub{Gender: entities.GenderFemale}

	assert.True(t, family.AliveAtBirth(father, 1344))
	assert.False(t, family.AliveAtBirth(father, 1345))
	assert.True(t, family.AliveAtBirth(mother, 1343))
	assert.False(t, family.AliveAtBirth(mother, 1344))
	assert.True(t, family.AliveAtBirth(living, 1400))
}

func (s *FamilyServiceTestSuite) TestModernSiblingCount() {
	for seed := int64(1); seed <= 30; seed++ {
		fam, err := s.svc.Synthesize(noise.NewSeeded(seed), &family.SynthesizeInput{
			DisplayYear: 1990,
			Era:         entities.EraModern,
			Zone:        entities.ZoneNorthAmericanColonial,
			Subject:     family.Subject{Gender: entities.GenderFemale, BirthYear: 1960, Surname: "Walker"},
		})
		s.Require().NoError(err)

		siblings := 0
		for _, m := range fam.Members {
			if kind, _ := m.Relation.Kind(); kind == entities.KindSibling {
				siblings++
			}
		}
		s.LessOrEqual(siblings, 4)
	}
}

func (s *FamilyServiceTestSuite) TestFatherSharesSurnameMotherDoesNot() {
	fam, err := s.svc.Synthesize(noise.NewSeeded(11), &family.SynthesizeInput{
		DisplayYear: 1348,
		Era:         entities.EraMedieval,
		Zone:        entities.ZoneEuropean,
		Subject:     family.Subject{Gender: entities.GenderMale, BirthYear: 1318, Surname: "Cooper", SocialClass: entities.ClassCommoner},
	})
	s.Require().NoError(err)

	s.Equal(entities.RelationFather, fam.Members[0].Relation)
	s.Equal("Cooper", fam.Members[0].Surname)
	s.Equal(entities.RelationMother, fam.Members[1].Relation)
	s.NotEmpty(fam.Members[1].Surname)
}

func (s *FamilyServiceTestSuite) TestNewbornHasNoSpouseOrChildren() {
	fam, err := s.svc.Synthesize(noise.NewSeeded(2), &family.SynthesizeInput{
		DisplayYear: 1500,
		Era:         entities.EraRenaissance,
		Zone:        entities.ZoneEuropean,
		Subject:     family.Subject{Gender: entities.GenderFemale, BirthYear: 1500, Surname: "Rossi"},
	})
	s.Require().NoError(err)

	s.Nil(fam.MarriageYear)
	for _, m := range fam.Members {
		kind, _ := m.Relation.Kind()
		s.NotEqual(entities.KindSpouse, kind)
		s.NotEqual(entities.KindChild, kind)
		if kind == entities.KindSibling {
			s.Less(*m.BirthYear, 1500)
		}
	}
}

func (s *FamilyServiceTestSuite) TestBirthAfterDisplayYearIsInvalid() {
	_, err := s.svc.Synthesize(noise.NewSeeded(1), &family.SynthesizeInput{
		DisplayYear: 1500,
		Era:         entities.EraRenaissance,
		Subject:     family.Subject{BirthYear: 1501},
	})
	s.True(perr.IsInvalidArgument(err))
}

func (s *FamilyServiceTestSuite) TestHistoricalMarriageAge() {
	s.Equal(15, family.HistoricalMarriageAge(entities.EraMedieval, entities.GenderFemale))
	s.Equal(18, family.HistoricalMarriageAge(entities.EraMedieval, entities.GenderMale))
	s.Equal(16, family.HistoricalMarriageAge(entities.EraMedieval, entities.GenderNonBinary))
}
