// Package testutils holds fixtures shared by repository and service tests.
package testutils

import (
	"time"

	"github.com/KirkDiggler/historical-personas/internal/entities"
)

// FixedTime is the clock value tests stamp personas with
var FixedTime = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

// CreateTestPersona builds a small but complete medieval persona born in
// 1320 and shown in 1348
func CreateTestPersona(id string) *entities.Persona {
	return &entities.Persona{
		ID:           id,
		Year:         1348,
		Era:          entities.EraMedieval,
		CulturalZone: entities.ZoneEuropean,
		Region:       "British Isles",
		Location:     "England",
		Seed:         42,
		Character: entities.Character{
			Name:            "Alice Fletcher",
			GivenName:       "Alice",
			Surname:         "Fletcher",
			Gender:          entities.GenderFemale,
			Age:             28,
			BirthYear:       1320,
			BirthYearSource: entities.BirthYearDerived,
			Profession:      "Weaver",
			SocialClass:     entities.ClassCommoner,
			WealthLevel:     entities.WealthModest,
			WealthCeiling:   entities.WealthNoble,
			Religion:        "Catholic Christianity",
			Stats:           entities.Stats{Strength: 10, Dexterity: 12, Constitution: 11, Intelligence: 13, Wisdom: 10, Charisma: 9, Perception: 11, Luck: 10, Craftiness: 14},
			Personality:     entities.Personality{Openness: 0.5, Conscientiousness: 0.6, Extraversion: 0.4, Agreeableness: 0.7, Neuroticism: 0.3},
			Family:          CreateTestFamily(),
		},
	}
}

// CreateTestFamily is a father, a mother and a brother for a subject born
// in 1320 and shown in 1348
func CreateTestFamily() []entities.FamilyStub {
	return []entities.FamilyStub{
		{
			Name:       "John Fletcher",
			Surname:    "Fletcher",
			Relation:   entities.RelationFather,
			Gender:     entities.GenderMale,
			BirthYear:  entities.Year(1290),
			Age:        48,
			Profession: "Fletcher",
			IsDeceased: true,
			DeathYear:  entities.Year(1338),
		},
		{
			Name:       "Maud Baker",
			Surname:    "Baker",
			Relation:   entities.RelationMother,
			Gender:     entities.GenderFemale,
			BirthYear:  entities.Year(1298),
			Age:        50,
			Profession: "Homemaker",
		},
		{
			Name:      "Walter Fletcher",
			Surname:   "Fletcher",
			Relation:  entities.RelationBrother,
			Gender:    entities.GenderMale,
			BirthYear: entities.Year(1323),
			Age:       25,
		},
	}
}
