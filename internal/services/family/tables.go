package family

import (
	"github.com/KirkDiggler/historical-personas/internal/entities"
	"github.com/KirkDiggler/historical-personas/internal/noise"
)

// Age bands of a parent at a child's birth
const (
	MinParentAge       = 15
	MaxMotherAge       = 45
	MaxFatherAge       = 60
	MaxSiblingOffset   = 10
	MaxSpouseOffset    = 5
	SpousePresence     = 0.7
	MinChildbearingAge = 15
)

type span struct{ lo, hi int }

var siblingCounts = map[entities.Era]span{
	entities.EraPrehistory:  {2, 9},
	entities.EraAntiquity:   {2, 9},
	entities.EraMedieval:    {2, 9},
	entities.EraRenaissance: {2, 9},
	entities.EraIndustrial:  {2, 9},
	entities.EraModern:      {0, 4},
	entities.EraFuture:      {0, 3},
}

var childCaps = map[entities.Era]int{
	entities.EraModern: 3,
	entities.EraFuture: 2,
}

const preModernChildCap = 8

type marriageAges struct{ female, male int }

var marriageAgeTable = map[entities.Era]marriageAges{
	entities.EraPrehistory:  {14, 16},
	entities.EraAntiquity:   {14, 18},
	entities.EraMedieval:    {15, 18},
	entities.EraRenaissance: {17, 20},
	entities.EraIndustrial:  {18, 21},
	entities.EraModern:      {20, 22},
	entities.EraFuture:      {22, 24},
}

// HistoricalMarriageAge is the youngest age someone of the given gender
// married in an era. Non-binary characters use the average of both.
func HistoricalMarriageAge(era entities.Era, gender entities.Gender) int {
	ages, ok := marriageAgeTable[era]
	if !ok {
		ages = marriageAges{18, 21}
	}
	switch gender {
	case entities.GenderFemale:
		return ages.female
	case entities.GenderMale:
		return ages.male
	}
	return (ages.female + ages.male) / 2
}

// workforce is the chance a woman holds a general profession
var workforce = map[entities.Era]float64{
	entities.EraIndustrial: 0.2,
	entities.EraModern:     0.6,
	entities.EraFuture:     0.85,
}

const defaultWorkforce = 0.1

// WorkforceParticipation is the chance a woman works outside the household
func WorkforceParticipation(era entities.Era) float64 {
	if p, ok := workforce[era]; ok {
		return p
	}
	return defaultWorkforce
}

// adultMortality scales with how much of the lifespan a relative has lived
var adultMortality = map[entities.Era]float64{
	entities.EraPrehistory:  0.6,
	entities.EraAntiquity:   0.5,
	entities.EraMedieval:    0.5,
	entities.EraRenaissance: 0.45,
	entities.EraIndustrial:  0.35,
	entities.EraModern:      0.2,
	entities.EraFuture:      0.1,
}

// infantMortality applies to siblings and children in pre-modern eras
var infantMortality = map[entities.Era]float64{
	entities.EraPrehistory:  0.3,
	entities.EraAntiquity:   0.25,
	entities.EraMedieval:    0.25,
	entities.EraRenaissance: 0.2,
}

const widowhood = 0.1

var relativeGenders = []noise.Weighted[entities.Gender]{
	{Value: entities.GenderMale, Weight: 49},
	{Value: entities.GenderFemale, Weight: 49},
	{Value: entities.GenderNonBinary, Weight: 2},
}

// ParentBand is the allowed age of a parent of gender at a child's birth
func ParentBand(gender entities.Gender) (lo, hi int) {
	if gender == entities.GenderFemale {
		return MinParentAge, MaxMotherAge
	}
	return MinParentAge, MaxFatherAge
}

// InBand reports whether a parent born in parentBirth could have a child
// born in childBirth
func InBand(gender entities.Gender, parentBirth, childBirth int) bool {
	lo, hi := ParentBand(gender)
	age := childBirth - parentBirth
	return age >= lo && age <= hi
}
