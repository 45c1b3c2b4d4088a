package profile

import (
	"math"
	"strings"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	"github.com/KirkDiggler/historical-personas/internal/noise"
)

const (
	anyYearFrom  = math.MinInt32
	anyYearUntil = math.MaxInt32
)

// religionRule offers weighted religions for zones during [From, Until].
// An empty zone list matches every zone.
type religionRule struct {
	Zones   []entities.CulturalZone
	From    int
	Until   int
	Options []noise.Weighted[string]
}

func w(religion string, weight float64) noise.Weighted[string] {
	return noise.Weighted[string]{Value: religion, Weight: weight}
}

// religionRules are checked in order, first match wins
var religionRules = []religionRule{
	{From: anyYearFrom, Until: -2001, Options: []noise.Weighted[string]{
		w("Animism", 8), w("Ancestor worship", 3),
	}},

	{Zones: zones(entities.ZoneEuropean), From: anyYearFrom, Until: 312, Options: []noise.Weighted[string]{
		w("Roman polytheism", 6), w("Celtic polytheism", 2), w("Norse paganism", 2), w("Judaism", 1),
	}},
	{Zones: zones(entities.ZoneEuropean), From: 313, Until: 1516, Options: []noise.Weighted[string]{
		w("Catholic Christianity", 8), w("Orthodox Christianity", 2), w("Judaism", 1), w("Islam", 0.5),
	}},
	{Zones: zones(entities.ZoneEuropean), From: 1517, Until: 1899, Options: []noise.Weighted[string]{
		w("Catholic Christianity", 5), w("Protestant Christianity", 4), w("Orthodox Christianity", 1), w("Judaism", 1),
	}},
	{Zones: zones(entities.ZoneEuropean), From: 1900, Until: anyYearUntil, Options: []noise.Weighted[string]{
		w("Catholic Christianity", 4), w("Protestant Christianity", 3), w("Secular", 3), w("Judaism", 1), w("Islam", 1),
	}},

	{Zones: zones(entities.ZoneMENA), From: anyYearFrom, Until: 0, Options: []noise.Weighted[string]{
		w("Egyptian polytheism", 3), w("Mesopotamian polytheism", 2), w("Zoroastrianism", 3), w("Judaism", 2),
	}},
	{Zones: zones(entities.ZoneMENA), From: 1, Until: 631, Options: []noise.Weighted[string]{
		w("Eastern Christianity", 4), w("Zoroastrianism", 3), w("Judaism", 2),
	}},
	{Zones: zones(entities.ZoneMENA), From: 632, Until: anyYearUntil, Options: []noise.Weighted[string]{
		w("Islam", 9), w("Eastern Christianity", 1), w("Judaism", 1),
	}},

	{Zones: zones(entities.ZoneSubSaharanAfrican), From: anyYearFrom, Until: 699, Options: []noise.Weighted[string]{
		w("Traditional African religion", 9), w("Ethiopian Orthodox Christianity", 1),
	}},
	{Zones: zones(entities.ZoneSubSaharanAfrican), From: 700, Until: 1799, Options: []noise.Weighted[string]{
		w("Traditional African religion", 6), w("Islam", 3), w("Ethiopian Orthodox Christianity", 1),
	}},
	{Zones: zones(entities.ZoneSubSaharanAfrican), From: 1800, Until: anyYearUntil, Options: []noise.Weighted[string]{
		w("Christianity", 4), w("Islam", 3), w("Traditional African religion", 3),
	}},

	{Zones: zones(entities.ZoneSouthAsian), From: anyYearFrom, Until: -501, Options: []noise.Weighted[string]{
		w("Vedic religion", 9),
	}},
	{Zones: zones(entities.ZoneSouthAsian), From: -500, Until: 1199, Options: []noise.Weighted[string]{
		w("Hinduism", 7), w("Buddhism", 2), w("Jainism", 1),
	}},
	{Zones: zones(entities.ZoneSouthAsian), From: 1200, Until: anyYearUntil, Options: []noise.Weighted[string]{
		w("Hinduism", 7), w("Islam", 3), w("Sikhism", 0.5), w("Jainism", 0.5),
	}},

	{Zones: zones(entities.ZoneEastAsian), From: anyYearFrom, Until: 1949, Options: []noise.Weighted[string]{
		w("Confucianism", 4), w("Buddhism", 4), w("Taoism", 3), w("Shinto", 2),
	}},
	{Zones: zones(entities.ZoneEastAsian), From: 1950, Until: anyYearUntil, Options: []noise.Weighted[string]{
		w("Secular", 5), w("Buddhism", 3), w("Taoism", 1), w("Shinto", 1), w("Christianity", 1),
	}},

	{Zones: zones(entities.ZoneSoutheastAsian), From: anyYearFrom, Until: 1299, Options: []noise.Weighted[string]{
		w("Buddhism", 5), w("Hinduism", 3), w("Animism", 2),
	}},
	{Zones: zones(entities.ZoneSoutheastAsian), From: 1300, Until: anyYearUntil, Options: []noise.Weighted[string]{
		w("Buddhism", 5), w("Islam", 4), w("Catholic Christianity", 1), w("Animism", 1),
	}},

	{Zones: zones(entities.ZoneCentralAsian), From: anyYearFrom, Until: 799, Options: []noise.Weighted[string]{
		w("Tengrism", 6), w("Buddhism", 2), w("Zoroastrianism", 1),
	}},
	{Zones: zones(entities.ZoneCentralAsian), From: 800, Until: anyYearUntil, Options: []noise.Weighted[string]{
		w("Islam", 5), w("Tengrism", 3), w("Tibetan Buddhism", 2),
	}},

	{Zones: zones(entities.ZoneOceanian), From: anyYearFrom, Until: 1829, Options: []noise.Weighted[string]{
		w("Polynesian traditional religion", 9),
	}},
	{Zones: zones(entities.ZoneOceanian), From: 1830, Until: anyYearUntil, Options: []noise.Weighted[string]{
		w("Protestant Christianity", 5), w("Polynesian traditional religion", 2), w("Secular", 1),
	}},

	{Zones: zones(entities.ZoneNorthAmericanPreColumbian), From: anyYearFrom, Until: anyYearUntil, Options: []noise.Weighted[string]{
		w("Native spirituality", 9),
	}},
	{Zones: zones(entities.ZoneNorthAmericanColonial), From: anyYearFrom, Until: 1949, Options: []noise.Weighted[string]{
		w("Protestant Christianity", 6), w("Catholic Christianity", 3), w("Native spirituality", 1), w("Judaism", 0.5),
	}},
	{Zones: zones(entities.ZoneNorthAmericanColonial), From: 1950, Until: anyYearUntil, Options: []noise.Weighted[string]{
		w("Protestant Christianity", 5), w("Catholic Christianity", 3), w("Secular", 2), w("Judaism", 0.5),
	}},

	{Zones: zones(entities.ZoneSouthAmerican), From: anyYearFrom, Until: 1549, Options: []noise.Weighted[string]{
		w("Mesoamerican religion", 5), w("Andean religion", 5),
	}},
	{Zones: zones(entities.ZoneSouthAmerican), From: 1550, Until: anyYearUntil, Options: []noise.Weighted[string]{
		w("Catholic Christianity", 9), w("Andean religion", 1),
	}},
}

const fallbackReligion = "Animism"

func zones(z ...entities.CulturalZone) []entities.CulturalZone {
	return z
}

func eras(e ...entities.Era) []entities.Era {
	return e
}

func drawReligion(src noise.Source, zone entities.CulturalZone, year int) string {
	for _, rule := range religionRules {
		if year < rule.From || year > rule.Until {
			continue
		}
		if len(rule.Zones) > 0 && !containsZone(rule.Zones, zone) {
			continue
		}
		if religion, ok := noise.Choose(src, rule.Options); ok {
			return religion
		}
	}
	return fallbackReligion
}

// ceilingRule caps the wealth a member of a religion could hold in the given
// zones and eras. Empty zone or era sets match everything.
type ceilingRule struct {
	Matches func(religion string) bool
	Zones   []entities.CulturalZone
	Eras    []entities.Era
	Ceiling entities.WealthLevel
}

func religionContains(words ...string) func(string) bool {
	return func(religion string) bool {
		r := strings.ToLower(religion)
		for _, word := range words {
			if strings.Contains(r, word) {
				return true
			}
		}
		return false
	}
}

var ceilingRules = []ceilingRule{
	{
		Matches: religionContains("judaism"),
		Zones:   zones(entities.ZoneEuropean),
		Eras:    eras(entities.EraMedieval, entities.EraRenaissance),
		Ceiling: entities.WealthWealthy,
	},
	{
		Matches: religionContains("islam"),
		Zones:   zones(entities.ZoneEuropean),
		Eras:    eras(entities.EraMedieval, entities.EraRenaissance, entities.EraIndustrial),
		Ceiling: entities.WealthWealthy,
	},
	{
		Matches: religionContains("christian"),
		Zones:   zones(entities.ZoneMENA),
		Eras:    eras(entities.EraMedieval, entities.EraRenaissance, entities.EraIndustrial),
		Ceiling: entities.WealthWealthy,
	},
	{
		Matches: religionContains("native spirituality"),
		Zones:   zones(entities.ZoneNorthAmericanColonial),
		Ceiling: entities.WealthModest,
	},
	{
		Matches: religionContains("andean", "mesoamerican"),
		Zones:   zones(entities.ZoneSouthAmerican),
		Eras:    eras(entities.EraRenaissance, entities.EraIndustrial, entities.EraModern),
		Ceiling: entities.WealthModest,
	},
	{
		Matches: religionContains("polynesian"),
		Zones:   zones(entities.ZoneOceanian),
		Eras:    eras(entities.EraIndustrial),
		Ceiling: entities.WealthComfortable,
	},
}

// WealthCeiling evaluates the ceiling rules; the first match wins and no
// match means no cap.
func WealthCeiling(religion string, zone entities.CulturalZone, era entities.Era) entities.WealthLevel {
	for _, rule := range ceilingRules {
		if !rule.Matches(religion) {
			continue
		}
		if len(rule.Zones) > 0 && !containsZone(rule.Zones, zone) {
			continue
		}
		if len(rule.Eras) > 0 && !containsEra(rule.Eras, era) {
			continue
		}
		return rule.Ceiling
	}
	return entities.WealthNoble
}

func containsZone(list []entities.CulturalZone, zone entities.CulturalZone) bool {
	for _, z := range list {
		if z == zone {
			return true
		}
	}
	return false
}

func containsEra(list []entities.Era, era entities.Era) bool {
	for _, e := range list {
		if e == era {
			return true
		}
	}
	return false
}
