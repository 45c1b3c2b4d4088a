// Package catalog holds the read-only data tables the generator draws from:
// names, professions, starting equipment, markings, ideologies, beliefs,
// diseases, languages and appearance palettes.
package catalog

import (
	"github.com/KirkDiggler/historical-personas/internal/entities"
)

// NameSource answers name queries for a zone and birth year
type NameSource interface {
	// Names returns the list for a zone that covers birthYear. A non-empty
	// key selects a keyed list (such as "noble") when the zone has one.
	Names(zone entities.CulturalZone, birthYear int, key string) (NameSet, bool)
	// Diaspora lists the zones a name may be borrowed from
	Diaspora(zone entities.CulturalZone, birthYear int) []Diaspora
	// ZoneNames returns every given name and surname known for a zone
	ZoneNames(zone entities.CulturalZone) (given, surnames []string)
}

// ProfessionSource answers profession queries by era and class label
type ProfessionSource interface {
	Professions(era entities.Era, class string) []string
	DomesticProfessions(era entities.Era) []string
}

// EquipmentSource assembles starting equipment for a role
type EquipmentSource interface {
	AssembleStartingPackage(role, class string) StartingPackage
}

// MarkingSource supplies tattoos and other markings
type MarkingSource interface {
	MarkingChance(zone entities.CulturalZone) float64
	Markings(zone entities.CulturalZone, year int) []MarkingEntry
}

// IdeologySource supplies ideologies and beliefs
type IdeologySource interface {
	Ideologies(year int) []IdeologyEntry
	FindIdeology(id string) (entities.Ideology, bool)
	Beliefs(year int) []entities.Belief
	FindBelief(id string) (entities.Belief, bool)
}

// DiseaseTable exposes the raw disease and epidemic rows
type DiseaseTable interface {
	Diseases() []Disease
	Epidemics() []Epidemic
}

// LanguageSource maps a zone and year to a language
type LanguageSource interface {
	Language(zone entities.CulturalZone, year int) (entities.LanguageData, bool)
}

// AppearanceSource supplies coloring and clothing tables
type AppearanceSource interface {
	Palette(zone entities.CulturalZone) PaletteTable
	Builds() []string
	Faces() []string
	Accents() []string
	Garments(era entities.Era) []string
	Quality(wealth entities.WealthLevel) string
}

// Client is the full data source
type Client interface {
	NameSource
	ProfessionSource
	EquipmentSource
	MarkingSource
	IdeologySource
	DiseaseTable
	LanguageSource
	AppearanceSource
}
