package entities

import (
	"fmt"
	"strings"
)

// Gender of a character or relative
type Gender string

const (
	GenderMale      Gender = "Male"
	GenderFemale    Gender = "Female"
	GenderNonBinary Gender = "Non-binary"
)

// ParseGender accepts common spellings; ok is false for unknown input
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "man":
		return GenderMale, true
	case "female", "f", "woman":
		return GenderFemale, true
	case "non-binary", "nonbinary", "nb", "enby":
		return GenderNonBinary, true
	}
	return "", false
}

// Era is a historical period
type Era string

const (
	EraPrehistory  Era = "PREHISTORY"
	EraAntiquity   Era = "ANTIQUITY"
	EraMedieval    Era = "MEDIEVAL"
	EraRenaissance Era = "RENAISSANCE"
	EraIndustrial  Era = "INDUSTRIAL"
	EraModern      Era = "MODERN"
	EraFuture      Era = "FUTURE"
)

// Eras lists every era in chronological order
var Eras = []Era{
	EraPrehistory, EraAntiquity, EraMedieval, EraRenaissance,
	EraIndustrial, EraModern, EraFuture,
}

// Index is the chronological position of the era
func (e Era) Index() int {
	for i, era := range Eras {
		if era == e {
			return i
		}
	}
	return -1
}

// IsPreModern is true up to and including the Renaissance
func (e Era) IsPreModern() bool {
	i := e.Index()
	return i >= 0 && i <= EraRenaissance.Index()
}

// Key is the lowercase catalog key
func (e Era) Key() string {
	return strings.ToLower(string(e))
}

// CulturalZone is a broad civilizational category
type CulturalZone string

const (
	ZoneEuropean                  CulturalZone = "EUROPEAN"
	ZoneMENA                      CulturalZone = "MENA"
	ZoneSubSaharanAfrican         CulturalZone = "SUB_SAHARAN_AFRICAN"
	ZoneSouthAsian                CulturalZone = "SOUTH_ASIAN"
	ZoneEastAsian                 CulturalZone = "EAST_ASIAN"
	ZoneSoutheastAsian            CulturalZone = "SOUTHEAST_ASIAN"
	ZoneCentralAsian              CulturalZone = "CENTRAL_ASIAN"
	ZoneOceanian                  CulturalZone = "OCEANIAN"
	ZoneNorthAmericanPreColumbian CulturalZone = "NORTH_AMERICAN_PRE_COLUMBIAN"
	ZoneNorthAmericanColonial     CulturalZone = "NORTH_AMERICAN_COLONIAL"
	ZoneSouthAmerican             CulturalZone = "SOUTH_AMERICAN"
)

// CulturalZones lists every zone in the fixed order used by classifiers
var CulturalZones = []CulturalZone{
	ZoneEuropean, ZoneMENA, ZoneSubSaharanAfrican, ZoneSouthAsian,
	ZoneEastAsian, ZoneSoutheastAsian, ZoneCentralAsian, ZoneOceanian,
	ZoneNorthAmericanPreColumbian, ZoneNorthAmericanColonial, ZoneSouthAmerican,
}

// Key is the lowercase catalog key, e.g. "north_american_colonial"
func (z CulturalZone) Key() string {
	return strings.ToLower(string(z))
}

// ZoneFromKey maps a catalog key back to a zone
func ZoneFromKey(key string) (CulturalZone, bool) {
	for _, z := range CulturalZones {
		if z.Key() == strings.ToLower(key) {
			return z, true
		}
	}
	return "", false
}

// WealthLevel is the ordered wealth tier
type WealthLevel int

const (
	WealthPoor WealthLevel = iota
	WealthModest
	WealthComfortable
	WealthWealthy
	WealthNoble
)

// WealthLevels lists tiers from lowest to highest
var WealthLevels = []WealthLevel{
	WealthPoor, WealthModest, WealthComfortable, WealthWealthy, WealthNoble,
}

var wealthNames = map[WealthLevel]string{
	WealthPoor:        "poor",
	WealthModest:      "modest",
	WealthComfortable: "comfortable",
	WealthWealthy:     "wealthy",
	WealthNoble:       "noble",
}

func (w WealthLevel) String() string {
	if name, ok := wealthNames[w]; ok {
		return name
	}
	return fmt.Sprintf("wealth(%d)", int(w))
}

// ParseWealthLevel maps a tier name to its level
func ParseWealthLevel(s string) (WealthLevel, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for level, name := range wealthNames {
		if name == s {
			return level, true
		}
	}
	return 0, false
}

// MarshalText encodes the tier by name
func (w WealthLevel) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText decodes a tier name
func (w *WealthLevel) UnmarshalText(b []byte) error {
	level, ok := ParseWealthLevel(string(b))
	if !ok {
		return fmt.Errorf("unknown wealth level %q", string(b))
	}
	*w = level
	return nil
}

// MinWealth returns the lower of two tiers
func MinWealth(a, b WealthLevel) WealthLevel {
	if a < b {
		return a
	}
	return b
}

// HealthTier nudges the disease probability
type HealthTier string

const (
	HealthDefault HealthTier = ""
	HealthHealthy HealthTier = "healthy"
	HealthSickly  HealthTier = "sickly"
	HealthSick    HealthTier = "sick"
)

// Slot is where an item is worn or carried
type Slot string

const (
	SlotHead      Slot = "head"
	SlotBody      Slot = "body"
	SlotFeet      Slot = "feet"
	SlotHands     Slot = "hands"
	SlotAccessory Slot = "accessory"
	SlotTool      Slot = "tool"
)

// BirthYearSource records how a birth year was established
type BirthYearSource string

const (
	BirthYearExplicit BirthYearSource = "explicit"
	BirthYearDerived  BirthYearSource = "derived"
)
