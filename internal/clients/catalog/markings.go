package catalog

import (
	"github.com/KirkDiggler/historical-personas/internal/entities"
)

// MarkingEntry is a marking with its draw weight
type MarkingEntry struct {
	entities.Marking `yaml:",inline"`
	Period           `yaml:",inline"`
	Zones            []entities.CulturalZone `yaml:"zones"`
	Weight           float64                 `yaml:"weight"`
}

type markingsFile struct {
	Chance        map[entities.CulturalZone]float64 `yaml:"chance"`
	DefaultChance float64                           `yaml:"default_chance"`
	Markings      []MarkingEntry                    `yaml:"markings"`
}

// MarkingChance is the probability a character from zone has any marking
func (c *Catalog) MarkingChance(zone entities.CulturalZone) float64 {
	if p, ok := c.markings.Chance[zone]; ok {
		return p
	}
	return c.markings.DefaultChance
}

// Markings lists the markings available in a zone and year
func (c *Catalog) Markings(zone entities.CulturalZone, year int) []MarkingEntry {
	var out []MarkingEntry
	for _, m := range c.markings.Markings {
		if !m.Contains(year) || !zoneAllowed(m.Zones, zone) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func zoneAllowed(zones []entities.CulturalZone, zone entities.CulturalZone) bool {
	if len(zones) == 0 {
		return true
	}
	for _, z := range zones {
		if z == zone {
			return true
		}
	}
	return false
}
