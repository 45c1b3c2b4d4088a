package catalog

import (
	"github.com/KirkDiggler/historical-personas/internal/entities"
)

// Disease is one catalog row
type Disease struct {
	ID         string                  `yaml:"id"`
	Name       string                  `yaml:"name"`
	Severity   string                  `yaml:"severity"`
	Prevalence float64                 `yaml:"prevalence"`
	Zones      []entities.CulturalZone `yaml:"zones"`
	Symptoms   []string                `yaml:"symptoms"`
	Period     `yaml:",inline"`
}

// AvailableIn reports whether the disease can be contracted in zone and year
func (d Disease) AvailableIn(zone entities.CulturalZone, year int) bool {
	return d.Contains(year) && zoneAllowed(d.Zones, zone)
}

// Epidemic is an outbreak of a catalog disease
type Epidemic struct {
	DiseaseID string                  `yaml:"disease"`
	Name      string                  `yaml:"name"`
	Zones     []entities.CulturalZone `yaml:"zones"`
	Period    `yaml:",inline"`
}

// ActiveIn reports whether the outbreak covers zone and year
func (e Epidemic) ActiveIn(zone entities.CulturalZone, year int) bool {
	return e.Contains(year) && zoneAllowed(e.Zones, zone)
}

type diseasesFile struct {
	Diseases  []Disease  `yaml:"diseases"`
	Epidemics []Epidemic `yaml:"epidemics"`
}

// Diseases returns every disease row
func (c *Catalog) Diseases() []Disease {
	return c.diseases.Diseases
}

// Epidemics returns every outbreak row
func (c *Catalog) Epidemics() []Epidemic {
	return c.diseases.Epidemics
}
