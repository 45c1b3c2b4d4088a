package disease

import (
	"github.com/KirkDiggler/historical-personas/internal/clients/catalog"
	"github.com/KirkDiggler/historical-personas/internal/entities"
)

//go:generate mockgen -destination=mock/mock_source.go -package=mockdisease . Source

// Source answers disease queries for a context
type Source interface {
	// AvailableForContext lists diseases that can be contracted in zone and year
	AvailableForContext(zone entities.CulturalZone, year int) []catalog.Disease
	// Epidemic returns an outbreak active in zone and year and its disease
	Epidemic(zone entities.CulturalZone, year int) (catalog.Epidemic, catalog.Disease, bool)
	// AssignSpecific returns the disease with id if it is available in context
	AssignSpecific(id string, zone entities.CulturalZone, year int) (catalog.Disease, bool)
}

type catalogSource struct {
	table catalog.DiseaseTable
}

// NewCatalogSource serves disease queries from an in-memory table
func NewCatalogSource(table catalog.DiseaseTable) Source {
	return &catalogSource{table: table}
}

func (c *catalogSource) AvailableForContext(zone entities.CulturalZone, year int) []catalog.Disease {
	var out []catalog.Disease
	for _, d := range c.table.Diseases() {
		if d.AvailableIn(zone, year) {
			out = append(out, d)
		}
	}
	return out
}

func (c *catalogSource) Epidemic(zone entities.CulturalZone, year int) (catalog.Epidemic, catalog.Disease, bool) {
	for _, e := range c.table.Epidemics() {
		if !e.ActiveIn(zone, year) {
			continue
		}
		for _, d := range c.table.Diseases() {
			if d.ID == e.DiseaseID {
				return e, d, true
			}
		}
	}
	return catalog.Epidemic{}, catalog.Disease{}, false
}

func (c *catalogSource) AssignSpecific(id string, zone entities.CulturalZone, year int) (catalog.Disease, bool) {
	for _, d := range c.table.Diseases() {
		if d.ID == id && d.AvailableIn(zone, year) {
			return d, true
		}
	}
	return catalog.Disease{}, false
}
