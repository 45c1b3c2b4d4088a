package catalog

import (
	"strings"

	"github.com/KirkDiggler/historical-personas/internal/entities"
)

type professionsFile struct {
	General  map[entities.Era]map[string][]string `yaml:"general"`
	Domestic map[entities.Era][]string            `yaml:"domestic"`
}

// Professions returns the roles for an era and class label
func (c *Catalog) Professions(era entities.Era, class string) []string {
	byClass, ok := c.profs.General[era]
	if !ok {
		return nil
	}
	if roles, ok := byClass[class]; ok {
		return roles
	}
	for label, roles := range byClass {
		if strings.EqualFold(label, class) {
			return roles
		}
	}
	return nil
}

// DomesticProfessions returns the household roles for an era
func (c *Catalog) DomesticProfessions(era entities.Era) []string {
	return c.profs.Domestic[era]
}
