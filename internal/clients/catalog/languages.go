package catalog

import (
	"github.com/KirkDiggler/historical-personas/internal/entities"
)

type languageRow struct {
	Zone    entities.CulturalZone `yaml:"zone"`
	Primary string                `yaml:"primary"`
	Script  string                `yaml:"script"`
	Period  `yaml:",inline"`
}

type languagesFile struct {
	Languages []languageRow `yaml:"languages"`
}

// Language returns the first row for zone whose period covers year
func (c *Catalog) Language(zone entities.CulturalZone, year int) (entities.LanguageData, bool) {
	for _, row := range c.languages.Languages {
		if row.Zone == zone && row.Contains(year) {
			return entities.LanguageData{Primary: row.Primary, Script: row.Script}, true
		}
	}
	return entities.LanguageData{}, false
}
