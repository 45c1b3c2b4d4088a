package catalog

import (
	"github.com/KirkDiggler/historical-personas/internal/entities"
)

// Shade is a named color with a draw weight
type Shade struct {
	Name   string  `yaml:"name"`
	Hex    string  `yaml:"hex"`
	Weight float64 `yaml:"weight"`
}

// PaletteTable holds the weighted colorings for one zone
type PaletteTable struct {
	Skin []Shade `yaml:"skin"`
	Hair []Shade `yaml:"hair"`
	Eyes []Shade `yaml:"eyes"`
}

type appearanceFile struct {
	Palettes map[string]PaletteTable   `yaml:"palettes"`
	Builds   []string                  `yaml:"builds"`
	Faces    []string                  `yaml:"faces"`
	Accents  []string                  `yaml:"accents"`
	Garments map[entities.Era][]string `yaml:"garments"`
	Quality  map[string]string         `yaml:"quality"`
}

// Palette returns the zone's table or the default one
func (c *Catalog) Palette(zone entities.CulturalZone) PaletteTable {
	if p, ok := c.appearance.Palettes[string(zone)]; ok {
		return p
	}
	return c.appearance.Palettes["default"]
}

// Builds lists body builds
func (c *Catalog) Builds() []string { return c.appearance.Builds }

// Faces lists face shapes
func (c *Catalog) Faces() []string { return c.appearance.Faces }

// Accents lists accent colors
func (c *Catalog) Accents() []string { return c.appearance.Accents }

// Garments lists the era's base clothing
func (c *Catalog) Garments(era entities.Era) []string { return c.appearance.Garments[era] }

// Quality is the adjective for clothing at a wealth tier
func (c *Catalog) Quality(wealth entities.WealthLevel) string {
	return c.appearance.Quality[wealth.String()]
}
