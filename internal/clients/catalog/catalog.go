package catalog

import (
	"embed"
	"io/fs"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
)

//go:embed data/*.yaml
var embeddedData embed.FS

// Period bounds a row by year, both ends inclusive. Nil means open.
type Period struct {
	From *int `yaml:"from,omitempty"`
	To   *int `yaml:"to,omitempty"`
}

// Contains reports whether year falls inside the period
func (p Period) Contains(year int) bool {
	if p.From != nil && year < *p.From {
		return false
	}
	if p.To != nil && year > *p.To {
		return false
	}
	return true
}

// Catalog is the YAML-backed Client
type Catalog struct {
	names      namesFile
	profs      professionsFile
	equipment  equipmentFile
	markings   markingsFile
	ideologies ideologiesFile
	diseases   diseasesFile
	languages  languagesFile
	appearance appearanceFile
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the process-wide catalog loaded from the embedded tables
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = LoadEmbedded()
	})
	return defaultCatalog, defaultErr
}

// LoadEmbedded loads the tables compiled into the binary
func LoadEmbedded() (*Catalog, error) {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		return nil, perr.Wrap(err, "open embedded catalog")
	}
	return Load(sub)
}

// Load reads every table from fsys. Each file must be present.
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{}
	files := []struct {
		name string
		dest any
	}{
		{"names.yaml", &c.names},
		{"professions.yaml", &c.profs},
		{"equipment.yaml", &c.equipment},
		{"markings.yaml", &c.markings},
		{"ideologies.yaml", &c.ideologies},
		{"diseases.yaml", &c.diseases},
		{"languages.yaml", &c.languages},
		{"appearance.yaml", &c.appearance},
	}

	for _, f := range files {
		data, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return nil, perr.Wrapf(err, "read catalog %s", f.name)
		}
		if err := yaml.Unmarshal(data, f.dest); err != nil {
			return nil, perr.WrapWithCode(err, perr.CodeInvalidArgument, "parse catalog "+f.name)
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	for _, z := range c.names.Zones {
		if _, ok := entities.ZoneFromKey(string(z.Zone)); !ok {
			return perr.InvalidArgumentf("names: unknown zone %q", z.Zone)
		}
		if len(z.Lists) == 0 {
			return perr.InvalidArgumentf("names: zone %s has no lists", z.Zone)
		}
	}
	for _, d := range c.diseases.Diseases {
		if d.ID == "" || d.Prevalence <= 0 {
			return perr.InvalidArgumentf("diseases: %q needs an id and a positive prevalence", d.Name)
		}
	}
	known := make(map[string]bool, len(c.diseases.Diseases))
	for _, d := range c.diseases.Diseases {
		known[d.ID] = true
	}
	for _, e := range c.diseases.Epidemics {
		if !known[e.DiseaseID] {
			return perr.InvalidArgumentf("epidemics: %q references unknown disease %q", e.Name, e.DiseaseID)
		}
	}
	return nil
}
