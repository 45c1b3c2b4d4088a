package catalog

import (
	"github.com/KirkDiggler/historical-personas/internal/entities"
)

// NameSet is one resolved name list
type NameSet struct {
	Zone         entities.CulturalZone
	Male         []string
	Female       []string
	Surnames     []string
	SurnameFirst bool
	NoSurname    bool
}

// Diaspora is a zone names may be borrowed from and how often
type Diaspora struct {
	Period `yaml:",inline"`

	Zone entities.CulturalZone `yaml:"zone"`
	Rate float64               `yaml:"rate"`
}

type nameList struct {
	Period `yaml:",inline"`

	Key      string   `yaml:"key,omitempty"`
	Male     []string `yaml:"male"`
	Female   []string `yaml:"female"`
	Surnames []string `yaml:"surnames"`
}

type zoneNames struct {
	Zone         entities.CulturalZone `yaml:"zone"`
	SurnameFirst bool                  `yaml:"surname_first"`
	NoSurname    bool                  `yaml:"no_surname"`
	Diaspora     []Diaspora            `yaml:"diaspora"`
	Lists        []nameList            `yaml:"lists"`
}

type namesFile struct {
	Zones []zoneNames `yaml:"zones"`
}

func (c *Catalog) zone(zone entities.CulturalZone) (zoneNames, bool) {
	for _, z := range c.names.Zones {
		if z.Zone == zone {
			return z, true
		}
	}
	return zoneNames{}, false
}

// Names picks the keyed list when asked and available, otherwise the
// unkeyed list whose period covers birthYear, otherwise the first unkeyed
// list.
func (c *Catalog) Names(zone entities.CulturalZone, birthYear int, key string) (NameSet, bool) {
	z, ok := c.zone(zone)
	if !ok {
		return NameSet{}, false
	}

	var picked *nameList
	if key != "" {
		for i := range z.Lists {
			if z.Lists[i].Key == key && z.Lists[i].Contains(birthYear) {
				picked = &z.Lists[i]
				break
			}
		}
	}
	if picked == nil {
		for i := range z.Lists {
			if z.Lists[i].Key == "" && z.Lists[i].Contains(birthYear) {
				picked = &z.Lists[i]
				break
			}
		}
	}
	if picked == nil {
		for i := range z.Lists {
			if z.Lists[i].Key == "" {
				picked = &z.Lists[i]
				break
			}
		}
	}
	if picked == nil {
		return NameSet{}, false
	}

	return NameSet{
		Zone:         z.Zone,
		Male:         picked.Male,
		Female:       picked.Female,
		Surnames:     picked.Surnames,
		SurnameFirst: z.SurnameFirst,
		NoSurname:    z.NoSurname || len(picked.Surnames) == 0,
	}, true
}

// Diaspora returns the borrow sources active for birthYear
func (c *Catalog) Diaspora(zone entities.CulturalZone, birthYear int) []Diaspora {
	z, ok := c.zone(zone)
	if !ok {
		return nil
	}
	var out []Diaspora
	for _, d := range z.Diaspora {
		if d.Contains(birthYear) {
			out = append(out, d)
		}
	}
	return out
}

// ZoneNames unions every list of a zone
func (c *Catalog) ZoneNames(zone entities.CulturalZone) (given, surnames []string) {
	z, ok := c.zone(zone)
	if !ok {
		return nil, nil
	}
	for _, l := range z.Lists {
		given = append(given, l.Male...)
		given = append(given, l.Female...)
		surnames = append(surnames, l.Surnames...)
	}
	return given, surnames
}
