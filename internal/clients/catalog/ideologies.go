package catalog

import (
	"github.com/KirkDiggler/historical-personas/internal/entities"
)

// Lean maps a Big Five trait name to -1, 0 or +1
type Lean map[string]float64

// IdeologyEntry is an ideology with the years it exists and its lean
type IdeologyEntry struct {
	entities.Ideology `yaml:",inline"`
	Period            `yaml:",inline"`
	Lean              Lean `yaml:"lean"`
}

type beliefEntry struct {
	entities.Belief `yaml:",inline"`
	Period          `yaml:",inline"`
}

type ideologiesFile struct {
	Ideologies []IdeologyEntry `yaml:"ideologies"`
	Beliefs    []beliefEntry   `yaml:"beliefs"`
}

// Ideologies lists the ideologies available in a year
func (c *Catalog) Ideologies(year int) []IdeologyEntry {
	var out []IdeologyEntry
	for _, i := range c.ideologies.Ideologies {
		if i.Contains(year) {
			out = append(out, i)
		}
	}
	return out
}

// FindIdeology looks an ideology up by ID regardless of year
func (c *Catalog) FindIdeology(id string) (entities.Ideology, bool) {
	for _, i := range c.ideologies.Ideologies {
		if i.ID == id {
			return i.Ideology, true
		}
	}
	return entities.Ideology{}, false
}

// Beliefs lists the beliefs available in a year
func (c *Catalog) Beliefs(year int) []entities.Belief {
	var out []entities.Belief
	for _, b := range c.ideologies.Beliefs {
		if b.Contains(year) {
			out = append(out, b.Belief)
		}
	}
	return out
}

// FindBelief looks a belief up by ID regardless of year
func (c *Catalog) FindBelief(id string) (entities.Belief, bool) {
	for _, b := range c.ideologies.Beliefs {
		if b.ID == id {
			return b.Belief, true
		}
	}
	return entities.Belief{}, false
}
