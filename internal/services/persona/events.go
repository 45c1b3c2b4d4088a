package persona

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/KirkDiggler/historical-personas/internal/entities"
)

// Event categories
const (
	CategoryBirth    = "birth"
	CategoryFamily   = "family"
	CategoryLoss     = "loss"
	CategoryMarriage = "marriage"
	CategoryHealth   = "health"
	CategoryCareer   = "career"
)

// CareerStartAge is the age a trade is taken up at
const CareerStartAge = 16

// lifeEvents derives the ordered timeline from the finished character. Only
// events up to the display year are kept.
func lifeEvents(p *entities.Persona, marriageYear *int) ([]entities.LifeEvent, []entities.EnhancedLifeEvent) {
	c := &p.Character
	var out []entities.EnhancedLifeEvent
	add := func(year int, category, text string) {
		if year < c.BirthYear || year > p.Year {
			return
		}
		out = append(out, entities.EnhancedLifeEvent{
			Year:     year,
			Age:      year - c.BirthYear,
			Category: category,
			Event:    text,
		})
	}

	place := p.Location
	if place == "" {
		place = p.Region
	}
	if place != "" {
		add(c.BirthYear, CategoryBirth, fmt.Sprintf("Born in %s", place))
	} else {
		add(c.BirthYear, CategoryBirth, "Born")
	}

	children := 0
	for _, m := range c.Family {
		kind, ok := m.Relation.Kind()
		if !ok {
			continue
		}
		switch kind {
		case entities.KindTwin:
			add(c.BirthYear, CategoryFamily, fmt.Sprintf("Born alongside a twin, %s", m.Name))
		case entities.KindSibling:
			if m.BirthYear != nil && *m.BirthYear > c.BirthYear {
				add(*m.BirthYear, CategoryFamily, fmt.Sprintf("A %s, %s, was born", m.Relation, m.Name))
			}
		case entities.KindParent:
			if m.IsDeceased && m.DeathYear != nil {
				add(*m.DeathYear, CategoryLoss, fmt.Sprintf("Lost their %s, %s", m.Relation, m.Name))
			}
		case entities.KindSpouse:
			if m.IsDeceased && m.DeathYear != nil {
				add(*m.DeathYear, CategoryLoss, fmt.Sprintf("Widowed by the death of %s", m.Name))
			}
		case entities.KindChild:
			if m.BirthYear == nil {
				continue
			}
			children++
			add(*m.BirthYear, CategoryFamily, fmt.Sprintf("Birth of %s child, %s", humanize.Ordinal(children), m.Name))
			if m.IsDeceased && m.DeathYear != nil {
				add(*m.DeathYear, CategoryLoss, fmt.Sprintf("Mourned the death of %s", m.Name))
			}
		}
	}

	if marriageYear != nil {
		if spouse, ok := findKind(c.Family, entities.KindSpouse); ok {
			add(*marriageYear, CategoryMarriage, fmt.Sprintf("Married %s", spouse.Name))
		}
	}

	if h := c.DiseaseHealth; h != nil {
		text := fmt.Sprintf("Fell ill with %s", h.Affliction.Name)
		if h.Affliction.Epidemic {
			text = fmt.Sprintf("Caught %s during an epidemic", h.Affliction.Name)
		}
		add(h.Affliction.ContractedYear, CategoryHealth, text)
	}

	if c.Profession != "" && c.Profession != ChildProfession && c.Age >= CareerStartAge {
		add(c.BirthYear+CareerStartAge, CategoryCareer, fmt.Sprintf("Took up work as a %s", strings.ToLower(c.Profession)))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Year < out[j].Year
	})

	plain := make([]entities.LifeEvent, len(out))
	for i, e := range out {
		plain[i] = entities.LifeEvent{Year: e.Year, Event: e.Event}
	}
	return plain, out
}

func findKind(members []entities.FamilyStub, kind entities.RelationKind) (entities.FamilyStub, bool) {
	for _, m := range members {
		if k, ok := m.Relation.Kind(); ok && k == kind {
			return m, true
		}
	}
	return entities.FamilyStub{}, false
}
