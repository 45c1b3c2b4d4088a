package catalog

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/historical-personas/internal/entities"
)

// StartingPackage is the equipment a character begins with
type StartingPackage struct {
	Inventory []entities.Item
	Equipped  map[entities.Slot]entities.Item
	// Note is set when the role had no package of its own
	Note string
}

type equipmentFile struct {
	Roles    map[string][]entities.Item `yaml:"roles"`
	Classes  map[string][]entities.Item `yaml:"classes"`
	Fallback []entities.Item            `yaml:"fallback"`
}

// AssembleStartingPackage looks up the role's package, then the class
// default, then the fallback. Items with a slot are also equipped; the first
// item per slot wins.
func (c *Catalog) AssembleStartingPackage(role, class string) StartingPackage {
	items, ok := c.equipment.Roles[strings.ToLower(strings.TrimSpace(role))]
	note := ""
	if !ok {
		items, ok = c.equipment.Classes[class]
		if ok {
			note = fmt.Sprintf("no starting package for %q, used %s default", role, class)
		} else {
			items = c.equipment.Fallback
			note = fmt.Sprintf("no starting package for %q or class %q, used fallback", role, class)
		}
	}

	pkg := StartingPackage{
		Inventory: append([]entities.Item(nil), items...),
		Equipped:  make(map[entities.Slot]entities.Item),
		Note:      note,
	}
	for _, item := range items {
		if item.Slot == "" {
			continue
		}
		if _, taken := pkg.Equipped[item.Slot]; !taken {
			pkg.Equipped[item.Slot] = item
		}
	}
	return pkg
}
