// Package setting turns free-text date and location strings into the
// structured year, era and cultural zone the generator works with.
package setting

import (
	"github.com/KirkDiggler/historical-personas/internal/entities"
)

// eraRule maps every year at or after From to Era. Rules are evaluated top
// to bottom so boundary years belong to the later era.
type eraRule struct {
	From int
	Era  entities.Era
}

var eraRules = []eraRule{
	{From: 2020, Era: entities.EraFuture},
	{From: 1900, Era: entities.EraModern},
	{From: 1700, Era: entities.EraIndustrial},
	{From: 1400, Era: entities.EraRenaissance},
	{From: 500, Era: entities.EraMedieval},
	{From: -2000, Era: entities.EraAntiquity},
}

// EraForYear classifies a signed year (negative is BCE)
func EraForYear(year int) entities.Era {
	for _, rule := range eraRules {
		if year >= rule.From {
			return rule.Era
		}
	}
	return entities.EraPrehistory
}

// CenturyForYear returns the signed century; 1348 is the 14th, -200 the -2nd
func CenturyForYear(year int) int {
	if year > 0 {
		return (year-1)/100 + 1
	}
	if year < 0 {
		return -((-year-1)/100 + 1)
	}
	return 1
}
