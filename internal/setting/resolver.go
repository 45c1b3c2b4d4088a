package setting

import (
	"github.com/KirkDiggler/historical-personas/internal/entities"
)

// Context is the full resolved setting for one generation call
type Context struct {
	Date     DateContext
	Place    LocationContext
	Year     int
	Era      entities.Era
	Zone     entities.CulturalZone
	Region   string
	Location string
}

// Resolve parses both strings. It never fails.
func Resolve(date, location string) Context {
	d := ParseDate(date)
	l := ResolveLocation(location, d.Year)
	return Context{
		Date:     d,
		Place:    l,
		Year:     d.Year,
		Era:      d.Era,
		Zone:     l.Zone,
		Region:   l.Region,
		Location: l.Location,
	}
}

// ForYear builds a context for an explicit year with an already known zone,
// region and location. Family navigation uses it to re-enter the pipeline.
func ForYear(year int, zone entities.CulturalZone, region, location string) Context {
	d := contextForYear(year, year < 0, 0, 0, false)
	return Context{
		Date:     d,
		Place:    LocationContext{Zone: zone, Region: region, Location: location, Matched: true},
		Year:     year,
		Era:      d.Era,
		Zone:     zone,
		Region:   region,
		Location: location,
	}
}
