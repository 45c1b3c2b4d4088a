// Package naming draws names for a zone and infers a zone back from a name.
package naming

import (
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/KirkDiggler/historical-personas/internal/clients/catalog"
	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/noise"
)

// Service resolves names
type Service interface {
	// Resolve draws a full name
	Resolve(src noise.Source, input *ResolveInput) (*Name, error)
	// Surname draws only a family name, e.g. a mother's maiden name
	Surname(src noise.Source, zone entities.CulturalZone, birthYear int) string
	// Given draws only a given name
	Given(src noise.Source, zone entities.CulturalZone, gender entities.Gender, birthYear int) string
	// Compose joins given name and surname in the zone's order
	Compose(zone entities.CulturalZone, given, surname string) string
	// DetectEthnicity infers the zone a name most likely comes from
	DetectEthnicity(name string) (entities.CulturalZone, bool)
}

// ResolveInput selects the name lists to draw from
type ResolveInput struct {
	Gender    entities.Gender
	Zone      entities.CulturalZone
	BirthYear int
	NameKey   string

	// EthnicZone, when set, replaces the geographic zone as the name source
	EthnicZone entities.CulturalZone

	// Surname, when set, is kept instead of drawn
	Surname string
}

// Name is a composed name and the zone it was drawn from
type Name struct {
	Full    string
	Given   string
	Surname string
	Source  entities.CulturalZone
}

// ServiceConfig holds the service dependencies
type ServiceConfig struct {
	Names  catalog.NameSource
	Logger *slog.Logger
}

type service struct {
	names  catalog.NameSource
	logger *slog.Logger
	index  []zoneIndex
}

// zoneIndex holds folded names of one zone for ethnicity detection
type zoneIndex struct {
	zone     entities.CulturalZone
	given    map[string]bool
	surnames map[string]bool
}

// NewService creates a naming service and indexes the name source
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Names == nil {
		panic("name source is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &service{names: cfg.Names, logger: logger}

	for _, zone := range entities.CulturalZones {
		given, surnames := cfg.Names.ZoneNames(zone)
		idx := zoneIndex{
			zone:     zone,
			given:    make(map[string]bool, len(given)),
			surnames: make(map[string]bool, len(surnames)),
		}
		for _, g := range given {
			idx.given[Fold(g)] = true
		}
		for _, sn := range surnames {
			idx.surnames[Fold(sn)] = true
		}
		s.index = append(s.index, idx)
	}
	return s
}

func (s *service) Resolve(src noise.Source, input *ResolveInput) (*Name, error) {
	if input == nil {
		return nil, perr.InvalidArgument("name input is required")
	}

	zone := input.Zone
	if input.EthnicZone != "" {
		zone = input.EthnicZone
	} else {
		zone = s.diasporaZone(src, zone, input.BirthYear)
	}

	set, ok := s.names.Names(zone, input.BirthYear, input.NameKey)
	if !ok {
		return nil, perr.NotFoundf("no names for zone %s", zone).WithMeta("zone", zone)
	}

	given := pickGiven(src, set, input.Gender)
	surname := input.Surname
	if surname == "" && !set.NoSurname {
		surname, _ = noise.Pick(src, set.Surnames)
	}

	return &Name{
		Full:    compose(set, given, surname),
		Given:   given,
		Surname: surname,
		Source:  zone,
	}, nil
}

// diasporaZone occasionally swaps the zone for one of its diaspora sources.
// One draw is consumed per active source.
func (s *service) diasporaZone(src noise.Source, zone entities.CulturalZone, birthYear int) entities.CulturalZone {
	for _, d := range s.names.Diaspora(zone, birthYear) {
		if noise.Chance(src, d.Rate) {
			s.logger.Debug("diaspora name source", "zone", zone, "source", d.Zone)
			return d.Zone
		}
	}
	return zone
}

func (s *service) Surname(src noise.Source, zone entities.CulturalZone, birthYear int) string {
	set, ok := s.names.Names(zone, birthYear, "")
	if !ok || set.NoSurname {
		return ""
	}
	surname, _ := noise.Pick(src, set.Surnames)
	return surname
}

func (s *service) Given(src noise.Source, zone entities.CulturalZone, gender entities.Gender, birthYear int) string {
	set, ok := s.names.Names(zone, birthYear, "")
	if !ok {
		return ""
	}
	return pickGiven(src, set, gender)
}

func (s *service) Compose(zone entities.CulturalZone, given, surname string) string {
	set, _ := s.names.Names(zone, 0, "")
	return compose(set, given, surname)
}

func pickGiven(src noise.Source, set catalog.NameSet, gender entities.Gender) string {
	pool := set.Male
	switch gender {
	case entities.GenderFemale:
		pool = set.Female
	case entities.GenderNonBinary:
		pool = append(append([]string(nil), set.Male...), set.Female...)
	}
	given, _ := noise.Pick(src, pool)
	return given
}

func compose(set catalog.NameSet, given, surname string) string {
	switch {
	case surname == "":
		return given
	case given == "":
		return surname
	case set.SurnameFirst:
		return surname + " " + given
	default:
		return given + " " + surname
	}
}

// DetectEthnicity folds the first and last tokens of name and checks them
// against each zone's lists in fixed zone order. A surname hit is checked
// before a given name hit; the first zone that matches wins.
func (s *service) DetectEthnicity(name string) (entities.CulturalZone, bool) {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "", false
	}
	first := Fold(tokens[0])
	last := Fold(tokens[len(tokens)-1])
	full := Fold(name)

	for _, idx := range s.index {
		if len(tokens) > 1 && (idx.surnames[last] || idx.surnames[first]) {
			return idx.zone, true
		}
		// multi-word surnames such as "de Montfort"
		if len(tokens) > 2 && idx.surnames[Fold(strings.Join(tokens[1:], " "))] {
			return idx.zone, true
		}
	}
	for _, idx := range s.index {
		if idx.given[first] || idx.given[last] || idx.given[full] {
			return idx.zone, true
		}
	}
	return "", false
}

// Fold lowercases s and strips diacritics so "Zoë" and "zoe" compare equal
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
