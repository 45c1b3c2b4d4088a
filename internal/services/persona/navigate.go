package persona

import (
	"sort"

	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/noise"
	"github.com/KirkDiggler/historical-personas/internal/services/family"
	"github.com/KirkDiggler/historical-personas/internal/setting"
)

// NavigateInput opens Member of Origin's family as a new persona
type NavigateInput struct {
	Origin *entities.Persona
	Member *entities.FamilyStub
	// Seed replays a navigation; zero draws a fresh seed
	Seed int64
}

// Validate checks the input for programmer errors
func (in *NavigateInput) Validate() error {
	if in == nil {
		return perr.InvalidArgument("navigate input is required")
	}
	if in.Origin == nil {
		return perr.InvalidArgument("origin persona is required")
	}
	if in.Member == nil {
		return perr.InvalidArgument("family member is required").WithMeta("persona_id", in.Origin.ID)
	}
	if _, ok := in.Member.Relation.Kind(); !ok {
		return perr.InvalidArgumentf("unknown relation %q", in.Member.Relation).
			WithMeta("persona_id", in.Origin.ID)
	}
	return nil
}

// driftRates is the chance a relative lived somewhere else
var driftRates = map[entities.RelationKind]float64{
	entities.KindSpouse:  0.10,
	entities.KindChild:   0.05,
	entities.KindSibling: 0.05,
	entities.KindTwin:    0.05,
	entities.KindParent:  0.10,
}

// Relative birth offsets used when a stub carries neither birth year nor age
const (
	siblingSpread = 10
	spouseSpread  = 5
)

// Navigate builds the relative as a full persona. The relative keeps the
// origin's cultural zone and region. Their own family agrees with the
// origin's: the origin appears with the inverse relation and shared kin are
// carried over instead of drawn.
func (s *service) Navigate(input *NavigateInput) (*GenerateOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	origin := input.Origin
	member := input.Member.Clone()
	kind, _ := member.Relation.Kind()

	seed := input.Seed
	if seed == 0 {
		seed = noise.NewSeed()
	}
	src := s.noise(seed)

	display := origin.Year
	if kind == entities.KindParent {
		display = origin.Character.BirthYear
	}
	if member.IsDeceased && member.DeathYear != nil && *member.DeathYear < display {
		display = *member.DeathYear
	}

	birth, drawn := relativeBirthYear(src, origin, member, kind)
	if drawn && birth > display {
		birth = display
	}

	ctx := setting.ForYear(display, origin.CulturalZone, origin.Region, s.location(src, origin, kind))

	spec := &entities.CharacterSpecification{
		Name:       member.Name,
		Gender:     member.Gender,
		BirthYear:  entities.Year(birth),
		Profession: member.Profession,
	}
	if member.Relation.IsBlood() {
		spec.Religion = origin.Character.Religion
		spec.SocialClass = entities.ClassLabel(ctx.Era, origin.Character.WealthLevel)
		spec.EthnicZone = origin.Character.EthnicZone
	}
	if kind == entities.KindTwin {
		spec.Attributes = []string{entities.BadgeTwin}
	}

	d, err := s.build(src, &request{
		setting: ctx,
		spec:    spec,
		seed:    seed,
		surname: member.Surname,
		origin: &entities.OriginLink{
			PersonaID: origin.ID,
			Name:      origin.Character.Name,
			Relation:  member.Relation,
		},
	})
	if err != nil {
		return nil, perr.Wrapf(err, "navigate to %s", member.Relation).WithMeta("persona_id", origin.ID)
	}
	reconcile(d, origin, member, kind)
	s.finish(d)

	s.logger.Debug("navigated to relative",
		"origin_id", origin.ID,
		"relation", member.Relation,
		"birth_year", birth,
		"display_year", display)

	return &GenerateOutput{Persona: d.persona, Warnings: d.warnings, Seed: seed}, nil
}

// relativeBirthYear returns the stub's birth year when it has one. Without
// it the year comes from the stub's age, and only then from a draw by
// relation; drawn is true in that last case.
func relativeBirthYear(src noise.Source, origin *entities.Persona, m entities.FamilyStub, kind entities.RelationKind) (int, bool) {
	if m.BirthYear != nil {
		return *m.BirthYear, false
	}
	if m.IsDeceased && m.DeathYear != nil {
		return *m.DeathYear - m.Age, false
	}
	if m.Age > 0 {
		return origin.Year - m.Age, false
	}

	born := origin.Character.BirthYear
	switch kind {
	case entities.KindParent:
		lo, hi := family.ParentBand(m.Gender)
		return born - noise.Range(src, lo, hi), true
	case entities.KindSibling:
		return born + noise.Range(src, -siblingSpread, siblingSpread), true
	case entities.KindSpouse:
		return born + noise.Range(src, -spouseSpread, spouseSpread), true
	case entities.KindChild:
		lo := family.MinParentAge
		hi := origin.Year - born
		if hi < lo {
			hi = lo
		}
		return born + noise.Range(src, lo, hi), true
	}
	return born, true
}

// location rolls the drift gate. Regional drift is not modeled, so both
// branches keep the origin's location.
func (s *service) location(src noise.Source, origin *entities.Persona, kind entities.RelationKind) string {
	if noise.Chance(src, driftRates[kind]) {
		s.logger.Debug("relative drift rolled", "origin_id", origin.ID, "kind", kind)
	}
	return origin.Location
}

// reconcile swaps freshly drawn kin for the origin and the relatives the
// two personas share, evaluated at the new display year
func reconcile(d *draft, origin *entities.Persona, member entities.FamilyStub, kind entities.RelationKind) {
	c := &d.persona.Character
	display := d.persona.Year

	inverse, _ := entities.InverseRelation(member.Relation, origin.Character.Gender)
	self := entities.FamilyStub{
		Name:       origin.Character.Name,
		Surname:    origin.Character.Surname,
		Relation:   inverse,
		Gender:     origin.Character.Gender,
		BirthYear:  entities.Year(origin.Character.BirthYear),
		Age:        origin.Character.Age,
		Profession: origin.Character.Profession,
	}
	// the origin stays linked even when not yet born at the display year
	self, _ = self.AtYear(display)

	var replace []entities.RelationKind
	derived := []entities.FamilyStub{self}
	for _, m := range origin.Character.Family {
		if sameStub(m, member) {
			continue
		}
		mk, ok := m.Relation.Kind()
		if !ok {
			continue
		}
		as, share := sharedKind(kind, mk)
		if !share {
			continue
		}
		shared := m.Clone()
		shared.Relation = entities.RelationFor(as, shared.Gender)
		at, born := shared.AtYear(display)
		if !born {
			continue
		}
		derived = append(derived, at)
	}

	switch kind {
	case entities.KindParent, entities.KindSpouse:
		replace = []entities.RelationKind{entities.KindSpouse, entities.KindChild}
		d.marriageYear = nil
	default:
		replace = []entities.RelationKind{entities.KindParent, entities.KindSibling, entities.KindTwin}
		if kind != entities.KindTwin {
			c.Attributes = dropBadge(c.Attributes, entities.BadgeTwin)
		}
	}

	kept := make([]entities.FamilyStub, 0, len(c.Family)+len(derived))
	for _, m := range c.Family {
		mk, _ := m.Relation.Kind()
		if !containsKind(replace, mk) {
			kept = append(kept, m)
		}
	}
	c.Family = append(kept, derived...)
	sortFamily(c.Family)
}

// sharedKind maps a relative of the origin (kind mk) to how they relate to
// a relative reached via kind, if the two share them
func sharedKind(kind, mk entities.RelationKind) (entities.RelationKind, bool) {
	switch kind {
	case entities.KindParent:
		switch mk {
		case entities.KindParent:
			return entities.KindSpouse, true
		case entities.KindSibling, entities.KindTwin:
			return entities.KindChild, true
		}
	case entities.KindChild:
		switch mk {
		case entities.KindSpouse:
			return entities.KindParent, true
		case entities.KindChild:
			return entities.KindSibling, true
		}
	case entities.KindSibling, entities.KindTwin:
		switch mk {
		case entities.KindParent:
			return entities.KindParent, true
		case entities.KindSibling, entities.KindTwin:
			return entities.KindSibling, true
		}
	case entities.KindSpouse:
		if mk == entities.KindChild {
			return entities.KindChild, true
		}
	}
	return "", false
}

func sameStub(a, b entities.FamilyStub) bool {
	if a.Name != b.Name || a.Relation != b.Relation {
		return false
	}
	if a.BirthYear == nil || b.BirthYear == nil {
		return a.BirthYear == nil && b.BirthYear == nil
	}
	return *a.BirthYear == *b.BirthYear
}

func containsKind(kinds []entities.RelationKind, kind entities.RelationKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func dropBadge(badges []entities.AttributeBadge, id string) []entities.AttributeBadge {
	out := badges[:0:0]
	for _, b := range badges {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}

var kindOrder = map[entities.RelationKind]int{
	entities.KindParent:  0,
	entities.KindTwin:    1,
	entities.KindSibling: 2,
	entities.KindSpouse:  3,
	entities.KindChild:   4,
}

// sortFamily orders parents, siblings, spouse and children, each by birth
func sortFamily(members []entities.FamilyStub) {
	sort.SliceStable(members, func(i, j int) bool {
		ki, _ := members[i].Relation.Kind()
		kj, _ := members[j].Relation.Kind()
		if kindOrder[ki] != kindOrder[kj] {
			return kindOrder[ki] < kindOrder[kj]
		}
		bi, bj := members[i].BirthYear, members[j].BirthYear
		if bi == nil || bj == nil {
			return bi != nil
		}
		return *bi < *bj
	})
}
