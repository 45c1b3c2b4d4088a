// Package family synthesizes the stubs of a character's parents, siblings,
// twin, spouse and children around an authoritative birth year.
package family

import (
	"log/slog"
	"sort"

	"github.com/KirkDiggler/historical-personas/internal/clients/catalog"
	"github.com/KirkDiggler/historical-personas/internal/entities"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/noise"
	"github.com/KirkDiggler/historical-personas/internal/services/role"
)

// Namer is the part of the naming service the synthesizer needs
type Namer interface {
	Given(src noise.Source, zone entities.CulturalZone, gender entities.Gender, birthYear int) string
	Surname(src noise.Source, zone entities.CulturalZone, birthYear int) string
	Compose(zone entities.CulturalZone, given, surname string) string
}

// Service synthesizes families
type Service interface {
	Synthesize(src noise.Source, input *SynthesizeInput) (*Family, error)
}

// Subject is the character the family is built around
type Subject struct {
	Gender      entities.Gender
	BirthYear   int
	Surname     string
	SocialClass string
}

// SynthesizeInput carries the subject and setting
type SynthesizeInput struct {
	DisplayYear int
	Era         entities.Era
	// Zone is the naming zone of the family
	Zone    entities.CulturalZone
	Subject Subject
	Twin    bool
}

// Validate checks the input for programmer errors
func (in *SynthesizeInput) Validate() error {
	if in == nil {
		return perr.InvalidArgument("family input is required")
	}
	if in.Subject.BirthYear > in.DisplayYear {
		return perr.InvalidArgumentf("subject born in %d after display year %d", in.Subject.BirthYear, in.DisplayYear).
			WithMeta("birth_year", in.Subject.BirthYear)
	}
	return nil
}

// Family is the synthesized result
type Family struct {
	Members []entities.FamilyStub
	// MarriageYear is set when a spouse was drawn
	MarriageYear *int
}

// ServiceConfig holds the service dependencies
type ServiceConfig struct {
	Namer       Namer
	Professions catalog.ProfessionSource
	Logger      *slog.Logger
}

type service struct {
	namer       Namer
	professions catalog.ProfessionSource
	logger      *slog.Logger
}

// NewService creates a family synthesizer
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Namer == nil {
		panic("namer is required")
	}
	if cfg.Professions == nil {
		panic("profession source is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &service{namer: cfg.Namer, professions: cfg.Professions, logger: logger}
}

// synthesis is the state of one Synthesize call
type synthesis struct {
	*service
	src      noise.Source
	in       *SynthesizeInput
	age      int
	lifespan int

	mother, father entities.FamilyStub
	siblings       []entities.FamilyStub
	spouse         *entities.FamilyStub
	children       []entities.FamilyStub
	marriageYear   *int
	discarded      int
}

// Synthesize draws the family in a fixed order: parents, siblings, twin,
// spouse, children.
func (s *service) Synthesize(src noise.Source, input *SynthesizeInput) (*Family, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	run := &synthesis{
		service:  s,
		src:      src,
		in:       input,
		age:      input.DisplayYear - input.Subject.BirthYear,
		lifespan: entities.Lifespan(input.Era),
	}

	run.drawParents()
	run.drawSiblings()
	if input.Twin {
		run.placeTwin()
	}
	run.drawSpouse()
	run.drawChildren()

	members := []entities.FamilyStub{run.father, run.mother}
	members = append(members, run.siblings...)
	if run.spouse != nil {
		members = append(members, *run.spouse)
	}
	members = append(members, run.children...)
	for i := range members {
		members[i] = run.capLifespan(members[i])
	}

	s.logger.Debug("family synthesized",
		"members", len(members),
		"discarded", run.discarded,
		"birth_year", input.Subject.BirthYear)

	return &Family{Members: members, MarriageYear: run.marriageYear}, nil
}

func (r *synthesis) drawParents() {
	born := r.in.Subject.BirthYear
	motherAge := noise.Range(r.src, MinParentAge, minInt(MaxMotherAge, r.lifespan-1))
	fatherAge := noise.Range(r.src, MinParentAge, minInt(MaxFatherAge, r.lifespan-1))

	r.mother = r.parent(entities.GenderFemale, born-motherAge)
	r.father = r.parent(entities.GenderMale, born-fatherAge)
}

func (r *synthesis) parent(gender entities.Gender, birthYear int) entities.FamilyStub {
	zone := r.in.Zone
	given := r.namer.Given(r.src, zone, gender, birthYear)
	surname := r.in.Subject.Surname
	if gender == entities.GenderFemale {
		surname = r.namer.Surname(r.src, zone, birthYear)
	}

	stub := entities.FamilyStub{
		Name:       r.namer.Compose(zone, given, surname),
		Surname:    surname,
		Relation:   entities.RelationFor(entities.KindParent, gender),
		Gender:     gender,
		BirthYear:  entities.Year(birthYear),
		Profession: r.profession(gender),
	}

	display := r.in.DisplayYear
	born := r.in.Subject.BirthYear
	ageNow := display - birthYear
	switch {
	case ageNow > r.lifespan:
		death := noise.Range(r.src, born+1, minInt(birthYear+r.lifespan, display))
		r.kill(&stub, death)
	case r.age > 0 && noise.Chance(r.src, adultMortality[r.in.Era]*float64(ageNow)/float64(r.lifespan)):
		r.kill(&stub, noise.Range(r.src, born+1, display))
	default:
		stub.Age = ageNow
	}
	return stub
}

func (r *synthesis) drawSiblings() {
	counts := siblingCounts[r.in.Era]
	n := noise.Range(r.src, counts.lo, counts.hi)
	born := r.in.Subject.BirthYear

	for i := 0; i < n; i++ {
		offset := noise.Range(r.src, -MaxSiblingOffset, MaxSiblingOffset)
		birth := born + offset
		gender, _ := noise.Choose(r.src, relativeGenders)

		if offset == 0 || birth > r.in.DisplayYear ||
			!InBand(entities.GenderFemale, *r.mother.BirthYear, birth) ||
			!InBand(entities.GenderMale, *r.father.BirthYear, birth) ||
			!AliveAtBirth(r.mother, birth) || !AliveAtBirth(r.father, birth) {
			r.discarded++
			continue
		}

		r.siblings = append(r.siblings, r.child(entities.KindSibling, gender, birth, r.in.Subject.Surname))
	}
	sortByBirth(r.siblings)
}

// placeTwin puts a twin in the first sibling slot, or appends one
func (r *synthesis) placeTwin() {
	gender, _ := noise.Choose(r.src, relativeGenders)
	twin := r.child(entities.KindTwin, gender, r.in.Subject.BirthYear, r.in.Subject.Surname)
	if len(r.siblings) > 0 {
		r.siblings[0] = twin
		sortByBirth(r.siblings)
		return
	}
	r.siblings = append(r.siblings, twin)
}

func (r *synthesis) drawSpouse() {
	subject := r.in.Subject
	minAge := HistoricalMarriageAge(r.in.Era, subject.Gender)
	if r.age < minAge || !noise.Chance(r.src, SpousePresence) {
		return
	}

	gender := spouseGender(r.src, subject.Gender)
	spouseMin := HistoricalMarriageAge(r.in.Era, gender)

	// offset is spouse birth year minus subject birth year
	lo := maxInt(-MaxSpouseOffset, r.age-r.lifespan)
	hi := minInt(MaxSpouseOffset, r.age-spouseMin)
	if hi < lo {
		return
	}
	offset := noise.Range(r.src, lo, hi)
	birth := subject.BirthYear + offset

	earliest := maxInt(minAge, spouseMin+offset)
	marriedAt := earliest + noise.Range(r.src, 0, minInt(r.age-earliest, 10))
	marriage := subject.BirthYear + marriedAt
	r.marriageYear = entities.Year(marriage)

	surname := subject.Surname
	if subject.Gender != entities.GenderMale {
		surname = r.namer.Surname(r.src, r.in.Zone, birth)
	}
	given := r.namer.Given(r.src, r.in.Zone, gender, birth)

	spouse := entities.FamilyStub{
		Name:       r.namer.Compose(r.in.Zone, given, surname),
		Surname:    surname,
		Relation:   entities.RelationSpouse,
		Gender:     gender,
		BirthYear:  entities.Year(birth),
		Age:        r.in.DisplayYear - birth,
		Profession: r.profession(gender),
	}
	if r.in.DisplayYear > marriage && noise.Chance(r.src, widowhood) {
		r.kill(&spouse, noise.Range(r.src, marriage+1, r.in.DisplayYear))
	}
	r.spouse = &spouse
}

func spouseGender(src noise.Source, subject entities.Gender) entities.Gender {
	switch subject {
	case entities.GenderMale:
		return entities.GenderFemale
	case entities.GenderFemale:
		return entities.GenderMale
	}
	g, _ := noise.Pick(src, []entities.Gender{entities.GenderMale, entities.GenderFemale})
	return g
}

func (r *synthesis) drawChildren() {
	if r.spouse == nil || r.marriageYear == nil || r.age < MinChildbearingAge {
		return
	}

	yearsMarried := r.in.DisplayYear - *r.marriageYear
	limit := preModernChildCap
	if c, ok := childCaps[r.in.Era]; ok {
		limit = c
	}
	limit = minInt(limit, yearsMarried+1)
	n := noise.Range(r.src, 0, limit)

	subject := r.in.Subject
	surname := subject.Surname
	if subject.Gender == entities.GenderFemale ||
		(subject.Gender == entities.GenderNonBinary && r.spouse.Gender == entities.GenderMale) {
		surname = r.spouse.Surname
	}

	maxAge := minInt(yearsMarried, r.age-MinChildbearingAge)
	for i := 0; i < n; i++ {
		childAge := noise.Range(r.src, 0, maxAge)
		birth := r.in.DisplayYear - childAge
		gender, _ := noise.Choose(r.src, relativeGenders)

		if !InBand(subject.Gender, subject.BirthYear, birth) ||
			!InBand(r.spouse.Gender, *r.spouse.BirthYear, birth) ||
			!AliveAtBirth(*r.spouse, birth) {
			r.discarded++
			continue
		}
		r.children = append(r.children, r.child(entities.KindChild, gender, birth, surname))
	}
	sortByBirth(r.children)
}

// child builds a sibling, twin or child stub born in birth
func (r *synthesis) child(kind entities.RelationKind, gender entities.Gender, birth int, surname string) entities.FamilyStub {
	given := r.namer.Given(r.src, r.in.Zone, gender, birth)
	stub := entities.FamilyStub{
		Name:      r.namer.Compose(r.in.Zone, given, surname),
		Surname:   surname,
		Relation:  entities.RelationFor(kind, gender),
		Gender:    gender,
		BirthYear: entities.Year(birth),
		Age:       r.in.DisplayYear - birth,
	}

	if p, ok := infantMortality[r.in.Era]; ok && noise.Chance(r.src, p) {
		death := birth + noise.Range(r.src, 0, 5)
		if death <= r.in.DisplayYear {
			r.kill(&stub, death)
			return stub
		}
	}
	if stub.Age >= 16 {
		stub.Profession = r.profession(gender)
	}
	return stub
}

// profession draws from the general table for men, and for women only when
// the workforce draw succeeds
func (r *synthesis) profession(gender entities.Gender) string {
	class := r.in.Subject.SocialClass
	general := r.professions.Professions(r.in.Era, class)
	if gender == entities.GenderFemale && !noise.Chance(r.src, WorkforceParticipation(r.in.Era)) {
		if p, ok := noise.Pick(r.src, r.professions.DomesticProfessions(r.in.Era)); ok {
			return role.TitleCase(p)
		}
	}
	p, _ := noise.Pick(r.src, general)
	return role.TitleCase(p)
}

// AliveAtBirth reports whether parent could have a child born in birth. A
// mother must be alive that year; anyone else may have died the year before.
func AliveAtBirth(parent entities.FamilyStub, birth int) bool {
	if !parent.IsDeceased || parent.DeathYear == nil {
		return true
	}
	last := *parent.DeathYear
	if parent.Gender != entities.GenderFemale {
		last++
	}
	return birth <= last
}

func (r *synthesis) kill(stub *entities.FamilyStub, death int) {
	stub.IsDeceased = true
	stub.DeathYear = entities.Year(death)
	stub.Age = death - *stub.BirthYear
}

// capLifespan marks anyone who would be older than the era allows as dead
func (r *synthesis) capLifespan(stub entities.FamilyStub) entities.FamilyStub {
	if stub.IsDeceased || stub.BirthYear == nil || stub.Age <= r.lifespan {
		return stub
	}
	r.kill(&stub, *stub.BirthYear+r.lifespan)
	return stub
}

func sortByBirth(stubs []entities.FamilyStub) {
	sort.SliceStable(stubs, func(i, j int) bool {
		return *stubs[i].BirthYear < *stubs[j].BirthYear
	})
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
