package entities

import (
	"fmt"
)

// CharacterDraft fixes a character's timeline. A birth year is either
// explicit or derived from an age; the two paths cannot be mixed, and once
// an explicit birth year is set an age never replaces it.
type CharacterDraft struct {
	displayYear int
	birthYear   int
	age         int
	source      BirthYearSource
	ignoredAge  *int
}

// Timeline is the resolved birth year and age at a display year
type Timeline struct {
	DisplayYear int
	BirthYear   int
	Age         int
	Source      BirthYearSource

	// IgnoredAge is an age that was offered after an explicit birth year
	// and therefore not used
	IgnoredAge *int
}

// NewCharacterDraft starts a draft evaluated at displayYear
func NewCharacterDraft(displayYear int) *CharacterDraft {
	return &CharacterDraft{displayYear: displayYear}
}

// WithExplicitBirthYear sets an authoritative birth year
func (d *CharacterDraft) WithExplicitBirthYear(year int) *CharacterDraft {
	d.birthYear = year
	d.age = d.displayYear - year
	d.source = BirthYearExplicit
	return d
}

// WithDerivedAge sets an age and derives the birth year from it, unless an
// explicit birth year is already present
func (d *CharacterDraft) WithDerivedAge(age int) *CharacterDraft {
	if d.source == BirthYearExplicit {
		if age != d.age {
			d.ignoredAge = &age
		}
		return d
	}
	d.age = age
	d.birthYear = d.displayYear - age
	d.source = BirthYearDerived
	return d
}

// HasExplicitBirthYear reports whether the explicit path was taken
func (d *CharacterDraft) HasExplicitBirthYear() bool {
	return d.source == BirthYearExplicit
}

// IsSet reports whether either path was taken
func (d *CharacterDraft) IsSet() bool {
	return d.source != ""
}

// Timeline validates and returns the resolved timeline
func (d *CharacterDraft) Timeline() (Timeline, error) {
	if d.source == "" {
		return Timeline{}, fmt.Errorf("draft has neither a birth year nor an age")
	}
	if d.age < 0 {
		return Timeline{}, fmt.Errorf("birth year %d is after display year %d", d.birthYear, d.displayYear)
	}
	return Timeline{
		DisplayYear: d.displayYear,
		BirthYear:   d.birthYear,
		Age:         d.age,
		Source:      d.source,
		IgnoredAge:  d.ignoredAge,
	}, nil
}
