package entities

// FamilyStub is a lightweight reference to a relative. It is never a full
// Character; opening one goes through family navigation.
type FamilyStub struct {
	Name       string   `json:"name" yaml:"name"`
	Surname    string   `json:"surname,omitempty" yaml:"surname,omitempty"`
	Relation   Relation `json:"relation" yaml:"relation"`
	Gender     Gender   `json:"gender" yaml:"gender"`
	BirthYear  *int     `json:"birth_year,omitempty" yaml:"birth_year,omitempty"`
	Age        int      `json:"age" yaml:"age"`
	Profession string   `json:"profession,omitempty" yaml:"profession,omitempty"`
	IsDeceased bool     `json:"is_deceased,omitempty" yaml:"is_deceased,omitempty"`
	DeathYear  *int     `json:"death_year,omitempty" yaml:"death_year,omitempty"`
	// Unborn marks a relative shown before their birth year. Age is 0 and
	// the stub is evaluated at its birth year.
	Unborn bool `json:"unborn,omitempty" yaml:"unborn,omitempty"`
}

// Year returns a pointer to a copy of y, for the optional stub fields
func Year(y int) *int {
	return &y
}

// HasBirthYear reports whether the stub carries an authoritative birth year
func (m FamilyStub) HasBirthYear() bool {
	return m.BirthYear != nil
}

// EvaluationYear is the year Age was computed at: the death year for the
// deceased, the birth year for the unborn, otherwise birth year + age.
func (m FamilyStub) EvaluationYear() int {
	if m.Unborn && m.BirthYear != nil {
		return *m.BirthYear
	}
	if m.IsDeceased && m.DeathYear != nil {
		return *m.DeathYear
	}
	if m.BirthYear != nil {
		return *m.BirthYear + m.Age
	}
	return m.Age
}

// AtYear re-evaluates the stub at another year. ok is false when the relative
// was not yet born; the returned stub is then marked Unborn. A death after
// the given year is forgotten since it has not happened yet.
func (m FamilyStub) AtYear(year int) (FamilyStub, bool) {
	out := m.Clone()
	if out.BirthYear == nil {
		return out, true
	}
	born := *out.BirthYear
	out.Unborn = born > year
	if out.Unborn {
		out.Age = 0
		out.IsDeceased = false
		out.DeathYear = nil
		return out, false
	}
	if out.IsDeceased && out.DeathYear != nil && *out.DeathYear <= year {
		out.Age = *out.DeathYear - born
		return out, true
	}
	out.IsDeceased = false
	out.DeathYear = nil
	out.Age = year - born
	return out, true
}

// Clone returns a copy that shares no pointers
func (m FamilyStub) Clone() FamilyStub {
	out := m
	if m.BirthYear != nil {
		out.BirthYear = Year(*m.BirthYear)
	}
	if m.DeathYear != nil {
		out.DeathYear = Year(*m.DeathYear)
	}
	return out
}
