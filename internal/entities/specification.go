package entities

// CharacterSpecification carries explicit overrides. A set field always
// beats the derived default.
type CharacterSpecification struct {
	Name        string       `json:"name,omitempty" yaml:"name,omitempty"`
	Gender      Gender       `json:"gender,omitempty" yaml:"gender,omitempty"`
	Age         *int         `json:"age,omitempty" yaml:"age,omitempty"`
	BirthYear   *int         `json:"birth_year,omitempty" yaml:"birth_year,omitempty"`
	SocialClass string       `json:"social_class,omitempty" yaml:"social_class,omitempty"`
	Profession  string       `json:"profession,omitempty" yaml:"profession,omitempty"`
	Religion    string       `json:"religion,omitempty" yaml:"religion,omitempty"`
	EthnicZone  CulturalZone `json:"ethnic_zone,omitempty" yaml:"ethnic_zone,omitempty"`
	HealthTier  HealthTier   `json:"health_tier,omitempty" yaml:"health_tier,omitempty"`
	DiseaseID   string       `json:"disease_id,omitempty" yaml:"disease_id,omitempty"`
	Attributes  []string     `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Ideology    string       `json:"ideology,omitempty" yaml:"ideology,omitempty"`
}

// Merge layers s over base: fields set on s win, unset fields fall back to
// base. Attributes are unioned. An age or birth year on s keeps base's
// timeline out entirely.
func (s *CharacterSpecification) Merge(base *CharacterSpecification) *CharacterSpecification {
	if s == nil && base == nil {
		return &CharacterSpecification{}
	}
	if s == nil {
		out := *base
		out.Attributes = append([]string(nil), base.Attributes...)
		return &out
	}
	out := *s
	out.Attributes = append([]string(nil), s.Attributes...)
	if base == nil {
		return &out
	}

	if out.Name == "" {
		out.Name = base.Name
	}
	if out.Gender == "" {
		out.Gender = base.Gender
	}
	// age and birth year describe one timeline, so they are inherited
	// together or not at all
	if out.Age == nil && out.BirthYear == nil {
		if base.Age != nil {
			out.Age = Year(*base.Age)
		}
		if base.BirthYear != nil {
			out.BirthYear = Year(*base.BirthYear)
		}
	}
	if out.SocialClass == "" {
		out.SocialClass = base.SocialClass
	}
	if out.Profession == "" {
		out.Profession = base.Profession
	}
	if out.Religion == "" {
		out.Religion = base.Religion
	}
	if out.EthnicZone == "" {
		out.EthnicZone = base.EthnicZone
	}
	if out.HealthTier == "" {
		out.HealthTier = base.HealthTier
	}
	if out.DiseaseID == "" {
		out.DiseaseID = base.DiseaseID
	}
	if out.Ideology == "" {
		out.Ideology = base.Ideology
	}
	seen := make(map[string]bool, len(out.Attributes))
	for _, a := range out.Attributes {
		seen[a] = true
	}
	for _, a := range base.Attributes {
		if !seen[a] {
			out.Attributes = append(out.Attributes, a)
			seen[a] = true
		}
	}
	return &out
}

// RestoreSpec is a one-shot serialized character request, e.g. decoded from
// a shared link. It is passed explicitly into generation and consumed once.
type RestoreSpec struct {
	ID       string                 `json:"id,omitempty" yaml:"id,omitempty"`
	Date     string                 `json:"date,omitempty" yaml:"date,omitempty"`
	Location string                 `json:"location,omitempty" yaml:"location,omitempty"`
	Seed     int64                  `json:"seed,omitempty" yaml:"seed,omitempty"`
	Spec     CharacterSpecification `json:"spec" yaml:"spec"`
}
