package entities

// Character is the person at the center of a Persona
type Character struct {
	Name            string          `json:"name" yaml:"name"`
	GivenName       string          `json:"given_name" yaml:"given_name"`
	Surname         string          `json:"surname,omitempty" yaml:"surname,omitempty"`
	Gender          Gender          `json:"gender" yaml:"gender"`
	Age             int             `json:"age" yaml:"age"`
	BirthYear       int             `json:"birth_year" yaml:"birth_year"`
	BirthYearSource BirthYearSource `json:"birth_year_source" yaml:"birth_year_source"`

	Profession    string       `json:"profession" yaml:"profession"`
	SocialClass   string       `json:"social_class" yaml:"social_class"`
	WealthLevel   WealthLevel  `json:"wealth_level" yaml:"wealth_level"`
	WealthCeiling WealthLevel  `json:"wealth_ceiling" yaml:"wealth_ceiling"`
	Religion      string       `json:"religion" yaml:"religion"`
	EthnicZone    CulturalZone `json:"ethnic_zone,omitempty" yaml:"ethnic_zone,omitempty"`

	Stats         Stats         `json:"stats" yaml:"stats"`
	Personality   Personality   `json:"personality" yaml:"personality"`
	SocialContext SocialContext `json:"social_context" yaml:"social_context"`
	Appearance    Appearance    `json:"appearance" yaml:"appearance"`

	Family     []FamilyStub     `json:"family" yaml:"family"`
	LifeEvents []LifeEvent      `json:"life_events" yaml:"life_events"`
	Beliefs    []Belief         `json:"beliefs" yaml:"beliefs"`
	Ideology   Ideology         `json:"ideology" yaml:"ideology"`
	Attributes []AttributeBadge `json:"attributes" yaml:"attributes"`

	DiseaseHealth *DiseaseHealth `json:"disease_health,omitempty" yaml:"disease_health,omitempty"`

	Inventory     []Item        `json:"inventory" yaml:"inventory"`
	EquippedItems map[Slot]Item `json:"equipped_items" yaml:"equipped_items"`
}

// Stats are rough 1–20 scores
type Stats struct {
	Strength     int `json:"strength" yaml:"strength"`
	Dexterity    int `json:"dexterity" yaml:"dexterity"`
	Constitution int `json:"constitution" yaml:"constitution"`
	Intelligence int `json:"intelligence" yaml:"intelligence"`
	Wisdom       int `json:"wisdom" yaml:"wisdom"`
	Charisma     int `json:"charisma" yaml:"charisma"`
	Perception   int `json:"perception" yaml:"perception"`
	Luck         int `json:"luck" yaml:"luck"`
	Craftiness   int `json:"craftiness" yaml:"craftiness"`
}

// Personality holds the Big Five, each in [0, 1]
type Personality struct {
	Openness          float64 `json:"openness" yaml:"openness"`
	Conscientiousness float64 `json:"conscientiousness" yaml:"conscientiousness"`
	Extraversion      float64 `json:"extraversion" yaml:"extraversion"`
	Agreeableness     float64 `json:"agreeableness" yaml:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism" yaml:"neuroticism"`
}

// SocialContext describes a character's position and drives, each in [0, 1]
type SocialContext struct {
	Privilege       float64 `json:"privilege" yaml:"privilege"`
	Wanderlust      float64 `json:"wanderlust" yaml:"wanderlust"`
	Religiosity     float64 `json:"religiosity" yaml:"religiosity"`
	Ambition        float64 `json:"ambition" yaml:"ambition"`
	Entrepreneurial float64 `json:"entrepreneurial" yaml:"entrepreneurial"`
}

// Appearance is the assembled physical description
type Appearance struct {
	Build    string    `json:"build" yaml:"build"`
	Height   string    `json:"height" yaml:"height"`
	Face     string    `json:"face" yaml:"face"`
	Hair     string    `json:"hair" yaml:"hair"`
	Eyes     string    `json:"eyes" yaml:"eyes"`
	Skin     string    `json:"skin" yaml:"skin"`
	Palette  Palette   `json:"palette" yaml:"palette"`
	Garments []string  `json:"garments" yaml:"garments"`
	Markings []Marking `json:"markings,omitempty" yaml:"markings,omitempty"`
	Glasses  *Glasses  `json:"glasses,omitempty" yaml:"glasses,omitempty"`
}

// Palette holds hex colors for a portrait renderer
type Palette struct {
	Skin   string `json:"skin" yaml:"skin"`
	Hair   string `json:"hair" yaml:"hair"`
	Eyes   string `json:"eyes" yaml:"eyes"`
	Accent string `json:"accent" yaml:"accent"`
}

// Marking is a tattoo, scarification or paint pattern
type Marking struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Placement   string `json:"placement" yaml:"placement"`
	Description string `json:"description" yaml:"description"`
}

// Glasses are only possible once spectacles exist
type Glasses struct {
	Style       string `json:"style" yaml:"style"`
	Description string `json:"description" yaml:"description"`
}

// Item is inventory or equipment
type Item struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Slot        Slot   `json:"slot,omitempty" yaml:"slot,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// LifeEvent is one dated line of a character's history
type LifeEvent struct {
	Year  int    `json:"year" yaml:"year"`
	Event string `json:"event" yaml:"event"`
}

// Belief is a held conviction
type Belief struct {
	ID   string   `json:"id" yaml:"id"`
	Text string   `json:"text" yaml:"text"`
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Ideology is a worldview label
type Ideology struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// AttributeBadge is a special trait such as "twin"
type AttributeBadge struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// BadgeTwin marks a character born as a twin
const BadgeTwin = "twin"

// HasBadge reports whether the character carries the badge
func (c *Character) HasBadge(id string) bool {
	for _, b := range c.Attributes {
		if b.ID == id {
			return true
		}
	}
	return false
}

// DiseaseHealth is present only when a disease was assigned
type DiseaseHealth struct {
	Slot       string     `json:"slot" yaml:"slot"`
	Affliction Affliction `json:"affliction" yaml:"affliction"`
	Note       string     `json:"note,omitempty" yaml:"note,omitempty"`
}

// Affliction is the active disease record for a slot
type Affliction struct {
	DiseaseID      string   `json:"disease_id" yaml:"disease_id"`
	Name           string   `json:"name" yaml:"name"`
	Severity       string   `json:"severity" yaml:"severity"`
	ContractedYear int      `json:"contracted_year" yaml:"contracted_year"`
	Epidemic       bool     `json:"epidemic" yaml:"epidemic"`
	Symptoms       []string `json:"symptoms,omitempty" yaml:"symptoms,omitempty"`
}

// Clone returns a deep copy
func (c Character) Clone() Character {
	out := c

	if c.Family != nil {
		out.Family = make([]FamilyStub, len(c.Family))
		for i, m := range c.Family {
			out.Family[i] = m.Clone()
		}
	}
	out.LifeEvents = append([]LifeEvent(nil), c.LifeEvents...)
	if c.Beliefs != nil {
		out.Beliefs = make([]Belief, len(c.Beliefs))
		for i, b := range c.Beliefs {
			b.Tags = append([]string(nil), b.Tags...)
			out.Beliefs[i] = b
		}
	}
	out.Attributes = append([]AttributeBadge(nil), c.Attributes...)

	out.Appearance.Garments = append([]string(nil), c.Appearance.Garments...)
	out.Appearance.Markings = append([]Marking(nil), c.Appearance.Markings...)
	if c.Appearance.Glasses != nil {
		g := *c.Appearance.Glasses
		out.Appearance.Glasses = &g
	}

	if c.DiseaseHealth != nil {
		dh := *c.DiseaseHealth
		dh.Affliction.Symptoms = append([]string(nil), c.DiseaseHealth.Affliction.Symptoms...)
		out.DiseaseHealth = &dh
	}

	out.Inventory = append([]Item(nil), c.Inventory...)
	if c.EquippedItems != nil {
		out.EquippedItems = make(map[Slot]Item, len(c.EquippedItems))
		for k, v := range c.EquippedItems {
			out.EquippedItems[k] = v
		}
	}
	return out
}
