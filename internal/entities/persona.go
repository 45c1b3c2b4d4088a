package entities

import (
	"time"
)

// Persona is a generated individual plus situational context. A persona is
// never patched after generation; navigation produces a new one.
type Persona struct {
	ID           string       `json:"id" yaml:"id"`
	Character    Character    `json:"character" yaml:"character"`
	Year         int          `json:"year" yaml:"year"`
	Month        int          `json:"month" yaml:"month"`
	Day          int          `json:"day" yaml:"day"`
	Era          Era          `json:"era" yaml:"era"`
	CulturalZone CulturalZone `json:"cultural_zone" yaml:"cultural_zone"`
	Region       string       `json:"region" yaml:"region"`
	Location     string       `json:"location" yaml:"location"`
	Seed         int64        `json:"seed" yaml:"seed"`

	LanguageData       *LanguageData       `json:"language_data,omitempty" yaml:"language_data,omitempty"`
	EnhancedLifeEvents []EnhancedLifeEvent `json:"enhanced_life_events,omitempty" yaml:"enhanced_life_events,omitempty"`

	// Origin is set when the persona was opened from another persona's
	// family list. It is a weak reference by ID and name.
	Origin *OriginLink `json:"origin,omitempty" yaml:"origin,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// LanguageData names the language a persona most likely spoke
type LanguageData struct {
	Primary string `json:"primary" yaml:"primary"`
	Script  string `json:"script,omitempty" yaml:"script,omitempty"`
}

// EnhancedLifeEvent is a categorized life event with the age it happened at
type EnhancedLifeEvent struct {
	Year     int    `json:"year" yaml:"year"`
	Age      int    `json:"age" yaml:"age"`
	Category string `json:"category" yaml:"category"`
	Event    string `json:"event" yaml:"event"`
}

// OriginLink points back to the persona a navigation started from
type OriginLink struct {
	PersonaID string   `json:"persona_id,omitempty" yaml:"persona_id,omitempty"`
	Name      string   `json:"name" yaml:"name"`
	Relation  Relation `json:"relation" yaml:"relation"`
}

// DisplayYear is the year the character's age is evaluated at
func (p *Persona) DisplayYear() int {
	return p.Year
}

// Clone returns a deep copy
func (p *Persona) Clone() *Persona {
	if p == nil {
		return nil
	}
	out := *p
	out.Character = p.Character.Clone()
	if p.LanguageData != nil {
		ld := *p.LanguageData
		out.LanguageData = &ld
	}
	out.EnhancedLifeEvents = append([]EnhancedLifeEvent(nil), p.EnhancedLifeEvents...)
	if p.Origin != nil {
		o := *p.Origin
		out.Origin = &o
	}
	return &out
}
