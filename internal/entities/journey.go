package entities

import (
	"time"
)

// Journey is the breadcrumb trail of personas visited through family
// navigation. It lives outside the generator.
type Journey struct {
	ID            string    `json:"id"`
	RootPersonaID string    `json:"root_persona_id"`
	Crumbs        []Crumb   `json:"crumbs"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Crumb is one visited persona. Relation is how this persona relates to the
// previous crumb's persona; Depth counts parent hops from the root (children
// subtract one).
type Crumb struct {
	PersonaID string   `json:"persona_id"`
	Name      string   `json:"name"`
	Relation  Relation `json:"relation,omitempty"`
	Depth     int      `json:"depth"`
}

// Current returns the last crumb
func (j *Journey) Current() (Crumb, bool) {
	if j == nil || len(j.Crumbs) == 0 {
		return Crumb{}, false
	}
	return j.Crumbs[len(j.Crumbs)-1], true
}

// Clone returns a copy with its own crumb slice
func (j *Journey) Clone() *Journey {
	if j == nil {
		return nil
	}
	out := *j
	out.Crumbs = append([]Crumb(nil), j.Crumbs...)
	return &out
}
