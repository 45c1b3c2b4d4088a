package entities

// Relation is how a family member relates to the character owning the stub
type Relation string

const (
	RelationFather   Relation = "father"
	RelationMother   Relation = "mother"
	RelationParent   Relation = "parent"
	RelationBrother  Relation = "brother"
	RelationSister   Relation = "sister"
	RelationSibling  Relation = "sibling"
	RelationTwin     Relation = "twin"
	RelationSpouse   Relation = "spouse"
	RelationSon      Relation = "son"
	RelationDaughter Relation = "daughter"
	RelationChild    Relation = "child"
)

// RelationKind groups relations regardless of gender
type RelationKind string

const (
	KindParent  RelationKind = "parent"
	KindSibling RelationKind = "sibling"
	KindTwin    RelationKind = "twin"
	KindSpouse  RelationKind = "spouse"
	KindChild   RelationKind = "child"
)

// Kind returns the gender-neutral group; ok is false for unknown labels
func (r Relation) Kind() (RelationKind, bool) {
	switch r {
	case RelationFather, RelationMother, RelationParent:
		return KindParent, true
	case RelationBrother, RelationSister, RelationSibling:
		return KindSibling, true
	case RelationTwin:
		return KindTwin, true
	case RelationSpouse:
		return KindSpouse, true
	case RelationSon, RelationDaughter, RelationChild:
		return KindChild, true
	}
	return "", false
}

// IsBlood is true for parents, siblings, twins and children
func (r Relation) IsBlood() bool {
	kind, ok := r.Kind()
	return ok && kind != KindSpouse
}

// RelationFor labels a kind for a relative of the given gender
func RelationFor(kind RelationKind, gender Gender) Relation {
	switch kind {
	case KindParent:
		switch gender {
		case GenderMale:
			return RelationFather
		case GenderFemale:
			return RelationMother
		}
		return RelationParent
	case KindSibling:
		switch gender {
		case GenderMale:
			return RelationBrother
		case GenderFemale:
			return RelationSister
		}
		return RelationSibling
	case KindTwin:
		return RelationTwin
	case KindSpouse:
		return RelationSpouse
	case KindChild:
		switch gender {
		case GenderMale:
			return RelationSon
		case GenderFemale:
			return RelationDaughter
		}
		return RelationChild
	}
	return ""
}

// InverseKind flips parent and child; the other kinds are symmetric
func InverseKind(kind RelationKind) RelationKind {
	switch kind {
	case KindParent:
		return KindChild
	case KindChild:
		return KindParent
	}
	return kind
}

// InverseRelation returns how the origin relates to a relative reached via r.
// If the origin's stub calls M "father", M's stub for a male origin is "son".
func InverseRelation(r Relation, originGender Gender) (Relation, bool) {
	kind, ok := r.Kind()
	if !ok {
		return "", false
	}
	return RelationFor(InverseKind(kind), originGender), true
}
