package ast

import (
	"fmt"
	"strings"
)

// RelationKind enumerates the Eloquent relation methods modelgen can emit.
type RelationKind int

const (
	BelongsTo RelationKind = iota
	HasMany
	BelongsToMany
	HasOne // only produced by configured extra relations
)

var relationKindNames = map[RelationKind]string{
	BelongsTo:     "belongsTo",
	HasMany:       "hasMany",
	BelongsToMany: "belongsToMany",
	HasOne:        "hasOne",
}

// String returns the Eloquent method name for the kind (belongsTo, hasMany, ...).
func (k RelationKind) String() string {
	if s, ok := relationKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("RelationKind(%d)", int(k))
}

// ToMany reports whether the relation resolves to a collection.
func (k RelationKind) ToMany() bool {
	return k == HasMany || k == BelongsToMany
}

// ParseRelationKind accepts snake_case (belongs_to) or camelCase (belongsTo) names.
func ParseRelationKind(s string) (RelationKind, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for k, name := range relationKindNames {
		if strings.ToLower(name) == key {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown relation kind %q", s)
}

// RelationDef describes one relation method on a model.
//
// Key usage per kind:
//
//	BelongsTo:     ForeignKey on this table, LocalKey is the owner key on Related
//	HasMany/HasOne: ForeignKey on Related's table, LocalKey on this table
//	BelongsToMany: ForeignKey and RelatedKey are the pivot columns; both empty
//	               means the framework infers them
type RelationDef struct {
	Kind       RelationKind
	Method     string
	Related    string // Related class name
	ForeignKey string
	LocalKey   string
	Pivot      string // Pivot table (BelongsToMany only)
	RelatedKey string // Related pivot key (BelongsToMany only)
}

// HasPivotKeys reports whether explicit pivot keys should be emitted.
func (r *RelationDef) HasPivotKeys() bool {
	return r.ForeignKey != "" && r.RelatedKey != ""
}

// -----------------------------------------------------------------------------
// RelationSet
// -----------------------------------------------------------------------------

// RelationSet is an ordered collection of relations in which no two entries
// share a case-insensitively equal method name. The first entry for a name wins.
type RelationSet struct {
	items []RelationDef
	seen  map[string]bool
}

// NewRelationSet creates an empty set.
func NewRelationSet() *RelationSet {
	return &RelationSet{seen: make(map[string]bool)}
}

// Add appends r unless a relation with the same method name is already present.
// It reports whether r was added.
func (s *RelationSet) Add(r RelationDef) bool {
	key := strings.ToLower(r.Method)
	if key == "" || s.seen[key] {
		return false
	}
	s.seen[key] = true
	s.items = append(s.items, r)
	return true
}

// Items returns a copy of the relations in insertion order.
func (s *RelationSet) Items() []RelationDef {
	out := make([]RelationDef, len(s.items))
	copy(out, s.items)
	return out
}
