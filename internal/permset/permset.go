// Package permset implements the permission selection logic behind the
// role editing screen: set membership, tri-state category aggregation,
// and the toggle operations used for bulk selection.
package permset

import (
	"sort"

	"github.com/siakadku/siakad-backend/internal/model"
)

// TriState describes how much of a category's permission list is
// currently selected.
type TriState string

const (
	StateAll  TriState = "all"
	StateSome TriState = "some"
	StateNone TriState = "none"
)

// Set is an unordered collection of permission codes. Duplicates
// collapse; insertion order is irrelevant.
type Set map[model.Permission]struct{}

// New builds a Set from the given permissions.
func New(perms ...model.Permission) Set {
	s := make(Set, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// FromStrings builds a Set from raw permission codes.
func FromStrings(codes []string) Set {
	s := make(Set, len(codes))
	for _, c := range codes {
		s[model.Permission(c)] = struct{}{}
	}
	return s
}

// Has reports whether p is in the set.
func (s Set) Has(p model.Permission) bool {
	_, ok := s[p]
	return ok
}

// Add inserts p into the set.
func (s Set) Add(p model.Permission) {
	s[p] = struct{}{}
}

// Remove deletes p from the set.
func (s Set) Remove(p model.Permission) {
	delete(s, p)
}

// Len returns the number of permissions in the set.
func (s Set) Len() int {
	return len(s)
}

// Values returns the set's permissions in catalog order. Codes not
// present in the catalog are appended at the end, sorted, so the
// result is deterministic either way.
func (s Set) Values() []model.Permission {
	out := make([]model.Permission, 0, len(s))
	for _, p := range model.AllPermissions {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	var extra []model.Permission
	for p := range s {
		if !model.IsKnownPermission(p) {
			extra = append(extra, p)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// Strings returns Values as raw string codes.
func (s Set) Strings() []string {
	values := s.Values()
	out := make([]string, len(values))
	for i, p := range values {
		out[i] = string(p)
	}
	return out
}

// Aggregate computes the tri-state status of a category's permission
// list against the candidate set: StateAll when every key is present,
// StateNone when none is, StateSome otherwise.
func Aggregate(keys []model.Permission, s Set) TriState {
	count := 0
	for _, k := range keys {
		if s.Has(k) {
			count++
		}
	}
	switch count {
	case len(keys):
		return StateAll
	case 0:
		return StateNone
	default:
		return StateSome
	}
}

// AggregateCategory computes the tri-state status of a catalog category.
func AggregateCategory(cat model.Category, s Set) TriState {
	return Aggregate(model.PermissionsByCategory(cat), s)
}

// ToggleCategory flips a category's selection in place. A category that
// is fully selected is cleared; a partially selected or unselected
// category becomes fully selected. A partial selection toggles to full,
// never to empty.
func ToggleCategory(cat model.Category, s Set) {
	keys := model.PermissionsByCategory(cat)
	if Aggregate(keys, s) == StateAll {
		for _, k := range keys {
			s.Remove(k)
		}
		return
	}
	for _, k := range keys {
		s.Add(k)
	}
}

// Toggle flips a single permission in place.
func Toggle(p model.Permission, s Set) {
	if s.Has(p) {
		s.Remove(p)
		return
	}
	s.Add(p)
}

// ToggleAll flips the whole-catalog selection in place: a set holding
// the entire catalog is cleared, anything less is replaced by the full
// catalog. The same "partial counts as not-all" policy as ToggleCategory,
// applied at catalog granularity.
func ToggleAll(s Set) {
	if s.Len() == len(model.AllPermissions) {
		for k := range s {
			delete(s, k)
		}
		return
	}
	for k := range s {
		delete(s, k)
	}
	for _, p := range model.AllPermissions {
		s.Add(p)
	}
}
