package permset

import (
	"reflect"
	"testing"

	"github.com/siakadku/siakad-backend/internal/model"
)

func TestAggregate(t *testing.T) {
	keys := model.PermissionsByCategory(model.CategoryStudents)
	if len(keys) < 2 {
		t.Fatal("test requires a category with at least two permissions")
	}

	if got := Aggregate(keys, New(keys...)); got != StateAll {
		t.Errorf("full selection: got %q, want %q", got, StateAll)
	}
	if got := Aggregate(keys, New()); got != StateNone {
		t.Errorf("empty selection: got %q, want %q", got, StateNone)
	}
	if got := Aggregate(keys, New(keys[0])); got != StateSome {
		t.Errorf("partial selection: got %q, want %q", got, StateSome)
	}
}

func TestAggregateExhaustiveOverCatalog(t *testing.T) {
	// A set holding the full catalog aggregates to all for every
	// category; the empty set aggregates to none for every category.
	full := New(model.AllPermissions...)
	empty := New()

	for _, cat := range model.Categories {
		if got := AggregateCategory(cat, full); got != StateAll {
			t.Errorf("category %q against full catalog: got %q, want %q", cat, got, StateAll)
		}
		if got := AggregateCategory(cat, empty); got != StateNone {
			t.Errorf("category %q against empty set: got %q, want %q", cat, got, StateNone)
		}
	}
}

func TestToggleCategory(t *testing.T) {
	cat := model.CategoryFees
	keys := model.PermissionsByCategory(cat)
	other := model.PermissionViewDashboard

	// none → all
	s := New(other)
	ToggleCategory(cat, s)
	if got := AggregateCategory(cat, s); got != StateAll {
		t.Errorf("toggle from none: got %q, want %q", got, StateAll)
	}
	if !s.Has(other) {
		t.Error("toggle touched a permission outside the category")
	}

	// all → none, removing exactly the category's keys
	ToggleCategory(cat, s)
	if got := AggregateCategory(cat, s); got != StateNone {
		t.Errorf("toggle from all: got %q, want %q", got, StateNone)
	}
	if !s.Has(other) {
		t.Error("toggle removed a permission outside the category")
	}

	// some → all: a partial selection toggles to full, not to empty.
	s = New(keys[0])
	ToggleCategory(cat, s)
	if got := AggregateCategory(cat, s); got != StateAll {
		t.Errorf("toggle from some: got %q, want %q", got, StateAll)
	}
}

func TestToggle(t *testing.T) {
	s := New()
	Toggle(model.PermissionManageFees, s)
	if !s.Has(model.PermissionManageFees) {
		t.Error("toggle should add a missing permission")
	}
	Toggle(model.PermissionManageFees, s)
	if s.Has(model.PermissionManageFees) {
		t.Error("toggle should remove a present permission")
	}
}

func TestToggleAll(t *testing.T) {
	// Full catalog → empty.
	s := New(model.AllPermissions...)
	ToggleAll(s)
	if s.Len() != 0 {
		t.Errorf("toggle-all on the full catalog should clear the set, %d left", s.Len())
	}

	// Empty → full catalog.
	ToggleAll(s)
	if s.Len() != len(model.AllPermissions) {
		t.Errorf("toggle-all on empty set: got %d, want %d", s.Len(), len(model.AllPermissions))
	}

	// Proper subset → full catalog ("partial counts as not-all").
	s = New(model.PermissionViewFees, model.PermissionViewRoles)
	ToggleAll(s)
	if s.Len() != len(model.AllPermissions) {
		t.Errorf("toggle-all on a proper subset: got %d, want %d", s.Len(), len(model.AllPermissions))
	}
}

func TestFromStringsCollapsesDuplicates(t *testing.T) {
	s := FromStrings([]string{"view_fees", "view_fees", "manage_fees"})
	if s.Len() != 2 {
		t.Errorf("duplicates should collapse: got %d, want 2", s.Len())
	}
}

func TestValuesCatalogOrder(t *testing.T) {
	// Insertion order must not matter; Values follows catalog order.
	s := New(model.PermissionManageRoles, model.PermissionViewDashboard, model.PermissionViewFees)
	want := []model.Permission{
		model.PermissionViewDashboard,
		model.PermissionViewFees,
		model.PermissionManageRoles,
	}
	if got := s.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}

func TestValuesUnknownCodesSortedLast(t *testing.T) {
	s := FromStrings([]string{"zzz_custom", "aaa_custom", "view_dashboard"})
	got := s.Values()
	want := []model.Permission{model.PermissionViewDashboard, "aaa_custom", "zzz_custom"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}
