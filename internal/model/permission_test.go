package model

import "testing"

func TestPermissionLabel(t *testing.T) {
	cases := []struct {
		code Permission
		want string
	}{
		{"manage_fees", "Manage Fees"},
		{"view_students", "View Students"},
		{"record_attendance", "Record Attendance"},
		{"export_reports", "Export Reports"},
		{"dashboard", "Dashboard"},
	}

	for _, tc := range cases {
		if got := tc.code.Label(); got != tc.want {
			t.Errorf("Label(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestCatalogIntegrity(t *testing.T) {
	if len(Categories) != 17 {
		t.Fatalf("expected 17 categories, got %d", len(Categories))
	}

	seen := make(map[Permission]bool)
	total := 0
	for _, cat := range Categories {
		perms := PermissionsByCategory(cat)
		if len(perms) == 0 {
			t.Errorf("category %q has no permissions", cat)
		}
		total += len(perms)
		for _, p := range perms {
			if seen[p] {
				t.Errorf("permission %q appears in more than one category", p)
			}
			seen[p] = true

			got, ok := CategoryOf(p)
			if !ok || got != cat {
				t.Errorf("CategoryOf(%q) = %q, %v; want %q, true", p, got, ok, cat)
			}
		}
	}

	if len(AllPermissions) != total {
		t.Errorf("AllPermissions has %d entries, category lists total %d", len(AllPermissions), total)
	}

	if IsKnownPermission("no_such_permission") {
		t.Error("IsKnownPermission accepted an unknown code")
	}
}

func TestDefaultPermissionsFor(t *testing.T) {
	for _, role := range BuiltinRoles {
		defaults := DefaultPermissionsFor(role)
		if len(defaults) == 0 {
			t.Errorf("built-in role %q has no default permissions", role)
		}
		for _, p := range defaults {
			if !IsKnownPermission(p) {
				t.Errorf("default for role %q contains unknown permission %q", role, p)
			}
		}
	}

	if got := DefaultPermissionsFor("librarian"); len(got) != 0 {
		t.Errorf("unknown role should yield an empty set, got %v", got)
	}

	if len(DefaultPermissionsFor(BuiltinRoleAdmin)) != len(AllPermissions) {
		t.Error("admin defaults should cover the whole catalog")
	}
}

func TestDefaultPermissionsForReturnsCopy(t *testing.T) {
	first := DefaultPermissionsFor(BuiltinRoleTeacher)
	first[0] = "tampered"
	second := DefaultPermissionsFor(BuiltinRoleTeacher)
	if second[0] == "tampered" {
		t.Error("DefaultPermissionsFor must not expose the underlying slice")
	}
}
