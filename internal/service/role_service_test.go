package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/siakadku/siakad-backend/internal/model"
)

// fakeRoleStore is an in-memory RoleStore recording every mutating call.
type fakeRoleStore struct {
	nextID      int
	roles       map[int]*model.Role
	permissions map[int][]string

	createCalls int
	updateCalls int
	deleteCalls int
	assignCalls [][]string

	failDelete map[int]error
}

// newFakeRoleStore starts IDs at 2; ID 1 is reserved for the seeded
// system Admin role in a real database.
func newFakeRoleStore() *fakeRoleStore {
	return &fakeRoleStore{
		nextID:      2,
		roles:       make(map[int]*model.Role),
		permissions: make(map[int][]string),
		failDelete:  make(map[int]error),
	}
}

func (f *fakeRoleStore) ListRolesWithPermissions(ctx context.Context) ([]model.RoleWithPermissions, error) {
	var out []model.RoleWithPermissions
	for id, role := range f.roles {
		out = append(out, model.RoleWithPermissions{Role: role, Permissions: f.permissions[id]})
	}
	return out, nil
}

func (f *fakeRoleStore) GetRoleByID(ctx context.Context, id int) (*model.RoleWithPermissions, error) {
	role, ok := f.roles[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return &model.RoleWithPermissions{Role: role, Permissions: f.permissions[id]}, nil
}

func (f *fakeRoleStore) CreateRole(ctx context.Context, name, description string) (int, error) {
	f.createCalls++
	id := f.nextID
	f.nextID++
	f.roles[id] = &model.Role{ID: id, Name: name, Description: description, CreatedAt: time.Now()}
	return id, nil
}

func (f *fakeRoleStore) UpdateRole(ctx context.Context, id int, name, description string) error {
	f.updateCalls++
	role, ok := f.roles[id]
	if !ok {
		return errors.New("no rows in result set")
	}
	role.Name = name
	role.Description = description
	return nil
}

func (f *fakeRoleStore) DeleteRole(ctx context.Context, id int) error {
	f.deleteCalls++
	if err := f.failDelete[id]; err != nil {
		return err
	}
	delete(f.roles, id)
	delete(f.permissions, id)
	return nil
}

func (f *fakeRoleStore) DeleteAllPermissionsFromRole(ctx context.Context, roleID int) error {
	f.permissions[roleID] = nil
	return nil
}

func (f *fakeRoleStore) AssignPermissionsToRole(ctx context.Context, roleID int, codes []string) error {
	f.assignCalls = append(f.assignCalls, codes)
	f.permissions[roleID] = append(f.permissions[roleID], codes...)
	return nil
}

func (f *fakeRoleStore) mutations() int {
	return f.createCalls + f.updateCalls + f.deleteCalls + len(f.assignCalls)
}

func TestCreateRoleValidation(t *testing.T) {
	cases := []struct {
		name        string
		roleName    string
		permissions []string
		wantErr     error
	}{
		{"empty name", "", []string{"view_students"}, ErrRoleNameRequired},
		{"empty permissions", "Librarian", nil, ErrPermissionsRequired},
		{"both empty", "", nil, ErrRoleNameRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeRoleStore()
			svc := NewRoleService(store)

			_, err := svc.CreateRole(context.Background(), tc.roleName, "", tc.permissions)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got error %v, want %v", err, tc.wantErr)
			}
			if store.mutations() != 0 {
				t.Error("validation failure must not reach storage")
			}
		})
	}
}

func TestCreateRoleSuccess(t *testing.T) {
	store := newFakeRoleStore()
	svc := NewRoleService(store)

	role, err := svc.CreateRole(context.Background(), "Librarian", "Manages library", []string{"view_students"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role.ID == 0 {
		t.Error("created role should have a non-empty id")
	}
	if len(role.Permissions) != 1 || role.Permissions[0] != "view_students" {
		t.Errorf("permissions = %v, want [view_students]", role.Permissions)
	}
	if role.Name != "Librarian" || role.Description != "Manages library" {
		t.Errorf("unexpected role fields: %+v", role.Role)
	}
}

func TestCreateRoleCollapsesDuplicates(t *testing.T) {
	store := newFakeRoleStore()
	svc := NewRoleService(store)

	_, err := svc.CreateRole(context.Background(), "Clerk", "", []string{"view_fees", "view_fees", "record_payments"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.assignCalls) != 1 {
		t.Fatalf("expected one assign call, got %d", len(store.assignCalls))
	}
	if got := len(store.assignCalls[0]); got != 2 {
		t.Errorf("duplicate codes should collapse before storage: got %d codes", got)
	}
}

func TestUpdateRoleValidation(t *testing.T) {
	store := newFakeRoleStore()
	svc := NewRoleService(store)

	seeded, err := svc.CreateRole(context.Background(), "Clerk", "", []string{"view_fees"})
	if err != nil {
		t.Fatalf("seed role: %v", err)
	}
	baseline := store.mutations()

	// The empty-permission invariant is enforced identically on update.
	_, err = svc.UpdateRole(context.Background(), seeded.ID, "Clerk", "", nil)
	if !errors.Is(err, ErrPermissionsRequired) {
		t.Fatalf("got error %v, want %v", err, ErrPermissionsRequired)
	}
	_, err = svc.UpdateRole(context.Background(), seeded.ID, "", "", []string{"view_fees"})
	if !errors.Is(err, ErrRoleNameRequired) {
		t.Fatalf("got error %v, want %v", err, ErrRoleNameRequired)
	}
	if store.mutations() != baseline {
		t.Error("validation failure must not reach storage")
	}
}

func TestUpdateRoleReplacesPermissionSet(t *testing.T) {
	store := newFakeRoleStore()
	svc := NewRoleService(store)

	seeded, err := svc.CreateRole(context.Background(), "Clerk", "", []string{"view_fees", "manage_fees"})
	if err != nil {
		t.Fatalf("seed role: %v", err)
	}

	updated, err := svc.UpdateRole(context.Background(), seeded.ID, "Senior Clerk", "Handles payments", []string{"record_payments"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Senior Clerk" {
		t.Errorf("name = %q, want %q", updated.Name, "Senior Clerk")
	}
	if len(updated.Permissions) != 1 || updated.Permissions[0] != "record_payments" {
		t.Errorf("update must replace the whole permission set, got %v", updated.Permissions)
	}
}

func TestSystemRoleImmutable(t *testing.T) {
	store := newFakeRoleStore()
	svc := NewRoleService(store)

	// The guard fires before any storage access, so the role does not
	// need to exist in the fake.
	if _, err := svc.UpdateRole(context.Background(), 1, "Renamed", "", []string{"view_roles"}); !errors.Is(err, ErrSystemRoleImmutable) {
		t.Errorf("update of system role: got %v, want %v", err, ErrSystemRoleImmutable)
	}
	if err := svc.DeleteRole(context.Background(), 1); !errors.Is(err, ErrSystemRoleImmutable) {
		t.Errorf("delete of system role: got %v, want %v", err, ErrSystemRoleImmutable)
	}
}

func TestDeleteRolesBestEffort(t *testing.T) {
	store := newFakeRoleStore()
	svc := NewRoleService(store)

	var ids []int
	for _, name := range []string{"A", "B", "C"} {
		role, err := svc.CreateRole(context.Background(), name, "", []string{"view_students"})
		if err != nil {
			t.Fatalf("seed role: %v", err)
		}
		ids = append(ids, role.ID)
	}
	store.failDelete[ids[1]] = errors.New("violates foreign key constraint")

	results := svc.DeleteRoles(context.Background(), ids)
	if len(results) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(results))
	}
	if !results[0].OK || results[1].OK || !results[2].OK {
		t.Errorf("a failing item must not abort the batch: %+v", results)
	}
	if results[1].Error == "" {
		t.Error("failed item should carry its error message")
	}
}
