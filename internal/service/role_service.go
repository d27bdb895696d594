package service

import (
	"context"
	"errors"

	"github.com/siakadku/siakad-backend/internal/model"
	"github.com/siakadku/siakad-backend/internal/permset"
)

// Role validation errors. Exactly two rules are enforced before any
// storage call: non-empty name and at least one permission.
var (
	ErrRoleNameRequired    = errors.New("role name cannot be empty")
	ErrPermissionsRequired = errors.New("role must have at least one permission")
	ErrSystemRoleImmutable = errors.New("cannot modify the system Admin role")
)

// RoleStore is the persistence contract the role service depends on.
// *repository.RoleRepository satisfies it.
type RoleStore interface {
	ListRolesWithPermissions(ctx context.Context) ([]model.RoleWithPermissions, error)
	GetRoleByID(ctx context.Context, id int) (*model.RoleWithPermissions, error)
	CreateRole(ctx context.Context, name, description string) (int, error)
	UpdateRole(ctx context.Context, id int, name, description string) error
	DeleteRole(ctx context.Context, id int) error
	DeleteAllPermissionsFromRole(ctx context.Context, roleID int) error
	AssignPermissionsToRole(ctx context.Context, roleID int, permissionCodes []string) error
}

// systemRoleID is the seeded Admin role; it cannot be edited or deleted.
const systemRoleID = 1

// RoleService handles business logic for roles and the permission catalog.
type RoleService struct {
	store RoleStore
}

// NewRoleService creates a new RoleService.
func NewRoleService(store RoleStore) *RoleService {
	return &RoleService{store: store}
}

// ListRoles retrieves all roles with their permissions.
func (s *RoleService) ListRoles(ctx context.Context) ([]model.RoleWithPermissions, error) {
	return s.store.ListRolesWithPermissions(ctx)
}

// GetRoleByID retrieves a specific role and its permissions.
func (s *RoleService) GetRoleByID(ctx context.Context, id int) (*model.RoleWithPermissions, error) {
	return s.store.GetRoleByID(ctx, id)
}

// validateRole applies the two save-time invariants. Duplicate codes in
// the payload collapse before the size check.
func validateRole(name string, permissions []string) (permset.Set, error) {
	if name == "" {
		return nil, ErrRoleNameRequired
	}
	selection := permset.FromStrings(permissions)
	if selection.Len() == 0 {
		return nil, ErrPermissionsRequired
	}
	return selection, nil
}

// CreateRole creates a new role and assigns its permissions.
func (s *RoleService) CreateRole(ctx context.Context, name, description string, permissions []string) (*model.RoleWithPermissions, error) {
	selection, err := validateRole(name, permissions)
	if err != nil {
		return nil, err
	}

	id, err := s.store.CreateRole(ctx, name, description)
	if err != nil {
		return nil, err
	}

	if err := s.store.AssignPermissionsToRole(ctx, id, selection.Strings()); err != nil {
		// Best-effort cleanup so a half-created role does not linger.
		_ = s.store.DeleteRole(ctx, id)
		return nil, err
	}

	return s.store.GetRoleByID(ctx, id)
}

// UpdateRole replaces a role's name, description, and full permission
// set. The same validation applies as on create; this is a full-record
// replace, not a partial patch.
func (s *RoleService) UpdateRole(ctx context.Context, id int, name, description string, permissions []string) (*model.RoleWithPermissions, error) {
	if id == systemRoleID {
		return nil, ErrSystemRoleImmutable
	}

	selection, err := validateRole(name, permissions)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateRole(ctx, id, name, description); err != nil {
		return nil, err
	}

	if err := s.store.DeleteAllPermissionsFromRole(ctx, id); err != nil {
		return nil, err
	}
	if err := s.store.AssignPermissionsToRole(ctx, id, selection.Strings()); err != nil {
		return nil, err
	}

	return s.store.GetRoleByID(ctx, id)
}

// DeleteRole deletes a role. Users still referencing the role make the
// delete fail at the DB foreign key level; the handler surfaces that as
// a dependency conflict.
func (s *RoleService) DeleteRole(ctx context.Context, id int) error {
	if id == systemRoleID {
		return ErrSystemRoleImmutable
	}
	return s.store.DeleteRole(ctx, id)
}

// BulkDeleteResult reports the outcome of one item in a bulk delete.
type BulkDeleteResult struct {
	ID    int    `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// DeleteRoles deletes several roles best-effort: a failing item does
// not abort the loop, and every item gets its own outcome.
func (s *RoleService) DeleteRoles(ctx context.Context, ids []int) []BulkDeleteResult {
	results := make([]BulkDeleteResult, 0, len(ids))
	for _, id := range ids {
		if err := s.DeleteRole(ctx, id); err != nil {
			results = append(results, BulkDeleteResult{ID: id, Error: err.Error()})
			continue
		}
		results = append(results, BulkDeleteResult{ID: id, OK: true})
	}
	return results
}
