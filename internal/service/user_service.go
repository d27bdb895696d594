package service

import (
	"context"
	"errors"

	"github.com/siakadku/siakad-backend/internal/model"
	"github.com/siakadku/siakad-backend/internal/repository"
)

// User service errors.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailRegistered = errors.New("email already registered")

	// ErrAssignmentNotSupported is the permanent failure of the
	// role-assignment write path. The backend has no standalone
	// user-role assignment endpoint yet; callers must treat this as a
	// fixed condition, not something to retry. Role changes go through
	// the regular user update.
	ErrAssignmentNotSupported = errors.New("assigning a role to a user is not supported yet")
)

// UserService handles business logic for staff users.
type UserService struct {
	userRepo *repository.UserRepository
	roleRepo *repository.RoleRepository
	auth     *AuthService
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository, roleRepo *repository.RoleRepository, auth *AuthService) *UserService {
	return &UserService{userRepo: userRepo, roleRepo: roleRepo, auth: auth}
}

// GetByEmail retrieves a user for authentication.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// GetByID retrieves a single user.
func (s *UserService) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetPermissions retrieves the permission codes of a role, for
// embedding into a login token.
func (s *UserService) GetPermissions(ctx context.Context, roleID int) ([]string, error) {
	return s.roleRepo.GetPermissionsByRoleID(ctx, roleID)
}

// ListUsers retrieves a paginated user list, optionally filtered by role.
// The role shown per user comes straight from the listing row's joined
// role name, not from a separate assignment lookup.
func (s *UserService) ListUsers(ctx context.Context, roleID, page, perPage int) ([]model.User, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	return s.userRepo.List(ctx, roleID, page, perPage)
}

// CreateUser creates a new staff user.
func (s *UserService) CreateUser(ctx context.Context, email, name, password string, roleID int) (*model.User, error) {
	exists, err := s.userRepo.EmailExists(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailRegistered
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		RoleID:       roleID,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, u.ID)
}

// UpdateUser updates an existing staff user. An empty password keeps
// the current one.
func (s *UserService) UpdateUser(ctx context.Context, id int, email, name, password string, roleID int) (*model.User, error) {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return nil, ErrUserNotFound
	}

	exists, err := s.userRepo.EmailExists(ctx, email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailRegistered
	}

	hash := ""
	if password != "" {
		hash, err = s.auth.HashPassword(password)
		if err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, id, email, name, hash, roleID); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, id)
}

// DeleteUser deletes a staff user.
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	affected, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteUsers deletes several users best-effort, collecting per-item
// outcomes instead of aborting on the first failure.
func (s *UserService) DeleteUsers(ctx context.Context, ids []int) []BulkDeleteResult {
	results := make([]BulkDeleteResult, 0, len(ids))
	for _, id := range ids {
		if err := s.DeleteUser(ctx, id); err != nil {
			results = append(results, BulkDeleteResult{ID: id, Error: err.Error()})
			continue
		}
		results = append(results, BulkDeleteResult{ID: id, OK: true})
	}
	return results
}

// AssignRole would bind a user to a role directly. The write is not
// implemented server-side; it always fails with a fixed error
// regardless of input until a real endpoint exists.
func (s *UserService) AssignRole(ctx context.Context, userID, roleID int) error {
	return ErrAssignmentNotSupported
}
