package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/siakadku/siakad-backend/internal/model"
)

// UserRepository handles staff user data access.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetByID retrieves a user by ID, joined with the role name.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT u.id, u.email, u.name, u.password_hash, u.role_id, r.name, u.created_at, u.updated_at
		 FROM users u JOIN roles r ON u.role_id = r.id
		 WHERE u.id = $1`, id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.RoleID, &u.RoleName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByEmail retrieves a user by their unique email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT u.id, u.email, u.name, u.password_hash, u.role_id, r.name, u.created_at, u.updated_at
		 FROM users u JOIN roles r ON u.role_id = r.id
		 WHERE u.email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.RoleID, &u.RoleName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// List retrieves a page of users, optionally filtered by role.
// Returns the page and the unfiltered-by-page total count.
func (r *UserRepository) List(ctx context.Context, roleID, page, perPage int) ([]model.User, int, error) {
	offset := (page - 1) * perPage

	var total int
	var err error
	if roleID > 0 {
		err = r.pool.QueryRow(ctx,
			"SELECT COUNT(*) FROM users WHERE role_id = $1", roleID,
		).Scan(&total)
	} else {
		err = r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&total)
	}
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT u.id, u.email, u.name, u.role_id, r.name, u.created_at, u.updated_at
		FROM users u JOIN roles r ON u.role_id = r.id`
	args := []interface{}{}
	if roleID > 0 {
		query += " WHERE u.role_id = $1 ORDER BY u.created_at DESC LIMIT $2 OFFSET $3"
		args = append(args, roleID, perPage, offset)
	} else {
		query += " ORDER BY u.created_at DESC LIMIT $1 OFFSET $2"
		args = append(args, perPage, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.RoleID, &u.RoleName, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}

	return users, total, rows.Err()
}

// EmailExists reports whether an email is already registered, excluding
// excludeID (pass 0 on create).
func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id != $2)",
		email, excludeID,
	).Scan(&exists)
	return exists, err
}

// Create inserts a new user and fills in the generated fields.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash, role_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		u.Email, u.Name, u.PasswordHash, u.RoleID,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

// Update replaces a user's editable fields. An empty passwordHash keeps
// the stored hash.
func (r *UserRepository) Update(ctx context.Context, id int, email, name, passwordHash string, roleID int) error {
	if passwordHash != "" {
		_, err := r.pool.Exec(ctx,
			"UPDATE users SET email = $1, name = $2, password_hash = $3, role_id = $4, updated_at = NOW() WHERE id = $5",
			email, name, passwordHash, roleID, id,
		)
		return err
	}
	_, err := r.pool.Exec(ctx,
		"UPDATE users SET email = $1, name = $2, role_id = $3, updated_at = NOW() WHERE id = $4",
		email, name, roleID, id,
	)
	return err
}

// Delete removes a user. Returns the number of rows affected.
func (r *UserRepository) Delete(ctx context.Context, id int) (int64, error) {
	res, err := r.pool.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}
