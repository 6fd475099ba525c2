// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"splitledger/internal/domain"
	"splitledger/internal/repository"
	"splitledger/internal/util"
)

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct {
	// Methods receive a DBExecutor directly instead of holding *sqlx.DB.
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &UserRepository{}
}

// CreateUser inserts a new user into the database using the provided DBExecutor.
func (r *UserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO users (id, name, initials, color, active, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q.ExecContext(ctx, query,
		user.ID, user.Name, user.Initials, user.Color, user.Active, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID using the provided DBExecutor.
func (r *UserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, name, initials, color, active, created_at, updated_at FROM users WHERE id = $1`
	err := q.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// ListUsers retrieves all users ordered by creation time, then ID. The order
// is the enumeration order the settlement engine uses for tie-breaking, so it
// must be stable across calls.
func (r *UserRepository) ListUsers(ctx context.Context, q repository.DBExecutor) ([]domain.User, error) {
	users := []domain.User{}
	query := `SELECT id, name, initials, color, active, created_at, updated_at
              FROM users ORDER BY created_at, id`
	if err := q.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser updates a user's display fields and active flag using the provided DBExecutor.
func (r *UserRepository) UpdateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `UPDATE users SET name = $1, initials = $2, color = $3, active = $4, updated_at = $5 WHERE id = $6`
	result, err := q.ExecContext(ctx, query,
		user.Name, user.Initials, user.Color, user.Active, user.UpdatedAt, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating user %s: %w", user.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
