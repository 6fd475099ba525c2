// internal/repository/user_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"splitledger/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user to the database using the provided DBExecutor.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a user by their ID using the provided DBExecutor.
	GetUserByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.User, error)
	// ListUsers retrieves all users in their stable enumeration order
	// (creation order). The settlement engine's tie-breaking depends on this
	// order being deterministic.
	ListUsers(ctx context.Context, q DBExecutor) ([]domain.User, error)
	// UpdateUser updates a user's display fields and active flag.
	UpdateUser(ctx context.Context, q DBExecutor, user *domain.User) error
}
