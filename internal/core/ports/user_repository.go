package ports

import (
	"context"

	"github.com/userhub/user-management/internal/core/domain"
)

// UserUpdate lists the fields to overwrite; nil fields keep their stored value.
type UserUpdate struct {
	Name  *string
	Email *string
	Image *string
}

// ListUsersFilter carries the query parameters for listing users.
type ListUsersFilter struct {
	Role   string // exact match; empty = any role
	Search string // optional: case-insensitive substring on name or email
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a user and returns it with its generated ID.
	// A duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByEmailAndRole(ctx context.Context, email, role string) (*domain.User, error)
	// Update applies the non-nil fields and returns the updated record.
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	// List returns matching users, newest first.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
