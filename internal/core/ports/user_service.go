package ports

import (
	"context"

	"github.com/userhub/user-management/internal/core/domain"
)

// RegisterInput is the self-service sign-up payload.
type RegisterInput struct {
	Name     string `json:"name"     validate:"required,personname"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
	Image    string `json:"image"    validate:"required,imageurl"`
}

// LoginInput carries credentials plus the role the caller expects to log in as.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"-"        validate:"required,role"`
}

// UpdateProfileInput holds a partial profile update; nil fields are left unchanged.
type UpdateProfileInput struct {
	Name  *string `json:"name"  validate:"omitempty,personname"`
	Email *string `json:"email" validate:"omitempty,email"`
	Image *string `json:"image" validate:"omitempty,imageurl"`
}

// ListUsersInput holds the admin dashboard query.
type ListUsersInput struct {
	Search string
}

// AdminCreateUserInput is the admin-side creation payload. Role defaults to "user".
type AdminCreateUserInput struct {
	Name     string `json:"name"     validate:"required,personname"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
	Image    string `json:"image"    validate:"required,imageurl"`
	Role     string `json:"role"     validate:"omitempty,role"`
}

// AdminEditUserInput overwrites name and email of an existing user.
type AdminEditUserInput struct {
	ID    string
	Name  string `json:"name"  validate:"personname"`
	Email string `json:"email" validate:"email"`
}

// SeedAdminInput describes the bootstrap administrator created at startup.
type SeedAdminInput struct {
	Name     string `json:"name"     validate:"required,personname"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
	Image    string `json:"image"    validate:"required,imageurl"`
}

// DirectoryService defines the use cases over the user collection.
type DirectoryService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, *domain.TokenPair, error)
	Login(ctx context.Context, in LoginInput) (*domain.User, *domain.TokenPair, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error)
	ListUsers(ctx context.Context, in ListUsersInput) ([]*domain.User, error)
	AdminCreateUser(ctx context.Context, in AdminCreateUserInput) (*domain.User, error)
	AdminEditUser(ctx context.Context, in AdminEditUserInput) error
	AdminDeleteUser(ctx context.Context, id string) error
}
