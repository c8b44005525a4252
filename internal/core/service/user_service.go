package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/userhub/user-management/internal/core/domain"
	"github.com/userhub/user-management/internal/core/ports"
)

// InputValidator checks a tagged input struct and returns *domain.ValidationError
// when one or more fields are rejected.
type InputValidator interface {
	Struct(s any) error
}

// UserService implements ports.DirectoryService.
type UserService struct {
	repo      ports.UserRepository
	tokens    ports.TokenManager
	validator InputValidator
	logger    zerolog.Logger
	cost      int
}

func NewUserService(repo ports.UserRepository, tokens ports.TokenManager, validator InputValidator, logger zerolog.Logger) *UserService {
	return &UserService{
		repo:      repo,
		tokens:    tokens,
		validator: validator,
		logger:    logger,
		cost:      bcrypt.DefaultCost,
	}
}

// WithHashCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func (s *UserService) WithHashCost(cost int) *UserService {
	s.cost = cost
	return s
}

// Register creates a self-service account with role "user" and returns a fresh
// token pair for it.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, *domain.TokenPair, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, nil, err
	}

	user, err := s.create(ctx, in.Name, in.Email, in.Password, in.Image, domain.RoleUser)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.tokens.IssuePair(user.ID, user.Role)
	if err != nil {
		return nil, nil, fmt.Errorf("issue tokens: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user registered")
	return user, pair, nil
}

// Login verifies credentials against accounts holding in.Role. Unknown email,
// wrong role and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, in ports.LoginInput) (*domain.User, *domain.TokenPair, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, nil, err
	}

	user, err := s.repo.FindByEmailAndRole(ctx, domain.NormalizeEmail(in.Email), in.Role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrUnauthenticated
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, domain.ErrUnauthenticated
	}

	pair, err := s.tokens.IssuePair(user.ID, user.Role)
	if err != nil {
		return nil, nil, fmt.Errorf("issue tokens: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")
	return user, pair, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile applies a partial update to the caller's own record. Role and
// password are never touched here.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ports.UpdateProfileInput) (*domain.User, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	var update ports.UserUpdate
	if in.Name != nil {
		name := domain.NormalizeName(*in.Name)
		update.Name = &name
	}
	if in.Image != nil {
		image := strings.TrimSpace(*in.Image)
		update.Image = &image
	}
	if in.Email != nil {
		email := domain.NormalizeEmail(*in.Email)
		existing, err := s.repo.FindByEmail(ctx, email)
		switch {
		case err == nil && existing.ID != userID:
			return nil, domain.ErrEmailTaken
		case err != nil && !errors.Is(err, domain.ErrUserNotFound):
			return nil, err
		}
		update.Email = &email
	}

	user, err := s.repo.Update(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("profile updated")
	return user, nil
}

// ListUsers returns regular users for the admin dashboard, newest first.
func (s *UserService) ListUsers(ctx context.Context, in ports.ListUsersInput) ([]*domain.User, error) {
	return s.repo.List(ctx, ports.ListUsersFilter{
		Role:   domain.RoleUser,
		Search: strings.TrimSpace(in.Search),
	})
}

// AdminCreateUser creates an account on behalf of an admin. No tokens are minted.
func (s *UserService) AdminCreateUser(ctx context.Context, in ports.AdminCreateUserInput) (*domain.User, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}

	user, err := s.create(ctx, in.Name, in.Email, in.Password, in.Image, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", role).Msg("user created by admin")
	return user, nil
}

// AdminEditUser overwrites name and email of the user identified by in.ID.
func (s *UserService) AdminEditUser(ctx context.Context, in ports.AdminEditUserInput) error {
	if strings.TrimSpace(in.ID) == "" || strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return domain.ErrBadRequest
	}
	if err := s.validator.Struct(in); err != nil {
		return err
	}

	name := domain.NormalizeName(in.Name)
	email := domain.NormalizeEmail(in.Email)
	if _, err := s.repo.Update(ctx, in.ID, ports.UserUpdate{Name: &name, Email: &email}); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", in.ID).Msg("user edited by admin")
	return nil
}

// AdminDeleteUser permanently removes the user identified by id.
func (s *UserService) AdminDeleteUser(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrBadRequest
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("user deleted by admin")
	return nil
}

// EnsureAdmin creates the bootstrap admin unless an account with that email
// already exists. It reports whether a new account was created.
func (s *UserService) EnsureAdmin(ctx context.Context, in ports.SeedAdminInput) (bool, error) {
	if err := s.validator.Struct(in); err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}

	existing, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(in.Email))
	if err == nil {
		if existing.Role != domain.RoleAdmin {
			s.logger.Warn().Str("email", existing.Email).Msg("bootstrap admin email belongs to a non-admin account")
		}
		return false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return false, err
	}

	user, err := s.create(ctx, in.Name, in.Email, in.Password, in.Image, domain.RoleAdmin)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return false, nil
		}
		return false, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("bootstrap admin created")
	return true, nil
}

// create normalizes, checks email uniqueness, hashes the password and persists.
// The unique index still guards the race between the check and the insert.
func (s *UserService) create(ctx context.Context, name, email, password, image, role string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.User{
		Name:         domain.NormalizeName(name),
		Email:        email,
		Image:        strings.TrimSpace(image),
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
