package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/userhub/user-management/internal/core/domain"
	"github.com/userhub/user-management/internal/core/ports"
)

// TokenRevoker abstracts the refresh-token denylist (Redis).
type TokenRevoker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// UserLookup is the slice of the repository the session service needs.
type UserLookup interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// SessionService decides per request whether the caller is an authenticated
// user, an authenticated admin, or nobody.
type SessionService struct {
	tokens  ports.TokenManager
	users   UserLookup
	revoker TokenRevoker
	log     zerolog.Logger
	now     func() time.Time
}

func NewSessionService(tokens ports.TokenManager, users UserLookup, revoker TokenRevoker, log zerolog.Logger) *SessionService {
	return &SessionService{
		tokens:  tokens,
		users:   users,
		revoker: revoker,
		log:     log,
		now:     time.Now,
	}
}

// Authenticate resolves the principal behind creds for the given scope.
//
//  1. A valid access token whose subject still exists wins.
//  2. Otherwise, if the scope allows it, a valid and unrevoked refresh token mints
//     a new access token, returned in Session.RefreshedAccessToken.
//  3. The principal's role must match the scope role.
//
// All failures collapse to domain.ErrUnauthenticated except store errors, which
// are returned wrapped so they surface as 500s.
func (s *SessionService) Authenticate(ctx context.Context, scope ports.SessionScope, creds ports.SessionCredentials) (*ports.Session, error) {
	if creds.AccessToken != "" {
		if claims, err := s.tokens.ParseAccessToken(creds.AccessToken); err == nil {
			user, err := s.lookup(ctx, claims.Subject)
			if err != nil {
				return nil, err
			}
			if user.Role != scope.Role {
				return nil, domain.ErrUnauthenticated
			}
			return &ports.Session{Principal: user}, nil
		}
	}

	if !scope.AllowRefresh || creds.RefreshToken == "" {
		return nil, domain.ErrUnauthenticated
	}

	return s.refresh(ctx, scope, creds.RefreshToken)
}

func (s *SessionService) refresh(ctx context.Context, scope ports.SessionScope, refreshToken string) (*ports.Session, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	if s.revoker != nil && claims.ID != "" {
		revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("subject", claims.Subject).Msg("revocation check failed, accepting refresh token")
		} else if revoked {
			s.log.Info().Str("subject", claims.Subject).Str("scope", scope.Name).Msg("revoked refresh token presented")
			return nil, domain.ErrUnauthenticated
		}
	}

	user, err := s.lookup(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user.Role != scope.Role {
		return nil, domain.ErrUnauthenticated
	}

	access, err := s.tokens.IssueAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Str("user_id", user.ID).Str("scope", scope.Name).Msg("access token refreshed")

	return &ports.Session{Principal: user, RefreshedAccessToken: access}, nil
}

// lookup maps a missing subject to ErrUnauthenticated.
func (s *SessionService) lookup(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// Logout denylists the refresh token for the rest of its lifetime. Unparseable
// or already expired tokens need no revocation.
func (s *SessionService) Logout(ctx context.Context, refreshToken string) {
	if s.revoker == nil || refreshToken == "" {
		return
	}
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil || claims.ID == "" {
		return
	}

	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return
	}
	if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		s.log.Warn().Err(err).Str("subject", claims.Subject).Msg("failed to revoke refresh token")
	}
}
