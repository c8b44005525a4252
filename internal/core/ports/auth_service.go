package ports

import (
	"context"
	"time"

	"github.com/userhub/user-management/internal/core/domain"
)

// TokenClaims is the verified content of an access or refresh token.
// Role is empty for refresh tokens.
type TokenClaims struct {
	Subject   string
	Role      string
	ID        string
	ExpiresAt time.Time
}

// TokenManager signs and verifies session credentials.
type TokenManager interface {
	IssueAccessToken(subjectID, role string) (string, error)
	IssueRefreshToken(subjectID string) (string, error)
	IssuePair(subjectID, role string) (*domain.TokenPair, error)
	ParseAccessToken(token string) (*TokenClaims, error)
	ParseRefreshToken(token string) (*TokenClaims, error)
}

// SessionScope selects which principal kind a route accepts.
type SessionScope struct {
	Name string
	// Role the principal must hold.
	Role string
	// AllowRefresh enables minting a new access token from a valid refresh token.
	AllowRefresh bool
}

// SessionCredentials are the raw cookie values presented by the client.
type SessionCredentials struct {
	AccessToken  string
	RefreshToken string
}

// Session is the outcome of a successful authentication.
type Session struct {
	Principal *domain.User
	// RefreshedAccessToken is set when a new access token was minted and must be
	// sent back to the client.
	RefreshedAccessToken string
}

// SessionService gates protected routes.
type SessionService interface {
	Authenticate(ctx context.Context, scope SessionScope, creds SessionCredentials) (*Session, error)
	Logout(ctx context.Context, refreshToken string)
}
