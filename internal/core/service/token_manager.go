package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/userhub/user-management/internal/core/domain"
	"github.com/userhub/user-management/internal/core/ports"
)

const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type refreshClaims struct {
	jwt.RegisteredClaims
}

// TokenConfig holds the signing material and lifetimes for session tokens.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// JWTManager implements ports.TokenManager with HS256 tokens. Access and refresh
// tokens are signed with different secrets so one can never stand in for the other.
type JWTManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewJWTManager(cfg TokenConfig) *JWTManager {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTokenTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTokenTTL
	}
	return &JWTManager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           time.Now,
	}
}

// WithClock replaces the time source. Used by tests to move past expiry.
func (m *JWTManager) WithClock(now func() time.Time) *JWTManager {
	m.now = now
	return m
}

func (m *JWTManager) AccessTTL() time.Duration  { return m.accessTTL }
func (m *JWTManager) RefreshTTL() time.Duration { return m.refreshTTL }

func (m *JWTManager) registered(subjectID string, ttl time.Duration) jwt.RegisteredClaims {
	now := m.now()
	return jwt.RegisteredClaims{
		Subject:   subjectID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (m *JWTManager) IssueAccessToken(subjectID, role string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		Role:             role,
		RegisteredClaims: m.registered(subjectID, m.accessTTL),
	})
	return t.SignedString(m.accessSecret)
}

func (m *JWTManager) IssueRefreshToken(subjectID string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims{
		RegisteredClaims: m.registered(subjectID, m.refreshTTL),
	})
	return t.SignedString(m.refreshSecret)
}

func (m *JWTManager) IssuePair(subjectID, role string) (*domain.TokenPair, error) {
	access, err := m.IssueAccessToken(subjectID, role)
	if err != nil {
		return nil, err
	}
	refresh, err := m.IssueRefreshToken(subjectID)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// ParseAccessToken verifies an access token. Every failure is reported as
// domain.ErrUnauthenticated; the cause is not exposed.
func (m *JWTManager) ParseAccessToken(token string) (*ports.TokenClaims, error) {
	var claims accessClaims
	if err := m.parse(token, &claims, m.accessSecret); err != nil {
		return nil, err
	}
	return toTokenClaims(claims.RegisteredClaims, claims.Role), nil
}

// ParseRefreshToken verifies a refresh token.
func (m *JWTManager) ParseRefreshToken(token string) (*ports.TokenClaims, error) {
	var claims refreshClaims
	if err := m.parse(token, &claims, m.refreshSecret); err != nil {
		return nil, err
	}
	return toTokenClaims(claims.RegisteredClaims, ""), nil
}

func (m *JWTManager) parse(token string, claims jwt.Claims, secret []byte) error {
	if token == "" {
		return domain.ErrUnauthenticated
	}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	},
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tkn.Valid {
		return domain.ErrUnauthenticated
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return domain.ErrUnauthenticated
	}
	return nil
}

func toTokenClaims(rc jwt.RegisteredClaims, role string) *ports.TokenClaims {
	out := &ports.TokenClaims{
		Subject: rc.Subject,
		Role:    role,
		ID:      rc.ID,
	}
	if rc.ExpiresAt != nil {
		out.ExpiresAt = rc.ExpiresAt.Time
	}
	return out
}
