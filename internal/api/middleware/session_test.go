package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/user-management/internal/api/cookie"
	"github.com/userhub/user-management/internal/core/domain"
	"github.com/userhub/user-management/internal/core/ports"
)

type stubSessions struct {
	authenticate func(ctx context.Context, scope ports.SessionScope, creds ports.SessionCredentials) (*ports.Session, error)
}

func (s *stubSessions) Authenticate(ctx context.Context, scope ports.SessionScope, creds ports.SessionCredentials) (*ports.Session, error) {
	return s.authenticate(ctx, scope, creds)
}

func (s *stubSessions) Logout(context.Context, string) {}

var userSession = SessionConfig{
	Scope:   ports.SessionScope{Name: "user", Role: domain.RoleUser, AllowRefresh: true},
	Names:   cookie.User,
	Cookies: cookie.Options{AccessTTL: 15 * time.Minute, RefreshTTL: time.Hour},
}

func TestSession_InjectsPrincipal(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "good"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	alice := &domain.User{ID: "u1", Role: domain.RoleUser}
	stub := &stubSessions{authenticate: func(_ context.Context, scope ports.SessionScope, creds ports.SessionCredentials) (*ports.Session, error) {
		if creds.AccessToken != "good" || scope.Role != domain.RoleUser {
			t.Fatalf("unexpected call: %+v %+v", scope, creds)
		}
		return &ports.Session{Principal: alice}, nil
	}}

	called := false
	h := Session(stub, userSession, zerolog.Nop())(func(c echo.Context) error {
		called = true
		if c.Get(PrincipalKey) != alice {
			t.Fatalf("principal not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie expected without refresh")
	}
}

func TestSession_WritesRefreshedCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "r"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	stub := &stubSessions{authenticate: func(context.Context, ports.SessionScope, ports.SessionCredentials) (*ports.Session, error) {
		return &ports.Session{Principal: &domain.User{ID: "u1"}, RefreshedAccessToken: "fresh"}, nil
	}}

	h := Session(stub, userSession, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "accessToken" || cookies[0].Value != "fresh" {
		t.Fatalf("expected refreshed access cookie, got %+v", cookies)
	}
}

func TestSession_Rejects(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/home", nil), rec)

	stub := &stubSessions{authenticate: func(context.Context, ports.SessionScope, ports.SessionCredentials) (*ports.Session, error) {
		return nil, domain.ErrUnauthenticated
	}}

	h := Session(stub, userSession, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := h(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
