package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/userhub/user-management/internal/api/cookie"
	"github.com/userhub/user-management/internal/core/domain"
	"github.com/userhub/user-management/internal/core/ports"
	"github.com/userhub/user-management/internal/core/validation"
)

type stubDirectory struct {
	ports.DirectoryService
	listed int
}

func (s *stubDirectory) ListUsers(context.Context, ports.ListUsersInput) ([]*domain.User, error) {
	s.listed++
	return nil, nil
}

// stubSessions accepts the access cookie "<role>-token" for the matching scope.
type stubSessions struct{}

func (stubSessions) Authenticate(_ context.Context, scope ports.SessionScope, creds ports.SessionCredentials) (*ports.Session, error) {
	if creds.AccessToken != scope.Role+"-token" {
		return nil, domain.ErrUnauthenticated
	}
	return &ports.Session{Principal: &domain.User{ID: "p1", Role: scope.Role}}, nil
}

func (stubSessions) Logout(context.Context, string) {}

func newTestRouter(t *testing.T, dir *stubDirectory) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewRouter(Dependencies{
		Users:        dir,
		Sessions:     stubSessions{},
		Validator:    validation.New(),
		Log:          zerolog.Nop(),
		Cookies:      cookie.Options{AccessTTL: 15 * time.Minute, RefreshTTL: time.Hour},
		ClientOrigin: "http://localhost:5173",
		Registerer:   reg,
		Gatherer:     reg,
	})
}

func TestRouter_ProtectedRoutesRequireSession(t *testing.T) {
	r := newTestRouter(t, &stubDirectory{})

	for _, path := range []string{"/home", "/admin/dashboard"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"error":"unauthorized"`) {
			t.Fatalf("%s: unexpected body %s", path, rec.Body.String())
		}
	}
}

func TestRouter_ScopesDoNotCross(t *testing.T) {
	dir := &stubDirectory{}
	r := newTestRouter(t, dir)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "adminAccessToken", Value: "user-token"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("user token on admin route: expected 401, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "adminAccessToken", Value: "admin-token"})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || dir.listed != 1 {
		t.Fatalf("admin token: expected 200 and one listing, got %d / %d", rec.Code, dir.listed)
	}
}

func TestRouter_AdminLoginIsPublic(t *testing.T) {
	r := newTestRouter(t, &stubDirectory{})

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"email":"bad"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected validation 400 before any session check, got %d", rec.Code)
	}
}

func TestRouter_CORSAllowsCredentials(t *testing.T) {
	r := newTestRouter(t, &stubDirectory{})

	req := httptest.NewRequest(http.MethodOptions, "/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("unexpected allow-origin: %q", got)
	}
	if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatalf("credentials not allowed")
	}
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	r := newTestRouter(t, &stubDirectory{})

	for _, path := range []string{"/health", "/health/ready", "/metrics"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}
