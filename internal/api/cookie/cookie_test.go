package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/userhub/user-management/internal/core/domain"
)

func responseCookies(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := make(map[string]*http.Cookie)
	for _, ck := range rec.Result().Cookies() {
		out[ck.Name] = ck
	}
	return out
}

func TestOptions_SetPair(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	opts := Options{Secure: true, AccessTTL: 15 * time.Minute, RefreshTTL: 7 * 24 * time.Hour}
	opts.SetPair(c, Admin, &domain.TokenPair{AccessToken: "a", RefreshToken: "r"})

	got := responseCookies(rec)
	access, refresh := got["adminAccessToken"], got["adminRefreshToken"]
	if access == nil || refresh == nil {
		t.Fatalf("expected both admin cookies, got %v", got)
	}
	if access.Value != "a" || access.MaxAge != 900 {
		t.Fatalf("unexpected access cookie: %+v", access)
	}
	if refresh.Value != "r" || refresh.MaxAge != 604800 {
		t.Fatalf("unexpected refresh cookie: %+v", refresh)
	}
	for _, ck := range []*http.Cookie{access, refresh} {
		if !ck.HttpOnly || !ck.Secure || ck.SameSite != http.SameSiteStrictMode || ck.Path != "/" {
			t.Fatalf("missing security attributes: %+v", ck)
		}
	}
}

func TestOptions_Clear(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	Options{}.Clear(c, User)

	got := responseCookies(rec)
	for _, name := range []string{"accessToken", "refreshToken"} {
		if ck := got[name]; ck == nil || ck.MaxAge >= 0 || ck.Value != "" {
			t.Fatalf("%s not cleared: %+v", name, ck)
		}
	}
}

func TestRead(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "r"})
	c := e.NewContext(req, httptest.NewRecorder())

	creds := Read(c, User)
	if creds.AccessToken != "" || creds.RefreshToken != "r" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}
