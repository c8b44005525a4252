// Package cookie sets, reads and clears the session cookie pairs.
package cookie

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/userhub/user-management/internal/core/domain"
	"github.com/userhub/user-management/internal/core/ports"
)

// Names is the pair of cookie names used by one session scope.
type Names struct {
	Access  string
	Refresh string
}

var (
	User  = Names{Access: "accessToken", Refresh: "refreshToken"}
	Admin = Names{Access: "adminAccessToken", Refresh: "adminRefreshToken"}
)

// Options holds the attributes shared by every session cookie.
type Options struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// SetPair writes both cookies of a freshly issued token pair.
func (o Options) SetPair(c echo.Context, n Names, pair *domain.TokenPair) {
	o.SetAccess(c, n, pair.AccessToken)
	c.SetCookie(o.cookie(n.Refresh, pair.RefreshToken, o.RefreshTTL))
}

// SetAccess writes only the access cookie, e.g. after a transparent refresh.
func (o Options) SetAccess(c echo.Context, n Names, token string) {
	c.SetCookie(o.cookie(n.Access, token, o.AccessTTL))
}

// Clear expires both cookies of the scope.
func (o Options) Clear(c echo.Context, n Names) {
	for _, name := range []string{n.Access, n.Refresh} {
		ck := o.cookie(name, "", 0)
		ck.MaxAge = -1
		ck.Expires = time.Unix(0, 0)
		c.SetCookie(ck)
	}
}

func (o Options) cookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Secure:   o.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

// Read returns the raw cookie values of the scope; missing cookies are empty.
func Read(c echo.Context, n Names) ports.SessionCredentials {
	var creds ports.SessionCredentials
	if ck, err := c.Cookie(n.Access); err == nil {
		creds.AccessToken = ck.Value
	}
	if ck, err := c.Cookie(n.Refresh); err == nil {
		creds.RefreshToken = ck.Value
	}
	return creds
}
