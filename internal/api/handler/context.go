package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/userhub/user-management/internal/api/middleware"
	"github.com/userhub/user-management/internal/core/domain"
)

// ctxPrincipal returns the user injected by the Session middleware. A missing
// principal means the route was mounted without the middleware.
func ctxPrincipal(c echo.Context) (*domain.User, error) {
	u, _ := c.Get(middleware.PrincipalKey).(*domain.User)
	if u == nil || u.ID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return u, nil
}
