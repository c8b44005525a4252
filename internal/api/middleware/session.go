package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/user-management/internal/api/cookie"
	"github.com/userhub/user-management/internal/api/metrics"
	"github.com/userhub/user-management/internal/core/domain"
	"github.com/userhub/user-management/internal/core/ports"
)

// PrincipalKey is the echo context key holding the authenticated *domain.User.
const PrincipalKey = "principal"

// SessionConfig binds a session scope to its cookie pair.
type SessionConfig struct {
	Scope   ports.SessionScope
	Names   cookie.Names
	Cookies cookie.Options
}

// Session authenticates the request from its scope cookies and injects the
// principal into the context. A transparently refreshed access token is
// written back as a cookie before the handler runs.
func Session(sessions ports.SessionService, cfg SessionConfig, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := sessions.Authenticate(c.Request().Context(), cfg.Scope, cookie.Read(c, cfg.Names))
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					metrics.SessionChecksTotal.WithLabelValues(cfg.Scope.Name, "rejected").Inc()
				}
				return err
			}

			result := "ok"
			if sess.RefreshedAccessToken != "" {
				cfg.Cookies.SetAccess(c, cfg.Names, sess.RefreshedAccessToken)
				result = "refreshed"
				log.Debug().
					Str("scope", cfg.Scope.Name).
					Str("user_id", sess.Principal.ID).
					Msg("session refreshed")
			}
			metrics.SessionChecksTotal.WithLabelValues(cfg.Scope.Name, result).Inc()

			c.Set(PrincipalKey, sess.Principal)
			return next(c)
		}
	}
}
