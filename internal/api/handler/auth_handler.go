package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/user-management/internal/api/cookie"
	"github.com/userhub/user-management/internal/api/metrics"
	"github.com/userhub/user-management/internal/core/domain"
	"github.com/userhub/user-management/internal/core/ports"
)

// AuthHandler serves registration, login and logout for both session scopes.
type AuthHandler struct {
	users    ports.DirectoryService
	sessions ports.SessionService
	cookies  cookie.Options
}

func NewAuthHandler(users ports.DirectoryService, sessions ports.SessionService, cookies cookie.Options) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, cookies: cookies}
}

// Register creates a new user account and starts a session.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  userEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, pair, err := h.users.Register(c.Request().Context(), toRegisterInput(req))
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues("register").Inc()
	h.cookies.SetPair(c, cookie.User, pair)
	return c.JSON(http.StatusCreated, userEnvelope{User: toUserResponse(user)})
}

// Login authenticates a regular user and sets the user session cookies.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  userEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	user, err := h.login(c, domain.RoleUser, cookie.User)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userEnvelope{User: toUserResponse(user)})
}

// AdminLogin authenticates an administrator and sets the admin session cookies.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  adminEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	admin, err := h.login(c, domain.RoleAdmin, cookie.Admin)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminEnvelope{Admin: toUserResponse(admin)})
}

func (h *AuthHandler) login(c echo.Context, role string, names cookie.Names) (*domain.User, error) {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(role, "invalid").Inc()
		return nil, err
	}

	user, pair, err := h.users.Login(c.Request().Context(), toLoginInput(req, role))
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrUnauthenticated) {
			result = "unauthorized"
		}
		metrics.LoginAttemptsTotal.WithLabelValues(role, result).Inc()
		return nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues(role, "success").Inc()
	h.cookies.SetPair(c, names, pair)
	return user, nil
}

// Logout ends the user session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	return h.logout(c, domain.RoleUser, cookie.User)
}

// AdminLogout ends the admin session.
//
// @Summary      Admin logout
// @Tags         admin
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /admin/logout [post]
func (h *AuthHandler) AdminLogout(c echo.Context) error {
	return h.logout(c, domain.RoleAdmin, cookie.Admin)
}

func (h *AuthHandler) logout(c echo.Context, scope string, names cookie.Names) error {
	h.sessions.Logout(c.Request().Context(), cookie.Read(c, names).RefreshToken)
	h.cookies.Clear(c, names)
	metrics.LogoutsTotal.WithLabelValues(scope).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully."})
}
