package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/user-management/internal/core/domain"
	"github.com/userhub/user-management/internal/core/ports"
)

// UserHandler serves the authenticated user's own profile.
type UserHandler struct {
	users ports.DirectoryService
}

func NewUserHandler(users ports.DirectoryService) *UserHandler {
	return &UserHandler{users: users}
}

// Profile returns the current user's stored record.
//
// @Summary      Current user profile
// @Tags         user
// @Produce      json
// @Success      200  {object}  userEnvelope
// @Failure      401  {object}  errorResponse
// @Router       /home [get]
func (h *UserHandler) Profile(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetProfile(c.Request().Context(), principal.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUnauthenticated
		}
		return err
	}
	return c.JSON(http.StatusOK, userEnvelope{User: toUserResponse(user)})
}

// UpdateProfile applies a partial update to the current user.
//
// @Summary      Update own profile
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  userEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /update-profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.UpdateProfile(c.Request().Context(), principal.ID, toUpdateProfileInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userEnvelope{User: toUserResponse(user)})
}
