package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/user-management/internal/api/metrics"
	"github.com/userhub/user-management/internal/core/ports"
)

// AdminHandler serves the admin dashboard and user management routes.
type AdminHandler struct {
	users ports.DirectoryService
}

func NewAdminHandler(users ports.DirectoryService) *AdminHandler {
	return &AdminHandler{users: users}
}

// Dashboard lists regular users, newest first.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        search  query     string  false  "Case-insensitive substring of name or email"
// @Success      200     {object}  usersEnvelope
// @Failure      401     {object}  errorResponse
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context(), ports.ListUsersInput{Search: c.QueryParam("search")})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersEnvelope{Users: toUserResponses(users)})
}

// Create adds a user account. No session is started for it.
//
// @Summary      Create user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  userEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/create [post]
func (h *AdminHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.AdminCreateUser(c.Request().Context(), toAdminCreateInput(req))
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues("admin").Inc()
	return c.JSON(http.StatusCreated, userEnvelope{User: toUserResponse(user)})
}

// Edit overwrites a user's name and email.
//
// @Summary      Edit user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      editUserRequest  true  "User id, name and email"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/edit [patch]
func (h *AdminHandler) Edit(c echo.Context) error {
	var req editUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.users.AdminEditUser(c.Request().Context(), toAdminEditInput(req)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User updated successfully"})
}

// Delete permanently removes a user. The id is read from the JSON body or,
// failing that, from the id query parameter.
//
// @Summary      Delete user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      deleteUserRequest  false  "User id"
// @Param        id    query     string             false  "User id"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/delete [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	var req deleteUserRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
	}
	if req.ID == "" {
		req.ID = c.QueryParam("id")
	}

	if err := h.users.AdminDeleteUser(c.Request().Context(), req.ID); err != nil {
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
