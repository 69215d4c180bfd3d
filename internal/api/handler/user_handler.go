package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nimbusid/identity-api/internal/api/metrics"
	"github.com/nimbusid/identity-api/internal/core/domain"
	"github.com/nimbusid/identity-api/internal/core/ports"
)

type UserHandler struct {
	userService  ports.UserService
	auditService ports.AuditService
}

func NewUserHandler(userService ports.UserService, auditService ports.AuditService) *UserHandler {
	return &UserHandler{userService: userService, auditService: auditService}
}

// List returns users, optionally filtered by role intersection.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        roles  query     string  false  "Comma-separated role filter"
// @Success      200    {object}  listUsersResponse
// @Failure      400    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	roles, err := parseRolesParam(c.QueryParam("roles"))
	if err != nil {
		return err
	}

	users, err := h.userService.List(c.Request().Context(), roles)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listUsersResponse{Data: users})
}

// UpdateMe applies a profile patch to the calling user.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile patch"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.userService.Update(c.Request().Context(), actor.ID, ports.UserPatch{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

// Update applies an administrative patch, including role reassignment.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "User patch"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	roles := make([]domain.Role, 0, len(req.Roles))
	for _, r := range req.Roles {
		role, ok := domain.ParseRole(r)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown role: "+r)
		}
		roles = append(roles, role)
	}

	updated, err := h.userService.Update(c.Request().Context(), c.Param("id"), ports.UserPatch{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Roles:    roles,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

// Block deactivates an account. Outstanding tokens are revoked.
//
// @Summary      Block a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200 {object}  domain.User
// @Failure      403 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /users/{id}/block [post]
func (h *UserHandler) Block(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Block(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}

	metrics.UsersBlockedTotal.Inc()

	return c.JSON(http.StatusOK, user)
}

// Unblock reactivates an account.
//
// @Summary      Unblock a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200 {object}  domain.User
// @Failure      403 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /users/{id}/unblock [post]
func (h *UserHandler) Unblock(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Unblock(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// AuditTrail lists the most recent audit entries for a user.
//
// @Summary      User audit trail
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "User id"
// @Param        limit  query     int     false  "Max entries (default 50)"
// @Success      200    {object}  auditTrailResponse
// @Failure      403    {object}  errorResponse
// @Router       /users/{id}/audit [get]
func (h *UserHandler) AuditTrail(c echo.Context) error {
	id := c.Param("id")

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	entries, err := h.auditService.Trail(c.Request().Context(), id, limit)
	if err != nil {
		return err
	}

	data := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		data = append(data, auditEntryResponse{
			Action:    string(e.Action),
			ActorID:   e.ActorID,
			Detail:    e.Detail,
			Timestamp: e.Timestamp,
		})
	}

	return c.JSON(http.StatusOK, auditTrailResponse{UserID: id, Data: data})
}

func parseRolesParam(raw string) ([]domain.Role, error) {
	if raw == "" {
		return nil, nil
	}
	var roles []domain.Role
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		role, ok := domain.ParseRole(part)
		if !ok {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "unknown role: "+part)
		}
		roles = append(roles, role)
	}
	return roles, nil
}
