package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// AdminHandler handles the role-gated cross-user routes.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// ListProfiles returns every profile. Admin only.
//
// @Summary      List all profiles
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Router       /profiles [get]
func (h *AdminHandler) ListProfiles(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	profiles, err := h.service.ListProfiles(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}
	return respond(c, http.StatusOK, profiles)
}

// ListRoles returns every role assignment. Admin only.
//
// @Summary      List all role assignments
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Router       /user_roles [get]
func (h *AdminHandler) ListRoles(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	roles, err := h.service.ListRoleAssignments(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	if roles == nil {
		roles = []domain.RoleAssignment{}
	}
	return respond(c, http.StatusOK, roles)
}

// UpdateRole changes the role of the user identified by the path id.
// Admin only; the check runs against the caller's current role row.
//
// @Summary      Update a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Target user id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /user_roles/{id} [put]
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.UpdateRole(c.Request().Context(), callerID, c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, updated)
}
