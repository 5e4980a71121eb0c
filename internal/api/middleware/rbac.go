package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// RBAC gates a route group on the caller's stored role. The role is
// resolved from the database on every request rather than read from the
// token, so a role change takes effect immediately. The resolved role is
// injected into context as "role" for downstream handlers.
//
// This is the fast path only: the admin service re-resolves the caller's
// role before every cross-user mutation.
func RBAC(resolver ports.RoleResolver, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get("user_id").(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			role, err := resolver.ResolveRole(c.Request().Context(), userID)
			if err != nil {
				return err
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}

			c.Set("role", role)
			return next(c)
		}
	}
}
