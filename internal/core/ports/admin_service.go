package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// RoleResolver returns the effective role of a user. Implementations
// must be side-effect-free, must not fail when no assignment row exists
// (the user is simply default-role), and must read role rows through the
// privileged path only.
type RoleResolver interface {
	ResolveRole(ctx context.Context, userID string) (string, error)
}

// AdminService defines role-gated cross-user operations. Every method
// resolves the CALLER'S current role row before acting; the JWT role
// claim and the proposed role value are never consulted for the check,
// so a caller cannot self-promote by writing an admin row.
type AdminService interface {
	ListProfiles(ctx context.Context, callerID string) ([]domain.Profile, error)
	ListRoleAssignments(ctx context.Context, callerID string) ([]domain.RoleAssignment, error)
	UpdateRole(ctx context.Context, callerID, targetUserID, role string) (*domain.RoleAssignment, error)
}
