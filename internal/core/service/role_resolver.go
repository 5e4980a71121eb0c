package service

import (
	"context"
	"errors"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// RoleResolver resolves a user's effective role with a fixed default.
//
// It reads the role repository directly rather than going through any
// caller-scoped accessor, so it is safe to call from inside other policy
// checks without recursing into them. It is side-effect-free.
type RoleResolver struct {
	roles ports.RoleRepository
}

func NewRoleResolver(roles ports.RoleRepository) *RoleResolver {
	return &RoleResolver{roles: roles}
}

// ResolveRole returns "admin" only when an explicit assignment row says
// so. A missing row is not an error: the user is simply default-role.
func (r *RoleResolver) ResolveRole(ctx context.Context, userID string) (string, error) {
	assignment, err := r.roles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return domain.RoleUser, nil
		}
		return "", err
	}
	if assignment.Role == domain.RoleAdmin {
		return domain.RoleAdmin, nil
	}
	return domain.RoleUser, nil
}
