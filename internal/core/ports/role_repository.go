package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// RoleRepository defines persistence for role assignments.
//
// FindByUserID is the privileged lookup path used inside authorization
// checks. It reads the role row directly, never through a caller-scoped
// accessor, so a policy check can never recurse into itself.
type RoleRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.RoleAssignment, error)
	// List returns every assignment. Reachable only through the admin surface.
	List(ctx context.Context) ([]domain.RoleAssignment, error)
	// UpdateByUserID sets the role for the given user and returns the
	// updated assignment. Returns domain.ErrUserNotFound when no
	// assignment row exists for that user.
	UpdateByUserID(ctx context.Context, userID, role string) (*domain.RoleAssignment, error)
}
