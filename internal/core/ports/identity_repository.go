package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// IdentityRepository defines persistence for authentication identities.
type IdentityRepository interface {
	// CreateWithProfile inserts the identity, its mirrored profile, and the
	// default role assignment in a single transaction, so a profile can
	// never exist without its identity or vice versa.
	CreateWithProfile(ctx context.Context, identity *domain.Identity, profile *domain.Profile, role *domain.RoleAssignment) error
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	FindByID(ctx context.Context, id string) (*domain.Identity, error)
}
