package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// ProfileRepository defines persistence for user profiles. Profiles are
// never created or deleted through this interface: creation happens as a
// side effect of signup and deletion cascades from identity removal.
type ProfileRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	// List returns every profile. Reachable only through the admin surface.
	List(ctx context.Context) ([]domain.Profile, error)
}
