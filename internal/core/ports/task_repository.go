package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// TaskRepository defines persistence for tasks. Every operation that
// targets an existing row is scoped to ownerID in the query itself, not
// by post-filtering: a row owned by someone else is reported as
// domain.ErrTaskNotFound, indistinguishable from an absent row.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, taskID, ownerID string) (*domain.Task, error)
	// ListByOwner returns the owner's tasks newest-created-first.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)
	// Update persists the full row, scoped to task.UserID as owner.
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, taskID, ownerID string) error
}
