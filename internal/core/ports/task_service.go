package ports

import (
	"context"
	"time"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a task. The owner is
// always the authenticated caller; it is never taken from the payload.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
}

// UpdateTaskInput carries a partial update: nil fields keep their
// current values. ClearDueDate removes the due date; it takes
// precedence over DueDate.
type UpdateTaskInput struct {
	Title        *string
	Description  *string
	Status       *string
	Priority     *string
	DueDate      *time.Time
	ClearDueDate bool
}

// TaskService defines the owner-scoped task CRUD surface.
type TaskService interface {
	Create(ctx context.Context, callerID string, in CreateTaskInput) (*domain.Task, error)
	// ListOwn returns the caller's tasks ordered newest-created-first.
	ListOwn(ctx context.Context, callerID string) ([]domain.Task, error)
	Update(ctx context.Context, callerID, taskID string, in UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, callerID, taskID string) error
}
