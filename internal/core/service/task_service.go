package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/api/metrics"
	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// TaskService implements owner-scoped task CRUD. Ownership is enforced
// by the repository queries themselves; this layer never sees another
// user's rows, only domain.ErrTaskNotFound.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// Create validates the input and persists a new task owned by callerID.
// Validation failures block the persistence call entirely.
func (s *TaskService) Create(ctx context.Context, callerID string, in ports.CreateTaskInput) (*domain.Task, error) {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.NewString(),
		UserID:      callerID,
		Title:       in.Title,
		Description: in.Description,
		Status:      domain.TaskStatus(in.Status),
		Priority:    domain.TaskPriority(in.Priority),
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, task); err != nil {
		s.logger.Error().Err(err).Str("user_id", callerID).Msg("failed to create task")
		return nil, err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority)).Inc()
	s.logger.Info().Str("task_id", task.ID).Str("user_id", callerID).Msg("task created")
	return task, nil
}

// ListOwn returns the caller's tasks newest-created-first.
func (s *TaskService) ListOwn(ctx context.Context, callerID string) ([]domain.Task, error) {
	return s.repo.ListByOwner(ctx, callerID)
}

// Update applies a partial update to a task owned by callerID. Fields
// left nil in the input keep their current values. The full row is
// validated before the write, so a partial update can never persist an
// invalid task.
func (s *TaskService) Update(ctx context.Context, callerID, taskID string, in ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			metrics.PolicyDenialsTotal.WithLabelValues("task", "not_owner").Inc()
		}
		return nil, err
	}

	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil {
		task.Status = domain.TaskStatus(*in.Status)
	}
	if in.Priority != nil {
		task.Priority = domain.TaskPriority(*in.Priority)
	}
	if in.ClearDueDate {
		task.DueDate = nil
	} else if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	task.UpdatedAt = time.Now().UTC()

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", task.ID).Str("user_id", callerID).Msg("task updated")
	return task, nil
}

// Delete removes a task owned by callerID.
func (s *TaskService) Delete(ctx context.Context, callerID, taskID string) error {
	if err := s.repo.Delete(ctx, taskID, callerID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			metrics.PolicyDenialsTotal.WithLabelValues("task", "not_owner").Inc()
		}
		return err
	}
	s.logger.Info().Str("task_id", taskID).Str("user_id", callerID).Msg("task deleted")
	return nil
}
