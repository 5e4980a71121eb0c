package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// TaskHandler handles the owner-scoped task CRUD routes.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List returns the caller's tasks, newest-created-first.
//
// @Summary      List own tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.ListOwn(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return respond(c, http.StatusOK, tasks)
}

// Create creates a task owned by the caller.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return err
	}

	task, err := h.service.Create(c.Request().Context(), callerID, ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     dueDate,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, task)
}

// Update applies a partial update to one of the caller's tasks. Another
// user's task id yields the same not-found as an absent id.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	}
	if req.DueDate != nil {
		// An explicit empty string clears the due date.
		if *req.DueDate == "" {
			in.ClearDueDate = true
		} else {
			dueDate, err := parseDueDate(*req.DueDate)
			if err != nil {
				return err
			}
			in.DueDate = dueDate
		}
	}

	task, err := h.service.Update(c.Request().Context(), callerID, c.Param("id"), in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, task)
}

// Delete removes one of the caller's tasks.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Task id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	callerID, _, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), callerID, c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]bool{"deleted": true})
}

// parseDueDate parses an optional RFC 3339 due date. The validator has
// already vetted the format; a parse failure here still maps to the same
// per-field error.
func parseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, &domain.ValidationError{Field: "due_date", Message: "due_date must be a valid RFC 3339 timestamp"}
	}
	utc := t.UTC()
	return &utc, nil
}
