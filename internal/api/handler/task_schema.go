package handler

// Request shapes for the task CRUD surface. Bounds mirror the domain
// invariants so violations are reported per field before any service
// call; the first violated field wins.

type createTaskRequest struct {
	Title       string `json:"title"        validate:"required,max=200"`
	Description string `json:"description"  validate:"max=1000"`
	Status      string `json:"status"       validate:"required,oneof=pending in_progress completed"`
	Priority    string `json:"priority"     validate:"required,oneof=low medium high"`
	DueDate     string `json:"due_date"     validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// updateTaskRequest carries a partial update: absent fields keep their
// current values.
type updateTaskRequest struct {
	Title       *string `json:"title"        validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"  validate:"omitempty,max=1000"`
	Status      *string `json:"status"       validate:"omitempty,oneof=pending in_progress completed"`
	Priority    *string `json:"priority"     validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date"     validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}
