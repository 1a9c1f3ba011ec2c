package tasks

import "time"

// Status enumerates task states.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusBlocked    Status = "BLOCKED"
	StatusCompleted  Status = "COMPLETED"
)

// Priority enumerates task priorities.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Task models a unit of project work.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         Status     `json:"status"`
	Priority       Priority   `json:"priority"`
	Phase          string     `json:"phase"`
	EstimatedHours *float64   `json:"estimatedHours"`
	LoggedHours    *float64   `json:"loggedHours"`
	DueDate        *time.Time `json:"dueDate"`
	ProjectID      string     `json:"projectId"`
	AssigneeID     *string    `json:"assigneeId"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// ProjectRef is the project projection joined onto task reads.
type ProjectRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// UserRef is the user projection joined onto task reads.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// WithRefs is a task joined with its project and optional assignee.
type WithRefs struct {
	Task
	Project  ProjectRef `json:"project"`
	Assignee *UserRef   `json:"assignee"`
}

// CreateInput carries the fields accepted on create.
type CreateInput struct {
	Title          string     `json:"title" validate:"required,min=1"`
	Description    string     `json:"description"`
	Status         Status     `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS BLOCKED COMPLETED"`
	Priority       Priority   `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	Phase          string     `json:"phase"`
	EstimatedHours *float64   `json:"estimatedHours" validate:"omitempty,gte=0"`
	DueDate        *time.Time `json:"dueDate"`
	ProjectID      string     `json:"projectId" validate:"required"`
	AssigneeID     *string    `json:"assigneeId"`
}

// UpdateInput carries a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID             string     `json:"id" validate:"required"`
	Title          *string    `json:"title" validate:"omitempty,min=1"`
	Description    *string    `json:"description"`
	Status         *Status    `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS BLOCKED COMPLETED"`
	Priority       *Priority  `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	Phase          *string    `json:"phase"`
	EstimatedHours *float64   `json:"estimatedHours" validate:"omitempty,gte=0"`
	LoggedHours    *float64   `json:"loggedHours" validate:"omitempty,gte=0"`
	DueDate        *time.Time `json:"dueDate"`
	AssigneeID     *string    `json:"assigneeId"`
}
