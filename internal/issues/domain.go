package issues

import "time"

// Status enumerates issue states.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusClosed     Status = "CLOSED"
)

// Severity enumerates issue severities.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Issue models a problem reported against a project.
type Issue struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Severity    Severity   `json:"severity"`
	DueDate     *time.Time `json:"dueDate"`
	Location    string     `json:"location"`
	ProjectID   string     `json:"projectId"`
	AssigneeID  *string    `json:"assigneeId"`
	CreatedByID string     `json:"createdById"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ProjectRef is the project projection joined onto issue reads.
type ProjectRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// UserRef is the user projection joined onto issue reads.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// WithRefs is an issue joined with its project, assignee and creator.
type WithRefs struct {
	Issue
	Project   ProjectRef `json:"project"`
	Assignee  *UserRef   `json:"assignee"`
	CreatedBy UserRef    `json:"createdBy"`
}

// CreateInput carries the fields accepted on create. The creator is always
// the calling identity, never client input.
type CreateInput struct {
	Title       string     `json:"title" validate:"required,min=1"`
	Description string     `json:"description"`
	Status      Status     `json:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
	Severity    Severity   `json:"severity" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	DueDate     *time.Time `json:"dueDate"`
	Location    string     `json:"location"`
	ProjectID   string     `json:"projectId" validate:"required"`
	AssigneeID  *string    `json:"assigneeId"`
}

// UpdateInput carries a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID          string     `json:"id" validate:"required"`
	Title       *string    `json:"title" validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	Status      *Status    `json:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
	Severity    *Severity  `json:"severity" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	DueDate     *time.Time `json:"dueDate"`
	Location    *string    `json:"location"`
	AssigneeID  *string    `json:"assigneeId"`
}
