package projects

import "time"

// Status enumerates the project lifecycle states.
type Status string

const (
	// StatusPlanning is the default state for new projects.
	StatusPlanning Status = "PLANNING"
	// StatusActive marks a project under construction.
	StatusActive Status = "ACTIVE"
	// StatusOnHold marks a paused project.
	StatusOnHold Status = "ON_HOLD"
	// StatusCompleted marks a finished project.
	StatusCompleted Status = "COMPLETED"
	// StatusCancelled marks an abandoned project.
	StatusCancelled Status = "CANCELLED"
)

// Project models a construction project record.
type Project struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Status          Status     `json:"status"`
	Budget          *float64   `json:"budget"`
	ActualCost      *float64   `json:"actualCost"`
	PercentComplete *float64   `json:"percentComplete"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	ClientID        string     `json:"clientId"`
	ManagerID       string     `json:"managerId"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// ClientRef is the client projection joined onto project reads.
type ClientRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// UserRef is the user projection joined onto project reads.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// WithRefs is a project joined with its client and manager.
type WithRefs struct {
	Project
	Client  ClientRef `json:"client"`
	Manager UserRef   `json:"manager"`
}

// Counts carries derived totals of related records.
type Counts struct {
	Tasks    int `json:"tasks"`
	Issues   int `json:"issues"`
	Invoices int `json:"invoices"`
}

// Summary is the list projection: refs plus relation counts.
type Summary struct {
	WithRefs
	Counts Counts `json:"counts"`
}

// TaskRow is the task projection embedded in a project detail.
type TaskRow struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Status   string     `json:"status"`
	Priority string     `json:"priority"`
	DueDate  *time.Time `json:"dueDate"`
	Assignee *UserRef   `json:"assignee"`
}

// IssueRow is the issue projection embedded in a project detail.
type IssueRow struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	Severity  string     `json:"severity"`
	DueDate   *time.Time `json:"dueDate"`
	Assignee  *UserRef   `json:"assignee"`
	CreatedBy *UserRef   `json:"createdBy"`
}

// Expense is a project expense line.
type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	IncurredOn  time.Time `json:"incurredOn"`
}

// InvoiceRow is the invoice projection embedded in a project detail.
type InvoiceRow struct {
	ID       string    `json:"id"`
	Number   string    `json:"number"`
	Amount   float64   `json:"amount"`
	Status   string    `json:"status"`
	IssuedOn time.Time `json:"issuedOn"`
	Client   ClientRef `json:"client"`
}

// Detail is the full relation graph returned by getById.
type Detail struct {
	WithRefs
	Tasks    []TaskRow    `json:"tasks"`
	Issues   []IssueRow   `json:"issues"`
	Expenses []Expense    `json:"expenses"`
	Invoices []InvoiceRow `json:"invoices"`
}

// CreateInput carries the fields accepted on create. ManagerID is accepted
// for wire compatibility but always overwritten with the caller's id.
type CreateInput struct {
	Name        string     `json:"name" validate:"required,min=1"`
	Description string     `json:"description"`
	Status      Status     `json:"status" validate:"omitempty,oneof=PLANNING ACTIVE ON_HOLD COMPLETED CANCELLED"`
	Budget      *float64   `json:"budget" validate:"omitempty,gte=0"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	ClientID    string     `json:"clientId" validate:"required"`
	ManagerID   string     `json:"managerId"`
}

// UpdateInput carries a partial update; nil fields are left unchanged.
// Unlike create, ManagerID is honored here when supplied.
type UpdateInput struct {
	ID              string     `json:"id" validate:"required"`
	Name            *string    `json:"name" validate:"omitempty,min=1"`
	Description     *string    `json:"description"`
	Status          *Status    `json:"status" validate:"omitempty,oneof=PLANNING ACTIVE ON_HOLD COMPLETED CANCELLED"`
	Budget          *float64   `json:"budget" validate:"omitempty,gte=0"`
	ActualCost      *float64   `json:"actualCost" validate:"omitempty,gte=0"`
	PercentComplete *float64   `json:"percentComplete" validate:"omitempty,gte=0,lte=100"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	ClientID        *string    `json:"clientId"`
	ManagerID       *string    `json:"managerId"`
}
