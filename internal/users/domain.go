package users

import (
	"time"

	"github.com/sitedesk/sitedesk/internal/rpc"
)

// Account is the administrative view of a user. The password hash never
// leaves this package.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      rpc.Role  `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateInput carries the fields accepted on create.
type CreateInput struct {
	Email    string   `json:"email" validate:"required,email"`
	Name     string   `json:"name" validate:"required,min=1"`
	Role     rpc.Role `json:"role" validate:"required,oneof=ADMIN EMPLOYEE"`
	Password string   `json:"password" validate:"required,min=8"`
}

// UpdateInput carries a partial update; nil fields are left unchanged.
// A non-nil Password replaces the stored hash.
type UpdateInput struct {
	ID       string    `json:"id" validate:"required"`
	Email    *string   `json:"email" validate:"omitempty,email"`
	Name     *string   `json:"name" validate:"omitempty,min=1"`
	Role     *rpc.Role `json:"role" validate:"omitempty,oneof=ADMIN EMPLOYEE"`
	IsActive *bool     `json:"isActive"`
	Password *string   `json:"password" validate:"omitempty,min=8"`
}
