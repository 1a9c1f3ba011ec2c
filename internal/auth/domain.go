package auth

import (
	"time"

	"github.com/sitedesk/sitedesk/internal/rpc"
)

// User represents an authenticated user account.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         rpc.Role
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
