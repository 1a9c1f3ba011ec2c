package rpc

// Role enumerates the account roles recognised by the authorization layer.
type Role string

const (
	// RoleAdmin grants access to administrative procedures.
	RoleAdmin Role = "ADMIN"
	// RoleEmployee is the default staff role.
	RoleEmployee Role = "EMPLOYEE"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Identity describes the authenticated caller. It is produced once at
// session resolution time and is immutable for the lifetime of a call.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Context is the per-call bundle handed to every procedure. Identity is nil
// until authorization middleware has run. Narrowing produces a new value;
// a Context is never mutated in place.
type Context struct {
	Identity *Identity
}

// Authenticated reports whether an identity is present.
func (c Context) Authenticated() bool {
	return c.Identity != nil
}
