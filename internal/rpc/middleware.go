package rpc

// Middleware inspects the call context and either forwards it, optionally
// narrowed, or denies the call. The first denial short-circuits the chain.
type Middleware func(Context) (Context, *Error)

// RequireAuthenticated denies calls without a resolved identity. The
// forwarded context is guaranteed to carry a non-nil identity.
func RequireAuthenticated() Middleware {
	return func(c Context) (Context, *Error) {
		if c.Identity == nil {
			return c, Unauthorized("authentication required")
		}
		return c, nil
	}
}

// RequireRole denies calls whose identity does not hold the given role.
// A missing identity fails closed with UNAUTHORIZED rather than FORBIDDEN,
// so ordering after RequireAuthenticated is safe but not mandatory.
func RequireRole(role Role) Middleware {
	return func(c Context) (Context, *Error) {
		if c.Identity == nil {
			return c, Unauthorized("authentication required")
		}
		if c.Identity.Role != role {
			return c, Forbidden("requires role " + string(role))
		}
		return c, nil
	}
}

// Protected is the chain for procedures that require a signed-in caller.
func Protected() []Middleware {
	return []Middleware{RequireAuthenticated()}
}

// AdminOnly is the chain for procedures restricted to administrators.
func AdminOnly() []Middleware {
	return []Middleware{RequireAuthenticated(), RequireRole(RoleAdmin)}
}
