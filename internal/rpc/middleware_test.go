package rpc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequireAuthenticated(t *testing.T) {
	mw := RequireAuthenticated()

	_, denied := mw(Context{})
	require.NotNil(t, denied)
	require.Equal(t, CodeUnauthorized, denied.Code)

	next, denied := mw(Context{Identity: adminIdentity()})
	require.Nil(t, denied)
	require.NotNil(t, next.Identity)
}

func TestRequireRoleFailsClosedWithoutIdentity(t *testing.T) {
	mw := RequireRole(RoleAdmin)

	_, denied := mw(Context{})
	require.NotNil(t, denied)
	require.Equal(t, CodeUnauthorized, denied.Code)
}

func TestRequireRoleDeniesWrongRole(t *testing.T) {
	mw := RequireRole(RoleAdmin)

	_, denied := mw(Context{Identity: &Identity{ID: "u1", Role: RoleEmployee}})
	require.NotNil(t, denied)
	require.Equal(t, CodeForbidden, denied.Code)
}

func TestRequireRoleAllowsMatch(t *testing.T) {
	mw := RequireRole(RoleAdmin)

	next, denied := mw(Context{Identity: adminIdentity()})
	require.Nil(t, denied)
	require.Equal(t, RoleAdmin, next.Identity.Role)
}

func TestAdminOnlyChainOrder(t *testing.T) {
	chain := AdminOnly()
	require.Len(t, chain, 2)

	// Missing identity is always UNAUTHORIZED, never FORBIDDEN.
	rc := Context{}
	for _, mw := range chain {
		next, denied := mw(rc)
		if denied != nil {
			require.Equal(t, CodeUnauthorized, denied.Code)
			return
		}
		rc = next
	}
	t.Fatal("expected a denial")
}
