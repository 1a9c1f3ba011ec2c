package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/auth"
	"github.com/sitedesk/sitedesk/internal/rpc"
	"github.com/sitedesk/sitedesk/internal/shared"
)

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := auth.NewService(&stubRepo{})

	_, err := svc.Authenticate(context.Background(), "nobody@construction.com", "password123")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestResolveIdentityKnownUser(t *testing.T) {
	svc := auth.NewService(&stubRepo{user: activeUser(t)})

	identity := svc.ResolveIdentity(context.Background(), "u-1")
	require.NotNil(t, identity)
	require.Equal(t, "u-1", identity.ID)
	require.Equal(t, rpc.RoleAdmin, identity.Role)
}

func TestResolveIdentityUnknownUser(t *testing.T) {
	svc := auth.NewService(&stubRepo{user: activeUser(t)})

	require.Nil(t, svc.ResolveIdentity(context.Background(), "u-ghost"))
	require.Nil(t, svc.ResolveIdentity(context.Background(), ""))
}

func TestResolveIdentityInactiveUser(t *testing.T) {
	user := activeUser(t)
	user.IsActive = false
	svc := auth.NewService(&stubRepo{user: user})

	require.Nil(t, svc.ResolveIdentity(context.Background(), "u-1"))
}
