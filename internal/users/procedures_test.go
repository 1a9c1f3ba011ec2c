package users

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/rpc"
)

func TestAccountProceduresRequireAdmin(t *testing.T) {
	router := rpc.NewRouter(slog.Default(), nil)
	router.Register(Procedures(NewService(newMockRepository(), nil))...)

	employee := rpc.Context{Identity: &rpc.Identity{ID: "u-emp", Role: rpc.RoleEmployee}}
	admin := rpc.Context{Identity: &rpc.Identity{ID: "u-adm", Role: rpc.RoleAdmin}}

	for _, name := range router.Names() {
		_, rpcErr := router.Dispatch(context.Background(), name, nil, rpc.Context{})
		require.NotNil(t, rpcErr, name)
		require.Equal(t, rpc.CodeUnauthorized, rpcErr.Code, name)

		_, rpcErr = router.Dispatch(context.Background(), name, nil, employee)
		require.NotNil(t, rpcErr, name)
		require.Equal(t, rpc.CodeForbidden, rpcErr.Code, name)
	}

	value, rpcErr := router.Dispatch(context.Background(), "users.list", nil, admin)
	require.Nil(t, rpcErr)
	require.NotNil(t, value)
}
