package httprpc

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/rpc"
	"github.com/sitedesk/sitedesk/internal/shared"
)

type stubResolver struct {
	identities map[string]*rpc.Identity
}

func (s *stubResolver) ResolveIdentity(ctx context.Context, userID string) *rpc.Identity {
	return s.identities[userID]
}

func newTestServer(t *testing.T, userID string, procs ...rpc.Procedure) *httptest.Server {
	t.Helper()

	router := rpc.NewRouter(slog.Default(), nil)
	router.Register(procs...)

	resolver := &stubResolver{identities: map[string]*rpc.Identity{
		"u-admin": {ID: "u-admin", Name: "Admin", Role: rpc.RoleAdmin},
	}}
	handler := NewHandler(slog.Default(), router, resolver)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	manager := shared.NewSessionManager(client, "test_session", "secret", time.Hour, false)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			sess, err := manager.Load(req.Context(), req)
			require.NoError(t, err)
			if userID != "" {
				sess.SetUser(userID)
			}
			ctx := shared.ContextWithSession(req.Context(), sess)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Route("/rpc", handler.MountRoutes)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, procedure, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/rpc/"+procedure, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func greetProcedure() rpc.Procedure {
	return rpc.NewProcedure("projects.greet", rpc.Protected(),
		func(ctx context.Context, rc rpc.Context, _ struct{}) (map[string]string, error) {
			return map[string]string{"caller": rc.Identity.ID}, nil
		})
}

func TestCallWithSessionResolvesIdentity(t *testing.T) {
	srv := newTestServer(t, "u-admin", greetProcedure())

	status, body := call(t, srv, "projects.greet", `{}`)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["ok"])
	value := body["value"].(map[string]any)
	require.Equal(t, "u-admin", value["caller"])
}

func TestCallWithoutUserIsUnauthorized(t *testing.T) {
	srv := newTestServer(t, "", greetProcedure())

	status, body := call(t, srv, "projects.greet", `{}`)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, false, body["ok"])
	require.Equal(t, string(rpc.CodeUnauthorized), body["errorCode"])
}

func TestCallUnknownSessionUserIsUnauthorized(t *testing.T) {
	// A session naming a user the resolver does not know behaves like no
	// session at all.
	srv := newTestServer(t, "u-ghost", greetProcedure())

	status, body := call(t, srv, "projects.greet", `{}`)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, string(rpc.CodeUnauthorized), body["errorCode"])
}

func TestCallUnknownProcedure(t *testing.T) {
	srv := newTestServer(t, "u-admin", greetProcedure())

	status, body := call(t, srv, "projects.missing", `{}`)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, string(rpc.CodeNotFound), body["errorCode"])
}

func TestCallBadInputReturnsFields(t *testing.T) {
	type input struct {
		Name string `json:"name" validate:"required"`
	}
	proc := rpc.NewProcedure("projects.rename", rpc.Protected(),
		func(ctx context.Context, rc rpc.Context, in input) (string, error) {
			return in.Name, nil
		})
	srv := newTestServer(t, "u-admin", proc)

	status, body := call(t, srv, "projects.rename", `{}`)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, string(rpc.CodeBadInput), body["errorCode"])
	fields := body["fields"].([]any)
	require.Len(t, fields, 1)
	field := fields[0].(map[string]any)
	require.Equal(t, "Name", field["field"])
}
