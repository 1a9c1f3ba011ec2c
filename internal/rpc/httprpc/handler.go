// Package httprpc exposes the procedure router over HTTP. Each call is a
// POST to /rpc/{procedure} with a JSON body; the session cookie is the
// ambient credential.
package httprpc

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitedesk/sitedesk/internal/platform/httpx"
	"github.com/sitedesk/sitedesk/internal/rpc"
	"github.com/sitedesk/sitedesk/internal/shared"
)

const maxBodyBytes = 1 << 20

// IdentityResolver resolves a session user id into a caller identity.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, userID string) *rpc.Identity
}

// Handler dispatches inbound procedure calls.
type Handler struct {
	logger     *slog.Logger
	router     *rpc.Router
	identities IdentityResolver
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, router *rpc.Router, identities IdentityResolver) *Handler {
	return &Handler{logger: logger, router: router, identities: identities}
}

// MountRoutes registers the dispatch route.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/{procedure}", h.handleCall)
}

type envelope struct {
	OK        bool             `json:"ok"`
	Value     any              `json:"value,omitempty"`
	ErrorCode rpc.Code         `json:"errorCode,omitempty"`
	Message   string           `json:"message,omitempty"`
	Fields    []rpc.FieldError `json:"fields,omitempty"`
}

func (h *Handler) handleCall(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "procedure")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, rpc.BadInput("request body unreadable", nil))
		return
	}

	rc := rpc.Context{}
	if userID := shared.SessionUserID(r.Context()); userID != "" {
		rc.Identity = h.identities.ResolveIdentity(r.Context(), userID)
	}

	value, rpcErr := h.router.Dispatch(r.Context(), name, body, rc)
	if rpcErr != nil {
		h.writeError(w, rpcErr)
		return
	}
	httpx.JSON(w, http.StatusOK, envelope{OK: true, Value: value})
}

func (h *Handler) writeError(w http.ResponseWriter, rpcErr *rpc.Error) {
	httpx.JSON(w, statusFor(rpcErr.Code), envelope{
		OK:        false,
		ErrorCode: rpcErr.Code,
		Message:   rpcErr.Message,
		Fields:    rpcErr.Fields,
	})
}

func statusFor(code rpc.Code) int {
	switch code {
	case rpc.CodeUnauthorized:
		return http.StatusUnauthorized
	case rpc.CodeForbidden:
		return http.StatusForbidden
	case rpc.CodeNotFound:
		return http.StatusNotFound
	case rpc.CodeBadInput:
		return http.StatusBadRequest
	case rpc.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
