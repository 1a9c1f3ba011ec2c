package rpc

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
)

// Observer receives dispatch outcomes for metric collection.
type Observer interface {
	ObserveDispatch(procedure, code string, elapsed time.Duration)
}

// Router maps procedure names to registered procedures and is the sole entry
// point for all calls. Registration happens at startup; Dispatch is safe for
// concurrent use afterwards.
type Router struct {
	logger   *slog.Logger
	validate *validator.Validate
	observer Observer
	procs    map[string]Procedure
}

// NewRouter constructs an empty Router. observer may be nil.
func NewRouter(logger *slog.Logger, observer Observer) *Router {
	return &Router{
		logger:   logger,
		validate: validator.New(),
		observer: observer,
		procs:    make(map[string]Procedure),
	}
}

// Register adds procedures to the router. Duplicate names are a programming
// error and panic at startup.
func (r *Router) Register(procs ...Procedure) {
	for _, p := range procs {
		if p.Name == "" {
			panic("rpc: procedure with empty name")
		}
		if _, exists := r.procs[p.Name]; exists {
			panic("rpc: duplicate procedure " + p.Name)
		}
		r.procs[p.Name] = p
	}
}

// Names returns the registered procedure names in sorted order.
func (r *Router) Names() []string {
	names := make([]string, 0, len(r.procs))
	for name := range r.procs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch looks up the named procedure, validates the raw input, runs the
// middleware chain and invokes the handler. A denied or invalid call never
// reaches the handler and performs no store writes.
func (r *Router) Dispatch(ctx context.Context, name string, raw json.RawMessage, rc Context) (any, *Error) {
	started := time.Now()
	value, rpcErr := r.dispatch(ctx, name, raw, rc)
	if r.observer != nil {
		code := "OK"
		if rpcErr != nil {
			code = string(rpcErr.Code)
		}
		r.observer.ObserveDispatch(name, code, time.Since(started))
	}
	return value, rpcErr
}

func (r *Router) dispatch(ctx context.Context, name string, raw json.RawMessage, rc Context) (any, *Error) {
	proc, ok := r.procs[name]
	if !ok {
		return nil, NotFound("unknown procedure " + name)
	}

	for _, mw := range proc.chain {
		next, denied := mw(rc)
		if denied != nil {
			return nil, denied
		}
		rc = next
	}

	value, rpcErr := proc.run(ctx, rc, raw, r.validate)
	if rpcErr != nil && rpcErr.Code == CodeInternal && r.logger != nil {
		r.logger.Error("procedure failed", slog.String("procedure", name), slog.Any("error", rpcErr.Unwrap()))
	}
	return value, rpcErr
}
