package rpc

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Procedure binds a name to an input validator, a middleware chain and a
// handler. Procedures are registered once at startup and never change.
type Procedure struct {
	Name  string
	chain []Middleware
	run   func(ctx context.Context, rc Context, raw json.RawMessage, validate *validator.Validate) (any, *Error)
}

// NewProcedure constructs a typed procedure. The raw input is decoded into I
// and validated against its struct tags before the handler runs; a decode or
// validation failure returns BAD_INPUT and never invokes the handler.
func NewProcedure[I any, O any](name string, chain []Middleware, handler func(ctx context.Context, rc Context, input I) (O, error)) Procedure {
	return Procedure{
		Name:  name,
		chain: chain,
		run: func(ctx context.Context, rc Context, raw json.RawMessage, validate *validator.Validate) (any, *Error) {
			var input I
			if len(raw) > 0 {
				if err := json.Unmarshal(raw, &input); err != nil {
					return nil, BadInput("malformed input: "+err.Error(), nil)
				}
			}
			if fields := validateInput(validate, &input); len(fields) > 0 {
				return nil, BadInput("input validation failed", fields)
			}
			out, err := handler(ctx, rc, input)
			if err != nil {
				return nil, Wrap(err)
			}
			return out, nil
		},
	}
}

func validateInput(validate *validator.Validate, input any) []FieldError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: constraintMessage(fe),
		})
	}
	return fields
}

// fieldPath strips the input struct name from the validator namespace.
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "email":
		return "must be a valid email address"
	default:
		return "failed constraint " + fe.Tag()
	}
}
