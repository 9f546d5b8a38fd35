package utils

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type key int

const (
	// CtxRequestID context key for request id
	CtxRequestID key = iota
)

// WithRequestID puts id into context, a new ULID is generated if id is empty
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = NewID()
	}
	return context.WithValue(ctx, CtxRequestID, id)
}

// RequestID returns request id from context or empty string
func RequestID(ctx context.Context) string {
	res, _ := ctx.Value(CtxRequestID).(string)
	return res
}

// NewID generates new ULID string
func NewID() string {
	return ulid.Make().String()
}
