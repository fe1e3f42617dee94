package main

import (
	"context"
)

type ContextKey string

const (
	CommandIDPrefix      string     = "c"
	ContextCommandID     ContextKey = "command.id"
	ContextCommandNumber ContextKey = "command.number"
)

// GetValueFromContext returns the value of a given key in the context
// if this key is not available, it returns an empty string.
func GetValueFromContext(ctx context.Context, contextKey ContextKey) string {
	if val := ctx.Value(contextKey); val != nil {
		return val.(string)
	}
	return ""
}

// GetCommandNumberFromContext returns the command number set in
// the context. if not previously set then it returns 0.
func GetCommandNumberFromContext(ctx context.Context) uint64 {
	if val := ctx.Value(ContextCommandNumber); val != nil {
		return val.(uint64)
	}
	return 0
}
