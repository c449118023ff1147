package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ContextKey is the type for context keys
type ContextKey string

const (
	// OperationIDKey is the context key for the operation ID
	OperationIDKey ContextKey = "op_id"
	// CommandKey is the context key for the command name
	CommandKey ContextKey = "command"
)

// NewOperationID generates a new operation ID
func NewOperationID() string {
	return uuid.New().String()
}

// WithOperationID adds an operation ID to the context
func WithOperationID(ctx context.Context, opID string) context.Context {
	return context.WithValue(ctx, OperationIDKey, opID)
}

// WithCommand adds a command name to the context
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, CommandKey, command)
}

// GetOperationID retrieves the operation ID from the context
func GetOperationID(ctx context.Context) string {
	if opID, ok := ctx.Value(OperationIDKey).(string); ok {
		return opID
	}
	return ""
}

// GetCommand retrieves the command name from the context
func GetCommand(ctx context.Context) string {
	if command, ok := ctx.Value(CommandKey).(string); ok {
		return command
	}
	return ""
}

// NewOperationContext starts a new operation for command
func NewOperationContext(ctx context.Context, command string) context.Context {
	return WithCommand(WithOperationID(ctx, NewOperationID()), command)
}

// LoggerFromContext returns baseLogger annotated with the context's tracing fields
func LoggerFromContext(ctx context.Context, baseLogger zerolog.Logger) zerolog.Logger {
	logCtx := baseLogger.With()
	if opID := GetOperationID(ctx); opID != "" {
		logCtx = logCtx.Str(string(OperationIDKey), opID)
	}
	if command := GetCommand(ctx); command != "" {
		logCtx = logCtx.Str(string(CommandKey), command)
	}
	return logCtx.Logger()
}
