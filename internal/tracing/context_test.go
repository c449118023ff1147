package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperationID(t *testing.T) {
	id1 := NewOperationID()
	id2 := NewOperationID()

	assert.NotEqual(t, id1, id2)
	_, err := uuid.Parse(id1)
	require.NoError(t, err)
}

func TestWithOperationID(t *testing.T) {
	ctx := WithOperationID(context.Background(), "op-123")
	assert.Equal(t, "op-123", GetOperationID(ctx))
}

func TestGetEmpty(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetOperationID(ctx))
	assert.Empty(t, GetCommand(ctx))
}

func TestNewOperationContext(t *testing.T) {
	ctx := NewOperationContext(context.Background(), "show")

	assert.NotEmpty(t, GetOperationID(ctx))
	assert.Equal(t, "show", GetCommand(ctx))
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := WithCommand(WithOperationID(context.Background(), "op-1"), "dump")
	logger := LoggerFromContext(ctx, base)
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"op_id":"op-1"`)
	assert.Contains(t, buf.String(), `"command":"dump"`)
}
