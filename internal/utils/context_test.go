package utils

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "olia")
	assert.Equal(t, "olia", RequestID(ctx))
}

func TestRequestID_Generated(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")
	id := RequestID(ctx)
	_, err := ulid.ParseStrict(id)
	require.NoError(t, err)
}

func TestRequestID_Missing(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
}
