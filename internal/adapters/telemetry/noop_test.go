package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jsxload/internal/adapters/telemetry"
	"go.trai.ch/jsxload/internal/core/ports"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx, v := tel.Record(context.Background(), "Widget")
	got, ok := ports.VertexFromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, v, got)

	n, err := v.Stdout().Write([]byte("ignored"))
	assert.NoError(t, err)
	assert.Equal(t, 7, n)

	v.Cached()
	v.Complete(errors.New("boom"))
	assert.NoError(t, tel.Close())
}
