package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	t.Run("set generates a 32 char id", func(t *testing.T) {
		ctx := SetTraceID(context.Background())
		id := GetTraceID(ctx)
		assert.Len(t, id, 32)
		assert.NotContains(t, id, "-")
	})

	t.Run("ids differ per request", func(t *testing.T) {
		a := GetTraceID(SetTraceID(context.Background()))
		b := GetTraceID(SetTraceID(context.Background()))
		assert.NotEqual(t, a, b)
	})

	t.Run("explicit id", func(t *testing.T) {
		ctx := WithTraceID(context.Background(), "abc123")
		assert.Equal(t, "abc123", GetTraceID(ctx))
	})

	t.Run("missing id is empty", func(t *testing.T) {
		assert.Empty(t, GetTraceID(context.Background()))
	})
}

func TestEmailContext(t *testing.T) {
	ctx := WithEmail(context.Background(), "s@example.com")
	email, ok := EmailFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "s@example.com", email)

	_, ok = EmailFromContext(context.Background())
	assert.False(t, ok)

	_, ok = EmailFromContext(WithEmail(context.Background(), ""))
	assert.False(t, ok)
}
