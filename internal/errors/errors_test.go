package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("wraps and preserves the chain", func(t *testing.T) {
		wrapped := Wrap(ErrInvalidInput, "bad tier")
		assert.True(t, Is(wrapped, ErrInvalidInput))
		assert.Equal(t, "bad tier: invalid input", wrapped.Error())
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "anything"))
	})

	t.Run("double wrap keeps the sentinel reachable", func(t *testing.T) {
		inner := Wrap(ErrNotFound, "document")
		outer := Wrap(inner, "process")
		assert.True(t, Is(outer, ErrNotFound))
	})
}

func TestNew(t *testing.T) {
	err := New("boom")
	assert.EqualError(t, err, "boom")
	assert.False(t, Is(err, ErrNotFound))
}
