package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	cause := errors.New("connection refused")

	t.Run("matches outer code", func(t *testing.T) {
		err := Wrap(cause, CodeUnavailable, "catalog unavailable")
		assert.True(t, HasCode(err, CodeUnavailable))
		assert.False(t, HasCode(err, CodeValidation))
	})

	t.Run("matches through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("fetch: %w", New(CodeValidation, "region is required"))
		assert.True(t, HasCode(err, CodeValidation))
	})

	t.Run("matches nested coded errors", func(t *testing.T) {
		inner := New(CodeNotFound, "profile not found")
		err := Wrap(inner, CodeUnavailable, "profile store")
		assert.True(t, HasCode(err, CodeNotFound))
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		assert.False(t, HasCode(cause, CodeInternal))
		assert.Equal(t, CodeInternal, CodeOf(cause))
	})
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("timeout")
	err := Wrap(cause, CodeUnavailable, "baseline catalog")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "baseline catalog: timeout", err.Error())
	assert.Equal(t, CodeUnavailable, CodeOf(err))
}
