package status

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeString(t *testing.T) {
	assert.Equal(t, "OK", OK.String())
	assert.Equal(t, "BAD_ARGUMENT", BadArgument.String())
	assert.Equal(t, "NO_MEMORY", NoMemory.String())
	assert.Equal(t, "UNSUPPORTED", Unsupported.String())
	assert.Equal(t, "UNKNOWN", Code(99).String())
}

func TestCodeOf(t *testing.T) {
	t.Run("nil is OK", func(t *testing.T) {
		code, ok := CodeOf(nil)
		assert.True(t, ok)
		assert.Equal(t, OK, code)
	})

	t.Run("wrapped sentinels classify", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", ErrBadArgument))
		code, ok := CodeOf(err)
		assert.True(t, ok)
		assert.Equal(t, BadArgument, code)

		code, ok = CodeOf(fmt.Errorf("alloc: %w", ErrNoMemory))
		assert.True(t, ok)
		assert.Equal(t, NoMemory, code)

		code, ok = CodeOf(fmt.Errorf("state: %w", ErrUnsupported))
		assert.True(t, ok)
		assert.Equal(t, Unsupported, code)
	})

	t.Run("foreign errors carry no code", func(t *testing.T) {
		_, ok := CodeOf(errors.New("something else"))
		assert.False(t, ok)
	})
}
