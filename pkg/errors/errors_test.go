package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdaError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *IdaError
		expected string
	}{
		{
			name:     "without wrapped error",
			err:      New(ErrSourceMissing, "source does not exist"),
			expected: "[SOURCE_MISSING] source does not exist",
		},
		{
			name:     "with wrapped error",
			err:      Wrap(fmt.Errorf("permission denied"), ErrFilesystem, "move failed"),
			expected: "[FILESYSTEM] move failed: permission denied",
		},
		{
			name:     "formatted message",
			err:      Newf(ErrInvalidColor, "bad value %q for key %s", "notahex", "accent"),
			expected: `[INVALID_COLOR] bad value "notahex" for key accent`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestIdaError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("disk full")
	err := Wrap(inner, ErrBackupMove, "could not displace target")
	assert.Equal(t, inner, stderrors.Unwrap(err))
}

func TestIdaError_Is(t *testing.T) {
	err := Newf(ErrInvalidColor, "bad color")
	assert.True(t, stderrors.Is(err, New(ErrInvalidColor, "anything")))
	assert.False(t, stderrors.Is(err, New(ErrSourceMissing, "anything")))
}

func TestWrap_NilReturnsNil(t *testing.T) {
	require.Nil(t, Wrap(nil, ErrFilesystem, "ignored"))
	require.Nil(t, Wrapf(nil, ErrFilesystem, "ignored %d", 1))
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrToolMissing, "wallust not found")
	assert.True(t, IsErrorCode(err, ErrToolMissing))
	assert.False(t, IsErrorCode(err, ErrInvalidColor))

	// wrapped in a plain error it still matches via errors.As
	wrapped := fmt.Errorf("theme build: %w", err)
	assert.True(t, IsErrorCode(wrapped, ErrToolMissing))

	// plain errors report ErrUnknown
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
	assert.Equal(t, ErrToolMissing, GetErrorCode(wrapped))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrSymlinkCreate, "link failed").
		WithDetail("source", "/repo/config/fish").
		WithDetail("target", "/home/u/.config/fish")
	assert.Equal(t, "/repo/config/fish", err.Details["source"])
	assert.Equal(t, "/home/u/.config/fish", err.Details["target"])
}
