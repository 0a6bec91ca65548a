package errors_test

import (
	"fmt"
	"testing"

	"codeberg.org/mutker/faultctl/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	errFactory := errors.New()

	err := errFactory.New(errors.ErrInternal)
	require.Error(t, err)
	assert.Equal(t, errors.ErrInternal, err.Code(), "Expected internal_error code")
	assert.Equal(t, "Internal error occurred", err.Error(), "Expected mapped message")
}

func TestNewUnknownCode(t *testing.T) {
	errFactory := errors.New()

	err := errFactory.New(errors.ErrorCode("no_such_code"))
	assert.Equal(t, "no_such_code", err.Error(), "Expected fallback to the code itself")
}

func TestWrap(t *testing.T) {
	errFactory := errors.New()

	cause := fmt.Errorf("disk full")
	err := errFactory.Wrap(errors.ErrWriteJournal, cause)
	require.Error(t, err)
	assert.Equal(t, errors.ErrWriteJournal, err.Code(), "Expected write_journal_failed code")
	assert.Contains(t, err.Error(), "disk full", "Expected cause in message")
	assert.Equal(t, cause, errors.Unwrap(err), "Expected Unwrap to return the cause")
	assert.True(t, errors.Is(err, cause), "Expected Is to match the cause")
}

func TestWithMessage(t *testing.T) {
	errFactory := errors.New()

	err := errFactory.WithMessage(errors.ErrInvalidConfig, "interval out of range")
	assert.Equal(t, "interval out of range", err.Error(), "Expected custom message")
	assert.Equal(t, errors.ErrInvalidConfig, err.Code(), "Expected invalid_configuration code")
}

func TestWithData(t *testing.T) {
	errFactory := errors.New()

	data := struct {
		Path string
	}{Path: "/var/lib/faultctl"}

	err := errFactory.WithData(errors.ErrInitJournal, data)
	assert.Equal(t, data, err.GetData(), "Expected attached data")
	assert.Contains(t, err.Error(), "/var/lib/faultctl", "Expected data in message")
}

func TestAs(t *testing.T) {
	errFactory := errors.New()

	wrapped := fmt.Errorf("outer: %w", errFactory.New(errors.ErrTimeout))

	var appErr errors.Error
	require.True(t, errors.As(wrapped, &appErr), "Expected As to find the domain error")
	assert.Equal(t, errors.ErrTimeout, appErr.Code(), "Expected operation_timeout code")
}

func TestIsMatchesByCode(t *testing.T) {
	errFactory := errors.New()

	err := errFactory.WithMessage(errors.ErrAlreadyRunning, "pid 1234 is alive")
	assert.True(t, errors.Is(err, errFactory.New(errors.ErrAlreadyRunning)), "Expected equal codes to match")
	assert.False(t, errors.Is(err, errFactory.New(errors.ErrTimeout)), "Expected different codes not to match")
}

func TestHasCode(t *testing.T) {
	errFactory := errors.New()

	inner := errFactory.New(errors.ErrInvalidLogLevel)
	outer := errFactory.Wrap(errors.ErrInvalidConfig, fmt.Errorf("validate: %w", inner))

	assert.True(t, errors.HasCode(outer, errors.ErrInvalidConfig), "Expected the outer code")
	assert.True(t, errors.HasCode(outer, errors.ErrInvalidLogLevel), "Expected the inner code through the chain")
	assert.False(t, errors.HasCode(outer, errors.ErrTimeout), "Expected absent codes not to match")
	assert.False(t, errors.HasCode(fmt.Errorf("plain"), errors.ErrInternal), "Expected no code in a plain chain")
}
