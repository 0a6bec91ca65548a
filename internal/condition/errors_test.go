package condition_test

import (
	"fmt"
	"testing"

	"codeberg.org/mutker/faultctl/internal/condition"
	"codeberg.org/mutker/faultctl/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarrierTransportsCondition(t *testing.T) {
	cond := condition.Make(condition.NotSupported)
	err := condition.NewError(cond)
	require.Error(t, err)

	caught, ok := condition.FromError(err)
	require.True(t, ok, "Expected the carrier to yield its condition")
	assert.Equal(t, cond, caught, "Expected the condition unchanged in flight")
	assert.Equal(t, cond.Message(), err.Error(), "Expected the carrier message to be the condition message")
}

func TestFromErrorWrappedChain(t *testing.T) {
	cond := condition.Make(condition.PermissionDenied)
	err := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", condition.NewError(cond)))

	caught, ok := condition.FromError(err)
	require.True(t, ok, "Expected extraction through a wrapped chain")
	assert.Equal(t, cond, caught)
}

func TestFromErrorAmbientChain(t *testing.T) {
	errFactory := errors.New()

	cond := condition.Make(condition.TimedOut)
	err := errFactory.Wrap(errors.ErrOperationFailed, condition.NewError(cond))

	caught, ok := condition.FromError(err)
	require.True(t, ok, "Expected extraction through an application error wrapper")
	assert.Equal(t, cond, caught)
}

func TestFromErrorNoCarrier(t *testing.T) {
	caught, ok := condition.FromError(fmt.Errorf("plain failure"))
	assert.False(t, ok, "Expected no condition in a plain chain")
	assert.True(t, caught.IsZero(), "Expected the zero condition")

	_, ok = condition.FromError(nil)
	assert.False(t, ok, "Expected no condition from nil")
}

func TestCarrierIs(t *testing.T) {
	cond := condition.Make(condition.NotSupported)
	err := fmt.Errorf("op failed: %w", condition.NewError(cond))

	assert.True(t, errors.Is(err, condition.NewError(cond)), "Expected carriers of equal conditions to match")
	assert.False(t, errors.Is(err, condition.NewError(condition.Make(condition.PermissionDenied))), "Expected different conditions not to match")
}
