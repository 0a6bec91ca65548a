package condition

import (
	"codeberg.org/mutker/faultctl/internal/errors"
)

const (
	// Classification Errors
	ErrUnknownCondition = errors.ErrorCode("condition_unknown_name")
)

// Error is the carrier that transports a Condition out of a failing
// operation. The condition rides inside by value, unchanged, until a
// caller extracts it with FromError.
type Error struct {
	cond Condition
}

// NewError wraps a Condition in a transportable error carrier.
func NewError(cond Condition) *Error {
	return &Error{cond: cond}
}

func (e *Error) Error() string {
	return e.cond.Message()
}

// Condition returns the classified condition the carrier transports.
func (e *Error) Condition() Condition {
	return e.cond
}

// Is matches two carriers transporting the same condition, so that
// errors.Is treats equal conditions as the same error.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)

	return ok && other.cond == e.cond
}

// FromError extracts a Condition from anywhere in err's chain. It is
// the catch-site pattern match: ok is false when the chain carries no
// classified condition.
func FromError(err error) (Condition, bool) {
	var carrier *Error
	if !errors.As(err, &carrier) {
		return Condition{}, false
	}

	return carrier.cond, true
}
