// Package errors is the application's error layer: string-coded errors
// with a message table, constructed through a Factory and matched by
// code with errors.Is or HasCode. These codes classify how the program
// itself fails; they are distinct from the numeric system conditions
// the program exists to demonstrate.
package errors

// ErrorCode identifies one failure kind, e.g. "read_config_failed"
type ErrorCode string

// Error is a coded error. The code is fixed at construction; message
// and data refine it without changing what it is.
type Error interface {
	error
	Code() ErrorCode
	WithMessage(msg string) Error
	WithData(data any) Error
	GetData() any
	Unwrap() error
}

// Factory constructs coded errors
type Factory interface {
	New(code ErrorCode) Error
	Wrap(code ErrorCode, err error) Error
	WithMessage(code ErrorCode, msg string) Error
	WithData(code ErrorCode, data any) Error
}
