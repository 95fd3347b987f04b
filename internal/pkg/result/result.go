// Package result provides a generic success/failure container for validation
// pipelines. Value-object factories return (T, error) in the usual Go style;
// Result wraps those outcomes so a command handler can build every value
// object first, aggregate the failures, and decide at the boundary how to
// report them. Extracting a value from a failed Result is a programming
// error, not a recoverable condition, and panics.
package result

import "errors"

// Result holds either a successfully constructed value or the error that
// prevented its construction. The zero value is a failure with a nil error;
// always create instances through Success, Failure, or Of.
type Result[T any] struct {
	value T
	err   error
}

// Success wraps a valid value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps a construction error. The error carries the human-readable
// reason reported to the caller.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("failure result created with nil error")
	}
	return Result[T]{err: err}
}

// Of adapts an ordinary (value, error) factory return into a Result.
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(value)
}

// IsSuccess reports whether the result holds a valid value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// IsFailure reports whether the result holds an error.
func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Value returns the contained value. Calling Value on a failed result is a
// bug in the caller; it panics rather than returning a half-built value.
func (r Result[T]) Value() T {
	if r.err != nil {
		panic("result: Value called on a failed result: " + r.err.Error())
	}
	return r.value
}

// Err returns the contained error, or nil for a success.
func (r Result[T]) Err() error {
	return r.err
}

// Failer is the error-reporting side of a Result, independent of its value
// type. It lets results of different types be aggregated together.
type Failer interface {
	Err() error
}

// Join combines the failures of several results into a single error, in
// argument order, using errors.Join. Returns nil when every result succeeded.
func Join(results ...Failer) error {
	errList := make([]error, 0, len(results))
	for _, res := range results {
		if err := res.Err(); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
