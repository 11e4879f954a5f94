package services

import "errors"

// ErrOperationFailed covers every failed backend round-trip: transport
// errors, non-2xx statuses and malformed bodies alike.
var ErrOperationFailed = errors.New("operation failed")

// Result carries either a value or the error that replaced it.
type Result[T any] struct {
	Value T
	Err   error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// Collect turns a (value, error) pair into a Result.
func Collect[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

func (r Result[T]) Failed() bool {
	return r.Err != nil
}

// OrElse returns the value, or def when the result failed.
func (r Result[T]) OrElse(def T) T {
	if r.Err != nil {
		return def
	}
	return r.Value
}
