// Package result carries the outcome of an asynchronous fetch: either a
// payload or an error, never both and never neither.
package result

import "addressbook/errs"

// ErrEmptyFailure replaces a nil error handed to Failure. It carries the
// unknown fetch code so callers mapping codes treat it as an unclassified
// source failure.
var ErrEmptyFailure = errs.Errorf(errs.EUNKNOWN, "result: failure without error")

type Result[T any] struct {
	value T
	err   error
}

func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

func Failure[T any](err error) Result[T] {
	if err == nil {
		err = ErrEmptyFailure
	}
	return Result[T]{err: err}
}

// From adapts a (value, error) pair. A non-nil error wins over the value.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// OnSuccess runs fn with the payload when r is a success.
func (r Result[T]) OnSuccess(fn func(T)) {
	if r.err != nil {
		return
	}
	fn(r.value)
}

// OnFailure runs fn with the error when r is a failure.
func (r Result[T]) OnFailure(fn func(error)) {
	if r.err == nil {
		return
	}
	fn(r.err)
}
