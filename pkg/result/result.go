// Package result provides a success/failure union over a single value,
// in the spirit of (T, error) but as a first-class immutable value.
package result

import (
	"errors"
	"fmt"
)

var errNil = errors.New("result: failure with nil error")

// Result holds exactly one of a success value or a failure error.
type Result[T any] struct {
	value T
	err   error
}

// Ok builds a successful result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err builds a failed result. A nil err is replaced with a sentinel so a
// failure can never be mistaken for a success.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errNil
	}
	return Result[T]{err: err}
}

// From lifts a conventional (value, error) pair.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// Catch runs fn and wraps its outcome. A panic inside fn is recovered and
// reported as a failure.
func Catch[T any](fn func() (T, error)) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			if err, ok := p.(error); ok {
				r = Err[T](err)
				return
			}
			r = Err[T](fmt.Errorf("recovered from panic: %v", p))
		}
	}()

	return From(fn())
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the failure payload, nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns the pair form of the result.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// MustGet returns the success value or panics with the failure error.
func (r Result[T]) MustGet() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// GetOr returns the success value, or fallback on failure.
func (r Result[T]) GetOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Match calls exactly one of the two callbacks. A nil callback is skipped.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	if r.err != nil {
		if onErr != nil {
			onErr(r.err)
		}
		return
	}
	if onOk != nil {
		onOk(r.value)
	}
}

// MapErr transforms the failure payload, leaving a success untouched.
// A nil return from fn keeps the original error.
func (r Result[T]) MapErr(fn func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	if mapped := fn(r.err); mapped != nil {
		return Err[T](mapped)
	}
	return r
}

// Map transforms the success payload, passing a failure through unchanged.
//
// It is a free function because Go methods cannot introduce type parameters.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(fn(r.value))
}

// FlatMap chains a fallible transformation, flattening the nested result.
// A failure passes through unchanged.
func FlatMap[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return fn(r.value)
}
