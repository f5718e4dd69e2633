// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package response

import "fmt"

// An Outcome is the final result of a JSON request: either a Result
// holding a decoded value, or an Error holding the cause of failure.
//
// The zero Outcome is an Error outcome whose cause is ErrUnknown.
type Outcome[T any] struct {
	value T
	err   error
	ok    bool
}

// Result returns a successful outcome holding v.
func Result[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, ok: true}
}

// Error returns a failed outcome holding err. A nil err is replaced
// with ErrUnknown so that the outcome always carries a cause.
func Error[T any](err error) Outcome[T] {
	if err == nil {
		err = ErrUnknown
	}
	return Outcome[T]{err: err}
}

// IsResult reports whether o holds a decoded value.
func (o Outcome[T]) IsResult() bool {
	return o.ok
}

// Value returns the decoded value and true if o is a Result, or the
// zero value of T and false if o is an Error.
func (o Outcome[T]) Value() (T, bool) {
	return o.value, o.ok
}

// Err returns the cause of failure, or nil if o is a Result.
func (o Outcome[T]) Err() error {
	if o.ok {
		return nil
	}
	if o.err == nil {
		return ErrUnknown
	}
	return o.err
}

// Get returns the decoded value and a nil error if o is a Result, or
// the zero value of T and the cause of failure if o is an Error.
func (o Outcome[T]) Get() (T, error) {
	return o.value, o.Err()
}

// String describes the outcome for logging and debugging.
func (o Outcome[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Result(%+v)", o.value)
	}
	return fmt.Sprintf("Error(%v)", o.Err())
}
