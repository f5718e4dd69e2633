// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"context"
	"errors"
	"syscall"
)

// A Category is the category of a particular transport error, as
// reported by function Categorize().
//
// The category Not means the error is an ordinary failure. Canceled
// means the caller abandoned the request, which is not a failure at all.
// The remaining categories indicate the error is transient, in other
// words that sending the same request again has some prospect of
// success.
type Category int

const (
	// Not indicates a nil error or any error not covered by another
	// category.
	Not Category = iota
	// Canceled indicates the request was cancelled by its caller
	// before it completed.
	//
	// Function Categorize() will return Canceled if the error or any of
	// its wrapped causes is context.Canceled.
	Canceled
	// Timeout indicates a client-side timeout. The server may be going
	// through a temporary period of slowness.
	//
	// Function Categorize() will return Timeout if the error is not
	// Canceled, and the error or any of its wrapped causes has a
	// Timeout() function that reports true.
	Timeout
	// ConnRefused indicates the remote host refused the connection, and
	// corresponds to the POSIX error code ECONNREFUSED.
	//
	// Function Categorize() will return ConnRefused if the error is not
	// a Timeout, and the error or any of its wrapped causes is equal to
	// syscall.ECONNREFUSED.
	ConnRefused
	// ConnReset indicates the remote host returned an RST packet on a
	// previously active TCP connection, and corresponds to the POSIX
	// error code ECONNRESET.
	//
	// Function Categorize() will return ConnReset if the error is not a
	// Timeout, and the error or any of its wrapped causes is equal to
	// syscall.ECONNRESET.
	ConnReset
)

var categoryNames = []string{
	"Not",
	"Canceled",
	"Timeout",
	"ConnRefused",
	"ConnReset",
}

// String returns the name of the category.
func (cat Category) String() string {
	if cat < 0 || int(cat) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[cat]
}

// Transient reports whether cat is one of the transient categories.
func (cat Category) Transient() bool {
	return cat == Timeout || cat == ConnRefused || cat == ConnReset
}

// Categorize returns the category of the given error. A nil error
// produces Not.
//
// In assessing the category, Categorize looks at wrapped cause errors
// contained within err, not just err itself. However, Categorize never
// checks if an error has a Temporary() function that returns true, as
// the semantics of Temporary() aren't entirely clear.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	if errors.Is(err, context.Canceled) {
		return Canceled
	}

	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == syscall.ECONNRESET {
			return ConnReset
		} else if errno == syscall.ECONNREFUSED {
			return ConnRefused
		}
	}

	return Not
}

type hasTimeout interface {
	Timeout() bool
}
