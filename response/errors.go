// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package response

import (
	"errors"
	"fmt"
)

// ErrUnknown is the cause of an Error outcome when the HTTP doer
// returned neither a response body nor an error.
var ErrUnknown = errors.New("jsonx/response: unknown error (no data and no error)")

// A TransportError wraps a non-cancelled error returned by the HTTP
// doer while sending the request or reading the response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "jsonx/response: transport error: " + e.Err.Error()
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// A DecodeError wraps the error encountered while decoding a response
// body into the target type.
type DecodeError struct {
	// Type is the name of the target type.
	Type string
	// Err is the encoding/json error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("jsonx/response: decode error (%s): %v", e.Type, e.Err)
}

// Unwrap returns the underlying encoding/json error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// A StatusError reports a response whose status code a Mapper built by
// ExpectStatus did not accept.
type StatusError struct {
	// StatusCode is the unexpected HTTP status code.
	StatusCode int
	// Body is the response body, possibly empty.
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("jsonx/response: unexpected status %d", e.StatusCode)
}

// A Cause classifies the error held by an Error outcome.
type Cause int

const (
	// CauseNone is reported for a nil error.
	CauseNone Cause = iota
	// CauseTransport is reported for a *TransportError.
	CauseTransport
	// CauseDecode is reported for a *DecodeError.
	CauseDecode
	// CauseUnknown is reported for ErrUnknown.
	CauseUnknown
	// CauseOther is reported for any other error, for example one
	// produced by a custom Mapper.
	CauseOther
)

var causeNames = []string{
	"None",
	"Transport",
	"Decode",
	"Unknown",
	"Other",
}

// String returns the name of the cause.
func (c Cause) String() string {
	if c < 0 || int(c) >= len(causeNames) {
		return "Invalid"
	}
	return causeNames[c]
}

// CauseOf classifies err. Wrapped errors are examined, so an error
// returned by a custom Mapper that wraps a *DecodeError is still
// classified as CauseDecode.
func CauseOf(err error) Cause {
	if err == nil {
		return CauseNone
	}

	var te *TransportError
	if errors.As(err, &te) {
		return CauseTransport
	}

	var de *DecodeError
	if errors.As(err, &de) {
		return CauseDecode
	}

	if errors.Is(err, ErrUnknown) {
		return CauseUnknown
	}

	return CauseOther
}
