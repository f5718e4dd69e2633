// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
	"time"

	"github.com/gogama/jsonx/transient"
	"github.com/google/uuid"
)

// An Execution holds the state of a single Plan execution.
//
// When the jsonx client executes a plan, it creates an Execution for
// it, fills in the raw triple (Body, Response, Err) as the request
// progresses, and hands the triple to the response mapper once the
// request is over.
//
// Event handlers receive the Execution and should treat its fields as
// read-only, with the limited exception of making reasonable changes
// to Request before it is sent (for example, to sign it).
type Execution struct {
	// ID uniquely identifies the execution. It appears in the client's
	// log entries.
	ID uuid.UUID

	// Plan specifies the plan being executed. It is never nil.
	Plan *Plan

	// Start is the time the execution started. It is the zero time
	// until the execution starts.
	Start time.Time

	// End is the time the execution ended. It is the zero time until
	// the execution ends.
	End time.Time

	// Request is the HTTP request sent, or about to be sent, for the
	// plan.
	Request *http.Request

	// Response is the HTTP response metadata received. Its body has
	// already been read into Body and closed by the time the response
	// mapper sees it. It is nil if the request ended in an error before
	// a response arrived.
	Response *http.Response

	// Err is the transport error, if any. It is nil if a complete
	// response was received.
	Err error

	// Body is the complete response body. It is nil if no response was
	// received, and non-nil (possibly empty) otherwise. If reading the
	// body failed, Body holds whatever was read and Err is set.
	Body []byte
}

// NewExecution returns a new execution for p with a fresh ID.
func NewExecution(p *Plan) *Execution {
	return &Execution{
		ID:   uuid.New(),
		Plan: p,
	}
}

// StatusCode returns the status code of the HTTP response, or 0 if
// there is no response.
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// Header returns the HTTP response headers, or the nil header if there
// is no response. The nil header is safe for read-only operations.
func (e *Execution) Header() http.Header {
	if e.Response == nil {
		return nil
	}

	return e.Response.Header
}

// Duration returns the duration of the execution.
//
// It is zero before the execution starts, grows while the execution
// is in flight, and equals End minus Start once it has ended.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return 0
	} else if !e.Ended() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return !e.Start.IsZero()
}

// Ended indicates whether the execution has ended.
func (e *Execution) Ended() bool {
	return !e.End.IsZero()
}

// Canceled indicates whether Err reports that the request was
// cancelled, according to transient.Categorize.
func (e *Execution) Canceled() bool {
	return transient.Categorize(e.Err) == transient.Canceled
}
