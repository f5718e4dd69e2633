// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jsonx

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with custom
// functionality, such as request signing or metrics.
type Event int

const (
	// BeforeExecutionStart identifies the event that occurs before the
	// plan execution starts.
	//
	// When Client fires BeforeExecutionStart, the execution is
	// non-nil but the only fields that have been set are the ID and
	// the plan.
	BeforeExecutionStart Event = iota
	// BeforeAttempt identifies the event that occurs immediately before
	// the HTTP request is handed to the HTTP doer.
	//
	// When Client fires BeforeAttempt, the execution's request field is
	// set to the HTTP request that WILL BE sent after all BeforeAttempt
	// handlers have finished. Handlers may modify the request, for
	// example to add an authorization header. The request header is a
	// copy of the plan header, so such changes do not affect the plan.
	BeforeAttempt
	// BeforeReadBody identifies the event that occurs after the HTTP
	// doer has returned a response (as opposed to an error) but before
	// the response body is read and buffered.
	//
	// BeforeReadBody never fires if the request ended in error, but
	// always fires if a response is received, regardless of status
	// code.
	BeforeReadBody
	// AfterAttempt identifies the event that occurs once the raw triple
	// is complete: either the body has been buffered, or the request
	// ended in an error.
	//
	// When Client fires AfterAttempt, the execution's Body, Response
	// and Err fields hold exactly what the response mapper will see.
	AfterAttempt
	// AfterCancel identifies the event that occurs when the response
	// mapper suppressed the outcome because the request was cancelled.
	// No outcome will be delivered for the execution.
	AfterCancel
	// AfterExecutionEnd identifies the event that occurs after the plan
	// execution ends, after mapping and before the outcome (if any) is
	// dispatched to the callback context.
	//
	// When Client fires AfterExecutionEnd, the execution's end time has
	// been set.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeAttempt",
	"BeforeReadBody",
	"AfterAttempt",
	"AfterCancel",
	"AfterExecutionEnd",
}

// Events returns a slice containing all events which can occur in a
// plan execution by Client, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeAttempt,
		BeforeReadBody,
		AfterAttempt,
		AfterCancel,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
