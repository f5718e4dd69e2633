// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package response

import (
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/gogama/jsonx/transient"
	"go.uber.org/zap"
)

// A Mapper converts the raw result of a request into an Outcome.
//
// Parameter body is the complete response body, or nil if no response
// was received. Parameter resp holds the response metadata; its body has
// already been consumed. Parameter err is the transport error, if any.
//
// A Mapper passed to Map replaces the default policy entirely, including
// the handling of cancelled requests, and its return value is used
// verbatim. Implementations must be safe for concurrent use by multiple
// goroutines.
type Mapper[T any] func(body []byte, resp *http.Response, err error) Outcome[T]

// Map converts the raw result of a request into an Outcome of type T.
//
// If override is not nil, Map returns override(body, resp, err) and
// true. Otherwise it applies the default policy:
//
// 1. If err is categorized as transient.Canceled, Map returns false and
// no outcome. The caller must not deliver anything.
//
// 2. If err is any other non-nil error, the outcome is an Error holding
// a *TransportError.
//
// 3. If body is not nil, it is decoded into a T with encoding/json. The
// outcome is a Result on success or an Error holding a *DecodeError on
// failure. HTTP status codes are not examined.
//
// 4. Otherwise the HTTP doer breached its contract by producing neither
// data nor an error. The outcome is an Error holding ErrUnknown, and Map
// logs the breach at DPanic level, which panics if log is a development
// logger. A nil log is treated as zap.NewNop().
func Map[T any](body []byte, resp *http.Response, err error, override Mapper[T], log *zap.Logger) (Outcome[T], bool) {
	if override != nil {
		return override(body, resp, err), true
	}

	return mapDefault[T](body, resp, err, log)
}

// Default returns the default policy as a Mapper, for composing into
// custom mappers. Because a Mapper must always produce an outcome, the
// returned Mapper yields an Error holding the transport error for a
// cancelled request.
func Default[T any](log *zap.Logger) Mapper[T] {
	return func(body []byte, resp *http.Response, err error) Outcome[T] {
		o, ok := mapDefault[T](body, resp, err, log)
		if !ok {
			return Error[T](&TransportError{Err: err})
		}
		return o
	}
}

// ExpectStatus returns a Mapper that accepts only responses whose HTTP
// status code is in codes. A response with any other status code
// produces an Error holding a *StatusError. Everything else, including
// requests that ended without a response, follows the default policy.
func ExpectStatus[T any](codes ...int) Mapper[T] {
	accept := make(map[int]bool, len(codes))
	for _, code := range codes {
		accept[code] = true
	}
	return func(body []byte, resp *http.Response, err error) Outcome[T] {
		if err == nil && resp != nil && !accept[resp.StatusCode] {
			return Error[T](&StatusError{StatusCode: resp.StatusCode, Body: body})
		}
		return Default[T](nil)(body, resp, err)
	}
}

func mapDefault[T any](body []byte, resp *http.Response, err error, log *zap.Logger) (Outcome[T], bool) {
	if err != nil {
		if transient.Categorize(err) == transient.Canceled {
			return Outcome[T]{}, false
		}
		return Error[T](&TransportError{Err: err}), true
	}

	if body != nil {
		var v T
		if err = json.Unmarshal(body, &v); err != nil {
			return Error[T](&DecodeError{Type: typeName[T](), Err: err}), true
		}
		return Result(v), true
	}

	if log == nil {
		log = zap.NewNop()
	}
	fields := []zap.Field{zap.String("type", typeName[T]())}
	if resp != nil {
		fields = append(fields, zap.Int("status", resp.StatusCode))
	}
	log.DPanic("jsonx/response: HTTP doer returned neither data nor error", fields...)
	return Error[T](ErrUnknown), true
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
