// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package response maps the raw result of a JSON request into a typed
Outcome.

An Outcome[T] holds either a decoded value of type T or an error, never
both. Errors produced by the default mapping policy fall into three
classes, reported by CauseOf:

• *TransportError wraps a non-cancelled error from the HTTP doer.

• *DecodeError wraps the encoding/json error raised while decoding the
response body into T.

• ErrUnknown reports that the HTTP doer returned neither a response body
nor an error, which breaches its contract.

A cancelled request produces no Outcome at all: Map reports false and
the caller must not deliver anything.

Callers who need a different policy for a particular request, for
example to treat some HTTP status codes as errors, pass a Mapper. A
Mapper fully replaces the default policy:

	strict := response.ExpectStatus[User](200, 201)
	jsonx.Execute(client, plan, strict, func(o response.Outcome[User]) {
		...
	})
*/
package response
