// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Plan (describes a JSON request)
and Execution (holds the raw result of sending a Plan).

The first core type is Plan, an immutable description of one logical
JSON request: method, URL, headers, and a pre-serialized JSON body.
Plan fields are named and typed consistently with http.Request wherever
possible.

Create a plan with NewPlan:

	p := request.NewPlan("https://api.example.com/users", request.POST,
		User{Name: "Ann"}, request.WithUserAgent("my-app/1.0"))

Every plan carries the headers "Content-Type: application/json" and
"Accept: application/json". The body, if not nil, is serialized with
encoding/json.

Plan construction fails fast. An unparseable URL, a method outside the
Method enumeration, or a body that cannot be serialized is a programmer
error, so NewPlan panics instead of returning an error. Use BodyBytes
to check a body ahead of time if it comes from untrusted input.

A plan may be assigned a context to allow the request to be cancelled:

	p := request.NewPlanWithContext(ctx, "https://api.example.com/users", request.GET, nil)

Cancelling the plan context while the request is in flight makes the
execution end silently: no outcome is delivered.

The second core type is Execution, which holds the raw result of
sending a plan: the buffered response body, the response metadata,
and the transport error (the "raw triple"). You will typically not
allocate Execution instances yourself, but will instead work with the
ones handed to event handlers by the jsonx client.
*/
package request
