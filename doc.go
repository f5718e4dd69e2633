// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package jsonx provides a thin, asynchronous JSON convenience layer over
an HTTP client.

Create a Client and issue a request. The response body is decoded into
the type parameter and delivered to the completion callback on the
client's callback context.

	type User struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	client := &jsonx.Client{}
	jsonx.Get(client, "https://api.example.com/users/1",
		func(o response.Outcome[User]) {
			u, err := o.Get()
			...
		})
	...
	jsonx.Post(client, "https://api.example.com/users",
		User{Name: "Ann"}, func(o response.Outcome[User]) {
			...
		})

Every request carries "Content-Type: application/json" and
"Accept: application/json" headers. Request bodies are serialized with
encoding/json, and URLs and bodies which cannot be used are programming
errors: the helpers panic rather than returning an error.

The Client makes exactly one attempt per request. It never retries and
has no timeout of its own. For control over how the client sends HTTP
requests and receives HTTP responses, use a custom HTTPDoer. Package
doer builds standard library and resty based doers, and package config
builds a whole Client from a configuration file:

	hc, err := doer.NewHTTPClient(doer.HTTPOptions{
		Timeout: 10 * time.Second,
	})
	...
	client := &jsonx.Client{
		HTTPDoer: hc,
	}

For control over how the raw response is turned into an outcome, build
a request plan and pass a custom response.Mapper to Execute. The mapper
is used verbatim in place of the default policy:

	plan := request.NewPlanWithContext(ctx, url, request.GET, nil)
	jsonx.Execute(client, plan, response.ExpectStatus[User](200),
		func(o response.Outcome[User]) {
			...
		})

With the default policy, a request whose plan context is cancelled
while in flight delivers nothing: the completion callback is never
called.

To hook into the fine-grained details of the client's request execution
logic, install a handler into the appropriate handler chain:

	handlers := &jsonx.HandlerGroup{}
	handlers.PushBack(jsonx.BeforeAttempt, jsonx.HandlerFunc(
		func(_ jsonx.Event, e *request.Execution) {
			e.Request.Header.Set("Authorization", "Bearer "+token)
		})
	)
	client := &jsonx.Client{
		Handlers: handlers,
	}
*/
package jsonx
