// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package doer provides ready-made HTTP doers for the jsonx Client.

Use NewHTTPClient to build a GoLang standard library HTTP client with a
timeout and optional HTTP/2 support:

	hc, err := doer.NewHTTPClient(doer.HTTPOptions{
		Timeout: 10 * time.Second,
		HTTP2:   true,
	})

Use Resty to send requests through a go-resty client instead:

	client := &jsonx.Client{
		HTTPDoer: doer.NewResty(resty.New().SetTimeout(10 * time.Second)),
	}

Timeouts and connection management are the doer's concern: the jsonx
Client itself has no timeout logic.
*/
package doer
