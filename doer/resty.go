// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package doer

import (
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Resty adapts a go-resty client to the HTTPDoer contract.
//
// The request method, URL, headers, body and context are copied onto a
// new resty request. Resty is told not to parse the response, so the
// raw response body is returned unread for the caller to consume.
// Retry and timeout policy are whatever the resty client is configured
// with.
type Resty struct {
	client *resty.Client
}

// NewResty returns a doer which sends requests through c. If c is nil,
// a new client from resty.New is used.
func NewResty(c *resty.Client) *Resty {
	if c == nil {
		c = resty.New()
	}

	return &Resty{client: c}
}

// Client returns the underlying resty client.
func (d *Resty) Client() *resty.Client {
	return d.client
}

// Do sends r using the resty client.
func (d *Resty) Do(r *http.Request) (*http.Response, error) {
	req := d.client.R().
		SetContext(r.Context()).
		SetHeaderMultiValues(r.Header).
		SetDoNotParseResponse(true)

	if r.Body != nil && r.Body != http.NoBody {
		b, err := io.ReadAll(r.Body)
		_ = r.Body.Close()
		if err != nil {
			return nil, err
		}
		req.SetBody(b)
	}

	resp, err := req.Execute(r.Method, r.URL.String())
	if err != nil {
		if resp != nil && resp.RawResponse != nil && resp.RawResponse.Body != nil {
			_ = resp.RawResponse.Body.Close()
		}
		return nil, err
	}

	return resp.RawResponse, nil
}
