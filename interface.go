// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jsonx

import (
	"github.com/gogama/jsonx/request"
	"github.com/gogama/jsonx/response"
)

// Get uses the specified Client to issue a GET to the specified URL and
// delivers the decoded response body to onComplete, using the default
// response mapping policy.
//
// Like request.NewPlan, Get panics if url is invalid. To use a custom
// response mapper or a plan context, use request.NewPlan and Execute.
func Get[T any](c *Client, url string, onComplete func(response.Outcome[T]), opts ...request.Option) {
	Execute(c, request.NewPlan(url, request.GET, nil, opts...), nil, onComplete)
}

// Head uses the specified Client to issue a HEAD to the specified URL.
//
// A HEAD response has no body, so with the default policy the outcome
// is a DecodeError unless the request fails; pass a custom mapper to
// Execute to inspect the response headers instead.
func Head[T any](c *Client, url string, onComplete func(response.Outcome[T]), opts ...request.Option) {
	Execute(c, request.NewPlan(url, request.HEAD, nil, opts...), nil, onComplete)
}

// Delete uses the specified Client to issue a DELETE to the specified
// URL, with the same behavior as Get.
func Delete[T any](c *Client, url string, onComplete func(response.Outcome[T]), opts ...request.Option) {
	Execute(c, request.NewPlan(url, request.DELETE, nil, opts...), nil, onComplete)
}

// Options uses the specified Client to issue an OPTIONS request to the
// specified URL, with the same behavior as Get.
func Options[T any](c *Client, url string, onComplete func(response.Outcome[T]), opts ...request.Option) {
	Execute(c, request.NewPlan(url, request.OPTIONS, nil, opts...), nil, onComplete)
}

// Post uses the specified Client to issue a POST to the specified URL
// with body serialized as JSON, and delivers the decoded response body
// to onComplete using the default response mapping policy.
//
// Like request.NewPlan, Post panics if url is invalid or body cannot be
// serialized. A nil body sends no request body.
func Post[T any](c *Client, url string, body interface{}, onComplete func(response.Outcome[T]), opts ...request.Option) {
	Execute(c, request.NewPlan(url, request.POST, body, opts...), nil, onComplete)
}

// Put uses the specified Client to issue a PUT to the specified URL,
// with the same behavior as Post.
func Put[T any](c *Client, url string, body interface{}, onComplete func(response.Outcome[T]), opts ...request.Option) {
	Execute(c, request.NewPlan(url, request.PUT, body, opts...), nil, onComplete)
}

// Patch uses the specified Client to issue a PATCH to the specified URL,
// with the same behavior as Post.
func Patch[T any](c *Client, url string, body interface{}, onComplete func(response.Outcome[T]), opts ...request.Option) {
	Execute(c, request.NewPlan(url, request.PATCH, body, opts...), nil, onComplete)
}
