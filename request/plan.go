// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
)

const (
	// ContentTypeJSON is the value of the Content-Type and Accept
	// headers on every plan.
	ContentTypeJSON = "application/json"

	nilCtxMsg = "jsonx/request: nil context"
)

// A Plan describes a single logical JSON request for execution by the
// jsonx client.
//
// A Plan is created once by NewPlan or NewPlanWithContext and should be
// treated as immutable afterwards. Executing the same plan more than once
// is allowed: each execution builds its own http.Request.
type Plan struct {
	// Method specifies the HTTP method. It is always one of the values
	// returned by Methods.
	Method Method

	// URL specifies the URL to access.
	URL *urlpkg.URL

	// Header contains the request header fields to be sent. It always
	// contains Content-Type and Accept set to ContentTypeJSON, and
	// contains User-Agent if the plan was built WithUserAgent.
	Header http.Header

	// Body is the JSON-serialized request body. A nil body means no
	// request body is sent.
	Body []byte

	// ctx allows the request to be cancelled. It should only be
	// modified by copying the whole Plan using WithContext.
	ctx context.Context
}

// An Option customizes a plan under construction.
type Option func(*Plan)

// WithUserAgent sets the User-Agent header. An empty ua leaves the
// header unset.
func WithUserAgent(ua string) Option {
	return func(p *Plan) {
		if ua != "" {
			p.Header.Set("User-Agent", ua)
		}
	}
}

// WithHeader sets an additional request header. It cannot be used to
// change Content-Type or Accept.
func WithHeader(key, value string) Option {
	return func(p *Plan) {
		switch http.CanonicalHeaderKey(key) {
		case "Content-Type", "Accept":
			panic(fmt.Errorf("jsonx/request: header %s is fixed to %s", key, ContentTypeJSON))
		}
		p.Header.Set(key, value)
	}
}

// NewPlan wraps NewPlanWithContext using the background context.
func NewPlan(url string, method Method, body interface{}, opts ...Option) *Plan {
	return NewPlanWithContext(context.Background(), url, method, body, opts...)
}

// NewPlanWithContext returns a new Plan given a URL, method, and
// optional body.
//
// An empty method means GET. Parameter body may be nil, meaning the
// plan has no body. Otherwise it is serialized with BodyBytes.
//
// NewPlanWithContext panics if ctx is nil, if url is empty or cannot be
// parsed, if method is not one of the supported methods, or if body
// cannot be serialized. The panic value is an error describing the bad
// input. These conditions indicate a bug in the calling code, not a
// runtime failure, so no error is returned.
func NewPlanWithContext(ctx context.Context, url string, method Method, body interface{}, opts ...Option) *Plan {
	if ctx == nil {
		panic(errors.New(nilCtxMsg))
	}
	if method == "" {
		method = GET
	}
	if !method.Valid() {
		panic(fmt.Errorf("jsonx/request: invalid method %q", string(method)))
	}
	if url == "" {
		panic(errors.New("jsonx/request: empty url"))
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		panic(fmt.Errorf("jsonx/request: invalid url: %w", err))
	}
	b, err := BodyBytes(body)
	if err != nil {
		panic(err)
	}
	p := &Plan{
		ctx:    ctx,
		Method: method,
		URL:    u,
		Header: make(http.Header),
		Body:   b,
	}
	p.Header.Set("Content-Type", ContentTypeJSON)
	p.Header.Set("Accept", ContentTypeJSON)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Context returns the plan's context. The returned context is always
// non-nil; it defaults to the background context.
func (p *Plan) Context() context.Context {
	if p.ctx != nil {
		return p.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of p with its context changed to
// ctx, which must be non-nil.
func (p *Plan) WithContext(ctx context.Context) *Plan {
	if ctx == nil {
		panic(errors.New(nilCtxMsg))
	}
	p2 := new(Plan)
	*p2 = *p
	p2.ctx = ctx
	return p2
}

// ToRequest creates an HTTP request corresponding to the plan. The
// context of the new request is set to ctx, which may not be nil.
//
// The request gets its own copy of the plan header, so changes made to
// it (for example by an event handler) never leak back into the plan.
func (p *Plan) ToRequest(ctx context.Context) *http.Request {
	var body io.Reader
	if p.Body != nil {
		body = bytes.NewReader(p.Body)
	}
	r, err := http.NewRequestWithContext(ctx, p.Method.String(), p.URL.String(), body)
	if err != nil {
		// Method and URL were validated at construction time.
		panic(fmt.Errorf("jsonx/request: %w", err))
	}
	r.Header = p.Header.Clone()
	return r
}
