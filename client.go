// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jsonx

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gogama/jsonx/callback"
	"github.com/gogama/jsonx/request"
	"github.com/gogama/jsonx/response"
	"github.com/gogama/jsonx/transient"
	"go.uber.org/zap"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
//
// The HTTPDoer is the transport capability behind a Client: it owns
// connections, TLS, redirects, timeouts and cancellation. Package doer
// provides ready-made implementations.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package. In
	// particular it must return either a non-nil response or a non-nil
	// error, and must honor cancellation of the request context.
	Do(r *http.Request) (*http.Response, error)
}

var emptyHandlers = HandlerGroup{}

// A Client executes JSON request plans asynchronously and delivers
// typed outcomes on a callback context. Its zero value is a valid
// configuration.
//
// The zero value client uses http.DefaultClient (from net/http) as the
// HTTPDoer, callback.Main() as the callback context, no event handlers,
// and a no-op logger.
//
// Client is safe for concurrent use by multiple goroutines. Its fields
// should not be changed once it is in use.
//
// A Client is deliberately thin. It makes exactly one attempt per plan,
// never retries, and has no timeout logic of its own: configure those
// concerns on the HTTPDoer.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard net/http
	// package is used.
	HTTPDoer HTTPDoer
	// Callbacks is the callback context on which completion callbacks
	// are run.
	//
	// If Callbacks is nil, callback.Main() is used.
	Callbacks callback.Dispatcher
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during execution of a request plan.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
	// Logger receives debug entries for each execution, and a DPanic
	// entry if the HTTPDoer breaches its contract.
	//
	// If Logger is nil, nothing is logged.
	Logger *zap.Logger
}

// Execute sends the plan p using client c and delivers the outcome to
// onComplete.
//
// Execute returns immediately. The request is started at once on a new
// goroutine, where the HTTP doer's response body is read in full and
// passed, along with the response metadata and transport error, to
// response.Map with the given override mapper (nil selects the default
// policy). The resulting outcome is then dispatched to onComplete on
// the client's callback context.
//
// onComplete is called exactly once per execution, except when the
// default policy finds the request was cancelled (the plan context was
// cancelled while the request was in flight), in which case it is
// never called.
//
// Execute panics if c, p, or onComplete is nil.
func Execute[T any](c *Client, p *request.Plan, override response.Mapper[T], onComplete func(response.Outcome[T])) {
	if c == nil {
		panic("jsonx: nil client")
	}
	if p == nil {
		panic("jsonx: nil plan")
	}
	if onComplete == nil {
		panic("jsonx: nil completion callback")
	}

	doer := c.doer()
	callbacks := c.callbacks()
	handlers := c.handlers()
	logger := c.logger()

	go func() {
		e := request.NewExecution(p)
		handlers.run(BeforeExecutionStart, e)
		e.Start = time.Now()
		sendAndReceive(p, e, doer, handlers)
		o, ok := response.Map[T](e.Body, e.Response, e.Err, override, logger)
		e.End = time.Now()
		if !ok {
			handlers.run(AfterCancel, e)
		}
		handlers.run(AfterExecutionEnd, e)
		if !ok {
			logExecution(logger, e, nil, false)
			return
		}
		logExecution(logger, e, o.Err(), true)
		callbacks.Dispatch(func() {
			onComplete(o)
		})
	}()
}

func sendAndReceive(p *request.Plan, e *request.Execution, doer HTTPDoer, handlers *HandlerGroup) {
	e.Request = p.ToRequest(p.Context())
	handlers.run(BeforeAttempt, e)
	var err error
	e.Response, err = doer.Do(e.Request)
	if err != nil {
		e.Err = urlErrorWrap(p, err)
		if e.Response != nil && e.Response.Body != nil {
			_ = e.Response.Body.Close()
		}
	} else if e.Response != nil {
		readBody(p, e, handlers)
	}
	handlers.run(AfterAttempt, e)
}

func readBody(p *request.Plan, e *request.Execution, handlers *HandlerGroup) {
	handlers.run(BeforeReadBody, e)
	if e.Response.Body == nil {
		e.Body = []byte{}
		return
	}
	defer func() {
		_ = e.Response.Body.Close()
	}()
	var err error
	e.Body, err = io.ReadAll(e.Response.Body)
	if e.Body == nil {
		e.Body = []byte{}
	}
	if err != nil {
		e.Err = urlErrorWrap(p, err)
	}
}

func logExecution(logger *zap.Logger, e *request.Execution, err error, delivered bool) {
	if ce := logger.Check(zap.DebugLevel, "jsonx: execution ended"); ce != nil {
		fields := []zap.Field{
			zap.Stringer("id", e.ID),
			zap.Stringer("method", e.Plan.Method),
			zap.Stringer("url", e.Plan.URL),
			zap.Int("status", e.StatusCode()),
			zap.Duration("duration", e.Duration()),
			zap.Bool("delivered", delivered),
		}
		if e.Err != nil {
			fields = append(fields, zap.Stringer("category", transient.Categorize(e.Err)))
		}
		if err != nil {
			fields = append(fields, zap.Stringer("cause", response.CauseOf(err)), zap.Error(err))
		}
		ce.Write(fields...)
	}
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}

	return c.HTTPDoer
}

func (c *Client) callbacks() callback.Dispatcher {
	if c.Callbacks == nil {
		return callback.Main()
	}

	return c.Callbacks
}

func (c *Client) handlers() *HandlerGroup {
	if c.Handlers == nil {
		return &emptyHandlers
	}

	return c.Handlers
}

func (c *Client) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}

	return c.Logger
}

func urlErrorWrap(p *request.Plan, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(p.Method.String()),
		URL: p.URL.String(),
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
