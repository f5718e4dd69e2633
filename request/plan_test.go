// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

func TestNewPlan(t *testing.T) {
	for _, testCase := range newPlanTestCases {
		t.Run(testCase.name, func(t *testing.T) {
			p := NewPlan(testCase.url, testCase.method, testCase.body, testCase.opts...)
			testCase.asserts(t, p)
			assert.Equal(t, context.Background(), p.ctx)
			assert.Equal(t, context.Background(), p.Context())
		})
	}
}

func TestNewPlanWithContext(t *testing.T) {
	type foo struct{}
	ctx := context.WithValue(context.Background(), foo{}, "bar")
	require.NotEqual(t, ctx, context.Background())
	for _, testCase := range newPlanTestCases {
		t.Run(testCase.name+" with special context", func(t *testing.T) {
			p := NewPlanWithContext(ctx, testCase.url, testCase.method, testCase.body, testCase.opts...)
			testCase.asserts(t, p)
			assert.Equal(t, ctx, p.Context())
		})
	}
	t.Run("nil context", func(t *testing.T) {
		assert.PanicsWithError(t, nilCtxMsg, func() {
			//lint:ignore SA1012 testing nil context on purpose
			NewPlanWithContext(nil, "https://foo.com", GET, nil)
		})
	})
}

var newPlanTestCases = []struct {
	name    string
	url     string
	method  Method
	body    interface{}
	opts    []Option
	asserts func(*testing.T, *Plan)
}{
	{
		name: "empty method means GET",
		url:  "https://foo.com",
		asserts: func(t *testing.T, p *Plan) {
			require.NotNil(t, p)
			assert.Equal(t, GET, p.Method)
			assert.Equal(t, "https://foo.com", p.URL.String())
			assert.Nil(t, p.Body)
			assertJSONHeaders(t, p)
			assert.Empty(t, p.Header.Get("User-Agent"))
		},
	},
	{
		name:   "GET without body",
		url:    "https://api.example.com/users?page=2",
		method: GET,
		asserts: func(t *testing.T, p *Plan) {
			assert.Equal(t, GET, p.Method)
			assert.Equal(t, "api.example.com", p.URL.Host)
			assert.Equal(t, "2", p.URL.Query().Get("page"))
			assert.Nil(t, p.Body)
			assertJSONHeaders(t, p)
		},
	},
	{
		name:   "POST with struct body",
		url:    "https://api.example.com/users",
		method: POST,
		body:   user{Name: "Ann"},
		asserts: func(t *testing.T, p *Plan) {
			assert.Equal(t, POST, p.Method)
			assertJSONHeaders(t, p)
			var u user
			require.NoError(t, json.Unmarshal(p.Body, &u))
			assert.Equal(t, user{Name: "Ann"}, u)
		},
	},
	{
		name:   "PUT with map body",
		url:    "http://bar.com/things/1",
		method: PUT,
		body:   map[string]interface{}{"ham": "eggs", "n": 3},
		asserts: func(t *testing.T, p *Plan) {
			assert.Equal(t, PUT, p.Method)
			assert.JSONEq(t, `{"ham":"eggs","n":3}`, string(p.Body))
		},
	},
	{
		name:   "PATCH with raw message body",
		url:    "http://bar.com/things/1",
		method: PATCH,
		body:   json.RawMessage(`{"op":"replace"}`),
		asserts: func(t *testing.T, p *Plan) {
			assert.Equal(t, PATCH, p.Method)
			assert.Equal(t, []byte(`{"op":"replace"}`), p.Body)
		},
	},
	{
		name:   "user agent",
		url:    "https://baz.com",
		method: DELETE,
		opts:   []Option{WithUserAgent("jsonx-test/1.0")},
		asserts: func(t *testing.T, p *Plan) {
			assert.Equal(t, DELETE, p.Method)
			assert.Equal(t, "jsonx-test/1.0", p.Header.Get("User-Agent"))
			assertJSONHeaders(t, p)
		},
	},
	{
		name:   "empty user agent ignored",
		url:    "https://baz.com",
		method: HEAD,
		opts:   []Option{WithUserAgent("")},
		asserts: func(t *testing.T, p *Plan) {
			_, ok := p.Header["User-Agent"]
			assert.False(t, ok)
		},
	},
	{
		name:   "extra header",
		url:    "https://baz.com",
		method: OPTIONS,
		opts:   []Option{WithHeader("X-Ham", "eggs")},
		asserts: func(t *testing.T, p *Plan) {
			assert.Equal(t, "eggs", p.Header.Get("X-Ham"))
			assertJSONHeaders(t, p)
		},
	},
	{
		name:   "relative URL accepted",
		url:    "users/1",
		method: GET,
		asserts: func(t *testing.T, p *Plan) {
			assert.Equal(t, "users/1", p.URL.String())
		},
	},
}

func assertJSONHeaders(t *testing.T, p *Plan) {
	assert.Equal(t, []string{"application/json"}, p.Header["Content-Type"])
	assert.Equal(t, []string{"application/json"}, p.Header["Accept"])
}

func TestNewPlanPanics(t *testing.T) {
	testCases := []struct {
		name   string
		url    string
		method Method
		body   interface{}
		opts   []Option
		msg    string
	}{
		{
			name:   "invalid method",
			url:    "https://foo.com",
			method: "TRACE",
			msg:    `jsonx/request: invalid method "TRACE"`,
		},
		{
			name:   "lowercase method",
			url:    "https://foo.com",
			method: "get",
			msg:    `jsonx/request: invalid method "get"`,
		},
		{
			name: "empty url",
			msg:  "jsonx/request: empty url",
		},
		{
			name: "unparseable url",
			url:  ":::",
			msg:  "jsonx/request: invalid url",
		},
		{
			name: "control character in url",
			url:  "https://foo.com/\x7f",
			msg:  "jsonx/request: invalid url",
		},
		{
			name:   "channel body",
			url:    "https://foo.com",
			method: POST,
			body:   make(chan int),
			msg:    "jsonx/request: invalid body",
		},
		{
			name:   "NaN body",
			url:    "https://foo.com",
			method: POST,
			body:   map[string]float64{"x": math.NaN()},
			msg:    "jsonx/request: invalid body",
		},
		{
			name:   "invalid raw message body",
			url:    "https://foo.com",
			method: POST,
			body:   json.RawMessage(`{`),
			msg:    "jsonx/request: invalid body",
		},
		{
			name: "fixed header override",
			url:  "https://foo.com",
			opts: []Option{WithHeader("content-type", "text/plain")},
			msg:  "jsonx/request: header content-type is fixed",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			err := recoverError(func() {
				NewPlan(testCase.url, testCase.method, testCase.body, testCase.opts...)
			})
			require.Error(t, err, "expected NewPlan to panic with an error")
			assert.True(t, strings.HasPrefix(err.Error(), testCase.msg),
				"panic message %q does not start with %q", err.Error(), testCase.msg)
		})
	}
}

func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func TestPlan_Context(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		p := &Plan{}
		assert.Equal(t, context.Background(), p.Context())
	})
}

func TestPlan_WithContext(t *testing.T) {
	p := NewPlan("https://foo.com", POST, user{Name: "Bob"})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p2 := p.WithContext(ctx)

	assert.NotSame(t, p, p2)
	assert.Equal(t, context.Background(), p.Context())
	assert.Equal(t, ctx, p2.Context())
	assert.Equal(t, p.Method, p2.Method)
	assert.Same(t, p.URL, p2.URL)
	assert.Equal(t, p.Body, p2.Body)
	assert.PanicsWithError(t, nilCtxMsg, func() {
		//lint:ignore SA1012 testing nil context on purpose
		p.WithContext(nil)
	})
}

func TestPlan_ToRequest(t *testing.T) {
	type foo struct{}
	ctx := context.WithValue(context.Background(), foo{}, "bar")

	t.Run("no body", func(t *testing.T) {
		p := NewPlan("https://foo.com/a?b=c", GET, nil, WithUserAgent("ua"))
		r := p.ToRequest(ctx)
		require.NotNil(t, r)
		assert.Equal(t, ctx, r.Context())
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "https://foo.com/a?b=c", r.URL.String())
		assert.Equal(t, "foo.com", r.Host)
		assert.Equal(t, p.Header, r.Header)
		assert.Equal(t, "ua", r.Header.Get("User-Agent"))
		assert.Nil(t, r.Body)
		assert.Equal(t, int64(0), r.ContentLength)
	})
	t.Run("with body", func(t *testing.T) {
		p := NewPlan("https://foo.com", POST, user{ID: 1, Name: "Ann"})
		for i := 0; i < 2; i++ {
			r := p.ToRequest(ctx)
			require.NotNil(t, r.Body)
			b, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Equal(t, p.Body, b)
			assert.Equal(t, int64(len(p.Body)), r.ContentLength)
			require.NotNil(t, r.GetBody)
			rc, err := r.GetBody()
			require.NoError(t, err)
			b, err = io.ReadAll(rc)
			require.NoError(t, err)
			assert.Equal(t, p.Body, b)
		}
	})
	t.Run("header is copied", func(t *testing.T) {
		p := NewPlan("https://foo.com", GET, nil)
		r := p.ToRequest(ctx)
		r.Header.Set("Authorization", "Bearer x")
		assert.Empty(t, p.Header.Get("Authorization"))
	})
}
