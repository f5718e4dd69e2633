// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jsonx

import (
	"net/http"
	"testing"

	"github.com/gogama/jsonx/request"
	"github.com/gogama/jsonx/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHead(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		mockDoer := newMockHTTPDoer(t)
		cl, _ := newTestClient(t, mockDoer)
		mockDoer.On("Do", mock.MatchedBy(func(r *http.Request) bool {
			return r.Method == "HEAD" && r.URL.String() == "bar" && r.Body == nil
		})).Return(&http.Response{StatusCode: 200, Header: http.Header{"Etag": {"x"}}}, nil).Once()

		ch, onComplete := collect[serverUser]()
		Head(cl, "bar", onComplete)
		o := await(t, ch)

		mockDoer.AssertExpectations(t)
		assert.Equal(t, response.CauseDecode, response.CauseOf(o.Err()))
	})
	t.Run("server", func(t *testing.T) {
		cl, _ := newTestClient(t, httpServer.Client())
		var contentType string
		var override response.Mapper[int] = func(body []byte, resp *http.Response, err error) response.Outcome[int] {
			if err != nil {
				return response.Error[int](err)
			}
			contentType = resp.Header.Get("Content-Type")
			return response.Result(len(body))
		}

		ch, onComplete := collect[int]()
		Execute(cl, request.NewPlan(httpServer.URL+"/users/1", request.HEAD, nil), override, onComplete)
		n, err := await(t, ch).Get()

		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.Equal(t, request.ContentTypeJSON, contentType)
	})
}

func TestHelperPanics(t *testing.T) {
	cl := &Client{}
	onComplete := func(response.Outcome[serverUser]) {}
	testCases := []struct {
		name   string
		action func()
	}{
		{"Get", func() { Get(cl, ":::", onComplete) }},
		{"Head", func() { Head(cl, "", onComplete) }},
		{"Delete", func() { Delete(cl, ":::", onComplete) }},
		{"Options", func() { Options(cl, "", onComplete) }},
		{"Post", func() { Post(cl, "test", make(chan int), onComplete) }},
		{"Put", func() { Put(cl, ":::", nil, onComplete) }},
		{"Patch", func() { Patch(cl, "test", func() {}, onComplete) }},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Panics(t, testCase.action)
		})
	}
}
