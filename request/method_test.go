// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethods(t *testing.T) {
	assert.Equal(t, []Method{GET, POST, PUT, HEAD, DELETE, PATCH, OPTIONS}, Methods())
	for _, m := range Methods() {
		assert.True(t, m.Valid(), m.String())
	}
}

func TestMethod_Valid(t *testing.T) {
	assert.False(t, Method("").Valid())
	assert.False(t, Method("TRACE").Valid())
	assert.False(t, Method("CONNECT").Valid())
	assert.False(t, Method("post").Valid())
}

func TestMethod_String(t *testing.T) {
	assert.Equal(t, "GET", GET.String())
	assert.Equal(t, "POST", POST.String())
	assert.Equal(t, "PUT", PUT.String())
	assert.Equal(t, "HEAD", HEAD.String())
	assert.Equal(t, "DELETE", DELETE.String())
	assert.Equal(t, "PATCH", PATCH.String())
	assert.Equal(t, "OPTIONS", OPTIONS.String())
}
