// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// A Method is an HTTP request method supported by Plan.
//
// The zero value is treated as GET by NewPlan.
type Method string

// Methods supported by Plan.
const (
	GET     Method = "GET"
	POST    Method = "POST"
	PUT     Method = "PUT"
	HEAD    Method = "HEAD"
	DELETE  Method = "DELETE"
	PATCH   Method = "PATCH"
	OPTIONS Method = "OPTIONS"
)

// Methods returns every supported method.
func Methods() []Method {
	return []Method{GET, POST, PUT, HEAD, DELETE, PATCH, OPTIONS}
}

// Valid reports whether m is one of the supported methods. The empty
// method is not valid; NewPlan substitutes GET for it before checking.
func (m Method) Valid() bool {
	switch m {
	case GET, POST, PUT, HEAD, DELETE, PATCH, OPTIONS:
		return true
	default:
		return false
	}
}

// String returns the verb sent on the wire.
func (m Method) String() string {
	return string(m)
}
