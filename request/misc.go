// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"encoding/json"
	"fmt"
)

// BodyBytes converts a request body value into its JSON serialization
// for use as a plan body.
//
// • If body is nil, a nil byte slice and no error is returned.
//
// • If body is a json.RawMessage, it is returned unchanged provided it
// holds valid JSON.
//
// • Otherwise body is passed to json.Marshal, so any value accepted by
// encoding/json works, including values implementing json.Marshaler.
// Note that a []byte is serialized as a base64 JSON string.
//
// If serialization fails (for example body is a channel or function,
// or contains a NaN float), a nil byte slice and an error is returned.
func BodyBytes(body interface{}) ([]byte, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		if !json.Valid(x) {
			return nil, fmt.Errorf("jsonx/request: invalid body: raw message is not valid JSON")
		}
		return x, nil
	default:
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("jsonx/request: invalid body: %w", err)
		}
		return b, nil
	}
}
