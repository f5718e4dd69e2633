// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package doer

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

// HTTPOptions configures the HTTP client built by NewHTTPClient. The
// zero value is a valid configuration.
type HTTPOptions struct {
	// Timeout is the overall time limit for a request, including
	// reading the response body. Zero means no timeout.
	Timeout time.Duration
	// HTTP2 enables HTTP/2 over TLS using golang.org/x/net/http2. If
	// HTTP2 is false, the client speaks HTTP/1.1 only.
	HTTP2 bool
	// TLSClientConfig, if not nil, replaces the TLS configuration of
	// the transport.
	TLSClientConfig *tls.Config
}

// NewHTTPClient returns a new HTTP client whose transport is a clone of
// http.DefaultTransport, configured according to opts.
func NewHTTPClient(opts HTTPOptions) (*http.Client, error) {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.ForceAttemptHTTP2 = false
	if opts.TLSClientConfig != nil {
		t.TLSClientConfig = opts.TLSClientConfig.Clone()
	}

	if opts.HTTP2 {
		if _, err := http2.ConfigureTransports(t); err != nil {
			return nil, fmt.Errorf("jsonx/doer: failed to configure HTTP/2: %w", err)
		}
	} else {
		// A non-nil empty map disables the bundled HTTP/2 support.
		t.TLSNextProto = map[string]func(string, *tls.Conn) http.RoundTripper{}
	}

	return &http.Client{
		Transport: t,
		Timeout:   opts.Timeout,
	}, nil
}
