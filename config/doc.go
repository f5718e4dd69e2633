// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package config builds a jsonx Client from a configuration file.

A configuration file may be YAML, JSON or TOML. Every key is optional:

	transport: resty        # "net" (default) or "resty"
	timeout: 10s            # doer timeout, zero means none
	http2: true
	callback_queue_size: 64
	log:
	  level: debug          # debug, info, warn or error
	  development: false

Load the file, then build the client:

	cfg, err := config.Load("jsonx.yaml")
	...
	client, err := config.NewClient(cfg)

Environment variables are never consulted.
*/
package config
