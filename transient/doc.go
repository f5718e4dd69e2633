// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient classifies transport errors returned while sending
// a JSON request. The response mapper uses it to recognize cancelled
// requests, which produce no outcome, and the client uses it to label
// transport errors in its log entries.
//
// Package transient depends only on the standard library packages
// "context", "errors" and "syscall", so it doesn't bring any
// significant dependencies when imported as a standalone package.
package transient
