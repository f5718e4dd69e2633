// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package callback provides the callback context on which the jsonx
client delivers request outcomes.

A callback context is a single serialized execution context, the
equivalent of a UI main thread. Every outcome is handed to it through
the Dispatcher interface, so completion callbacks never run
concurrently with one another and never run on the goroutine that
performed the request.

Use Main for the process-wide queue, or NewQueue for a dedicated one:

	q := callback.NewQueue(16)
	defer q.Close()
	client := &jsonx.Client{Callbacks: q}

Applications with their own event loop can implement Dispatcher
to deliver outcomes on that loop instead.
*/
package callback
