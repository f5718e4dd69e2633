// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package callback

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// A Dispatcher schedules functions onto a callback context.
//
// Implementations must run the functions they are given one at a time,
// in the order they were dispatched, and never on the goroutine that
// called Dispatch. Dispatch must not block waiting for f to run.
type Dispatcher interface {
	Dispatch(f func())
}

// DefaultQueueSize is the buffer size of the queue returned by Main.
const DefaultQueueSize = 64

const closedMsg = "jsonx/callback: dispatch on closed queue"

// A Queue is a Dispatcher backed by a single goroutine which runs the
// dispatched functions in FIFO order.
//
// A Queue must be created with NewQueue. It is safe for concurrent use
// by multiple goroutines.
type Queue struct {
	// Logger receives an error entry whenever a dispatched function
	// panics. The panic is recovered so the queue keeps running. If
	// Logger is nil, panics are recovered silently.
	Logger *zap.Logger

	lock    sync.Mutex
	pending []func()
	wake    chan struct{}
	closed  bool
	done    chan struct{}
}

// NewQueue starts a new queue. Parameter size is a hint for the number
// of functions which may be pending at once; Dispatch never blocks even
// if it is exceeded.
func NewQueue(size int) *Queue {
	if size < 1 {
		size = 1
	}
	q := &Queue{
		pending: make([]func(), 0, size),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go q.loop()
	return q
}

// Dispatch schedules f to run on the queue goroutine after every
// previously dispatched function. It panics if f is nil or if the queue
// has been closed.
func (q *Queue) Dispatch(f func()) {
	if f == nil {
		panic(errors.New("jsonx/callback: nil function"))
	}

	q.lock.Lock()
	if q.closed {
		q.lock.Unlock()
		panic(errors.New(closedMsg))
	}
	q.pending = append(q.pending, f)
	// wake is closed under lock, so this send cannot race Close.
	select {
	case q.wake <- struct{}{}:
	default:
	}
	q.lock.Unlock()
}

// Close stops accepting new functions, waits until every function
// already dispatched has run, and stops the queue goroutine. Calling
// Close more than once is harmless. Close must not be called from a
// function running on the queue itself.
func (q *Queue) Close() {
	q.lock.Lock()
	if !q.closed {
		q.closed = true
		close(q.wake)
	}
	q.lock.Unlock()
	<-q.done
}

func (q *Queue) loop() {
	defer close(q.done)
	for {
		_, open := <-q.wake
		for {
			q.lock.Lock()
			batch := q.pending
			q.pending = nil
			q.lock.Unlock()
			if len(batch) == 0 {
				break
			}
			for _, f := range batch {
				q.run(f)
			}
		}
		if !open {
			return
		}
	}
}

func (q *Queue) run(f func()) {
	defer func() {
		if r := recover(); r != nil && q.Logger != nil {
			q.Logger.Error("jsonx/callback: recovered panic in callback", zap.Any("panic", r), zap.Stack("stack"))
		}
	}()
	f()
}

var (
	mainOnce  sync.Once
	mainQueue *Queue
)

// Main returns the process-wide callback queue. It is started on first
// use and is never closed. The zero value jsonx.Client delivers outcomes
// on it.
func Main() *Queue {
	mainOnce.Do(func() {
		mainQueue = NewQueue(DefaultQueueSize)
	})
	return mainQueue
}
