// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"sync"
	"time"
)

// ManualFrames is a deterministic [FrameNotifier] driven by explicit
// [ManualFrames.EndFrame] calls. It is the driver to embed the core
// under an existing event loop, and the one tests use to step frames
// by hand. The zero value is ready to use.
type ManualFrames struct {
	mu      sync.Mutex
	pending []func()
}

// OnEndOfNextFrame implements [FrameNotifier] by queueing the callback
// for the next [ManualFrames.EndFrame] call.
func (mf *ManualFrames) OnEndOfNextFrame(fn func()) {
	mf.mu.Lock()
	mf.pending = append(mf.pending, fn)
	mf.mu.Unlock()
}

// EndFrame marks the end of the current frame, invoking every callback
// queued so far, in call order, each exactly once. Callbacks queued
// while EndFrame runs (re-arming) fire at the next EndFrame.
func (mf *ManualFrames) EndFrame() {
	mf.mu.Lock()
	cbs := mf.pending
	mf.pending = nil
	mf.mu.Unlock()
	for _, fn := range cbs {
		fn()
	}
}

// TickerFrames is a wall-clock [FrameNotifier] that ends a frame at a
// fixed rate on its own goroutine. Callbacks therefore run on that
// goroutine; a [Scheduler] tolerates this, but renderer implementations
// driven this way must be safe to call from it.
type TickerFrames struct {
	ManualFrames

	ticker *time.Ticker
	quit   chan struct{}
}

// NewTickerFrames returns a started [TickerFrames] running at the given
// frames per second, which falls back to the default rate if it is not
// positive. Call [TickerFrames.Stop] when done.
func NewTickerFrames(fps int) *TickerFrames {
	if fps <= 0 {
		fps = defaultFramesPerSecond
	}
	tf := &TickerFrames{
		ticker: time.NewTicker(time.Second / time.Duration(fps)),
		quit:   make(chan struct{}),
	}
	go tf.run()
	return tf
}

func (tf *TickerFrames) run() {
	for {
		select {
		case <-tf.ticker.C:
			tf.EndFrame()
		case <-tf.quit:
			return
		}
	}
}

// Stop stops the driver. Callbacks still queued will never fire.
func (tf *TickerFrames) Stop() {
	tf.ticker.Stop()
	close(tf.quit)
}
