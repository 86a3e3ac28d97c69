// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render decouples the rate at which model snapshots arrive
// from the rate at which rendering occurs. The [Scheduler] coalesces
// bursts of snapshots on three independent channels (primary, hidden,
// popup) into at most one flush per display frame, delivering only the
// most recent snapshot per channel to a [Renderer]. The package also
// provides the [Registry] for dispatching element type tags to view
// handlers, frame drivers implementing [FrameNotifier], and their
// [DriverSettings].
package render

import "github.com/diagramkit/core/model"

// Renderer consumes flushed model snapshots and produces or patches the
// visual representation. Implementations live outside the core; the
// scheduler only guarantees that each method is invoked at most once
// per display frame, with the most recent snapshot for that channel.
// A failure inside a Renderer is the implementation's concern: the
// scheduler's slots are already cleared when these methods run, so a
// panicking renderer cannot corrupt scheduler state.
type Renderer interface {

	// Update renders the given primary model snapshot.
	Update(root *model.Root)

	// UpdateHidden renders the given hidden (offscreen) model snapshot,
	// used for computations such as text measurement that must not be
	// visible on the main view.
	UpdateHidden(root *model.Root)

	// UpdatePopup renders the given popup overlay model snapshot.
	UpdatePopup(root *model.Root)
}

// FrameNotifier schedules one-shot callbacks bound to display frame
// boundaries. It is the only asynchronous primitive the scheduler
// relies on.
type FrameNotifier interface {

	// OnEndOfNextFrame invokes the given callback exactly once, at or
	// after the end of the current or next rendering frame. It must
	// tolerate being called again from within a callback (re-arming),
	// and multiple pending callbacks must run in call order; the
	// scheduler itself only ever has one in flight.
	OnEndOfNextFrame(fn func())
}
