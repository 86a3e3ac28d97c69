// Copyright (c) 2026, Diagramkit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"sync"

	"github.com/diagramkit/core/model"
)

// schedState is the arming state of a [Scheduler]: either no flush
// callback is pending (idle) or exactly one is in flight (armed).
type schedState int32

const (
	// idle: all slots empty, no callback pending; the next update arms one.
	idle schedState = iota

	// armed: at least one slot filled and one flush callback in flight.
	armed
)

// Scheduler coalesces bursts of incoming model snapshots into at most
// one rendering pass per display frame, across three independent
// channels: primary, hidden, and popup. Each channel retains only the
// most recent snapshot (last write wins; intermediate snapshots are
// discarded, never queued), and an armed flush always fires, so the
// latest state is eventually delivered even under continuous update
// pressure.
//
// Update calls never block: they record the snapshot and, when the
// scheduler is idle, arm one callback on the [FrameNotifier]. The flush
// delivers pending snapshots in the fixed order hidden, primary, popup.
// There is no cancellation; to stop flushing, stop updating and discard
// the Scheduler.
type Scheduler struct {
	renderer Renderer
	frames   FrameNotifier

	mu            sync.Mutex
	state         schedState
	pending       *model.Root // primary channel slot
	pendingHidden *model.Root
	pendingPopup  *model.Root
}

// NewScheduler returns a new [Scheduler] flushing to the given renderer
// at the frame cadence of the given notifier.
func NewScheduler(renderer Renderer, frames FrameNotifier) *Scheduler {
	return &Scheduler{renderer: renderer, frames: frames}
}

// Update records the given snapshot as the pending primary model,
// replacing any not-yet-flushed one, and arms a flush at the end of the
// next frame if one is not already pending.
func (sd *Scheduler) Update(root *model.Root) {
	sd.set(&sd.pending, root)
}

// UpdateHidden records the given snapshot as the pending hidden model;
// see [Scheduler.Update].
func (sd *Scheduler) UpdateHidden(root *model.Root) {
	sd.set(&sd.pendingHidden, root)
}

// UpdatePopup records the given snapshot as the pending popup model;
// see [Scheduler.Update].
func (sd *Scheduler) UpdatePopup(root *model.Root) {
	sd.set(&sd.pendingPopup, root)
}

// set overwrites the given slot and performs the idle -> armed
// transition when this is the update that fills the first slot.
// Outside of a flush, state == idle exactly when all three slots are
// empty, so checking the explicit state is the "were all slots empty"
// check.
func (sd *Scheduler) set(slot **model.Root, root *model.Root) {
	sd.mu.Lock()
	*slot = root
	arm := sd.state == idle
	if arm {
		sd.state = armed
	}
	sd.mu.Unlock()
	if arm {
		sd.frames.OnEndOfNextFrame(sd.flush)
	}
}

// flush runs once per armed callback: it captures and clears all three
// slots and returns the state machine to idle before delivering
// anything, then delivers the captured snapshots in hidden, primary,
// popup order, skipping empty channels. Clearing first means a renderer
// that re-entrantly calls an update method arms a fresh frame rather
// than being flushed twice or starved, and a panicking renderer leaves
// the scheduler consistent.
func (sd *Scheduler) flush() {
	sd.mu.Lock()
	hidden, primary, popup := sd.pendingHidden, sd.pending, sd.pendingPopup
	sd.pendingHidden, sd.pending, sd.pendingPopup = nil, nil, nil
	sd.state = idle
	sd.mu.Unlock()

	if hidden != nil {
		sd.renderer.UpdateHidden(hidden)
	}
	if primary != nil {
		sd.renderer.Update(primary)
	}
	if popup != nil {
		sd.renderer.UpdatePopup(popup)
	}
}
