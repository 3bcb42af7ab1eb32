package tui

import (
	"time"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// HoldTracker turns key presses into held actions. Terminals deliver a
// press and then auto-repeats, never a release, so an action counts as
// held until a short deadline passes without another repeat. The first
// press gets a longer deadline to bridge the OS repeat delay.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	until   map[core.Action]time.Time
}

// NewHoldTracker builds a tracker from the input config.
func NewHoldTracker(cfg config.InputConfig) *HoldTracker {
	return &HoldTracker{
		initial: time.Duration(cfg.HoldInitialMS) * time.Millisecond,
		repeat:  time.Duration(cfg.HoldTimeoutMS) * time.Millisecond,
		until:   make(map[core.Action]time.Time),
	}
}

// Press records a press or repeat of a at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	deadline := now.Add(h.initial)
	if h.Held(a, now) {
		deadline = now.Add(h.repeat)
		if prev := h.until[a]; prev.After(deadline) {
			deadline = prev
		}
	}
	h.until[a] = deadline
}

// Held reports whether a is still considered down at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	deadline, ok := h.until[a]
	return ok && now.Before(deadline)
}

// Apply sets every held action on frame and forgets expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a := range h.until {
		if h.Held(a, now) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Reset releases all actions.
func (h *HoldTracker) Reset() {
	clear(h.until)
}
