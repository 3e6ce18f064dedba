// Package scrollsync keeps two independently scrollable views of the
// same logical document visually aligned by proportional offset.
//
// Alignment is ratio based: the fraction of scrollable distance
// travelled in the source view is applied to the destination view,
// regardless of the two views' content heights. This is a best-effort
// approximation with no correctness guarantee beyond "proportional,
// not exact"; under extreme content-height mismatches the views may
// drift, which is accepted.
//
// Synchronisation is bidirectional, so a mirrored write to the
// destination view raises a scroll event of its own. A per-pair
// in-flight guard suppresses that echo: the guard is set before the
// mirrored write and released on the next scheduling tick, not
// synchronously, so the echo event arrives while the guard is still up
// and is discarded entirely.
package scrollsync

import (
	"math"
	"sync"
)

// View is one scrollable surface of a synchronised pair.
type View interface {
	// ScrollOffset is the current scroll position.
	ScrollOffset() int

	// SetScrollOffset moves the view to the given scroll position.
	SetScrollOffset(offset int)

	// ContentHeight is the total height of the scrollable content.
	ContentHeight() int

	// ViewportHeight is the height of the visible window.
	ViewportHeight() int
}

// Scheduler defers release to the next scheduling opportunity after the
// mirrored write. A nil scheduler means the host drives the release
// itself by calling Release once its event loop has turned over.
type Scheduler func(release func())

// propagation state machine.
type state int

const (
	stateIdle state = iota
	statePropagating
)

// Synchronizer mirrors scroll positions between a pair of views.
// The guard state is scoped to one pair; hosts with multiple
// simultaneous editors need one Synchronizer each.
type Synchronizer struct {
	mu       sync.Mutex
	schedule Scheduler
	enabled  bool
	both     bool
	st       state
	source   View
}

// New creates a synchronizer. Synchronisation starts enabled but will
// not propagate until SetBothVisible reports that both views are shown.
func New(schedule Scheduler) *Synchronizer {
	return &Synchronizer{
		schedule: schedule,
		enabled:  true,
	}
}

// SetEnabled turns synchronisation on or off.
func (s *Synchronizer) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}

// Enabled reports whether synchronisation is configured on.
func (s *Synchronizer) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// SetBothVisible records whether the active presentation mode shows
// both views simultaneously. Propagation is suppressed otherwise.
func (s *Synchronizer) SetBothVisible(both bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.both = both
}

// Propagating reports whether a mirrored write is in flight.
func (s *Synchronizer) Propagating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st == statePropagating
}

// OnScroll handles a scroll event from source and mirrors the
// proportional offset onto dest. Returns true if a mirrored write was
// applied. Events are discarded entirely, not deferred, while a
// previous propagation is still in flight; under rapid successive
// scrolling intermediate ratios may be dropped, and the last write
// wins.
func (s *Synchronizer) OnScroll(source, dest View) bool {
	s.mu.Lock()
	if !s.enabled || !s.both || s.st == statePropagating {
		s.mu.Unlock()
		return false
	}
	s.st = statePropagating
	s.source = source
	ratio := Ratio(source)
	s.mu.Unlock()

	dest.SetScrollOffset(TargetOffset(dest, ratio))

	if s.schedule != nil {
		s.schedule(s.Release)
	}
	return true
}

// Release returns the state machine to idle. Called on the next
// scheduling tick after a mirrored write, either by the injected
// scheduler or by the host. Releasing with no propagation in flight,
// or after the destination view is gone, is a no-op.
func (s *Synchronizer) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = stateIdle
	s.source = nil
}

// Ratio derives the fraction of scrollable distance travelled in v,
// clamped to [0,1]. A zero-height scrollable range yields 0 via the
// max(1, span) guard.
func Ratio(v View) float64 {
	span := v.ContentHeight() - v.ViewportHeight()
	if span < 1 {
		span = 1
	}
	ratio := float64(v.ScrollOffset()) / float64(span)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// TargetOffset translates a ratio into a scroll offset for v.
func TargetOffset(v View, ratio float64) int {
	span := v.ContentHeight() - v.ViewportHeight()
	if span < 0 {
		span = 0
	}
	return int(math.Round(ratio * float64(span)))
}
