package scrollsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeView is a scrollable surface with fixed geometry.
type fakeView struct {
	offset   int
	content  int
	viewport int
	writes   int
}

func (v *fakeView) ScrollOffset() int { return v.offset }

func (v *fakeView) SetScrollOffset(offset int) {
	v.offset = offset
	v.writes++
}

func (v *fakeView) ContentHeight() int  { return v.content }
func (v *fakeView) ViewportHeight() int { return v.viewport }

func newPair() (*fakeView, *fakeView, *Synchronizer) {
	editor := &fakeView{content: 200, viewport: 40}
	preview := &fakeView{content: 400, viewport: 40}
	s := New(nil)
	s.SetBothVisible(true)
	return editor, preview, s
}

func TestOnScroll_Proportional(t *testing.T) {
	editor, preview, s := newPair()
	editor.offset = 80 // halfway through a 160-line scroll range

	applied := s.OnScroll(editor, preview)

	require.True(t, applied)
	assert.Equal(t, 180, preview.offset, "half of the preview's 360-line range")
}

func TestOnScroll_Bidirectional(t *testing.T) {
	editor, preview, s := newPair()
	preview.offset = 360

	applied := s.OnScroll(preview, editor)

	require.True(t, applied)
	assert.Equal(t, 160, editor.offset)
}

func TestOnScroll_GuardDiscardsEcho(t *testing.T) {
	editor, preview, s := newPair()
	editor.offset = 80

	require.True(t, s.OnScroll(editor, preview))
	assert.True(t, s.Propagating())

	// The destination's echo event arrives before the next tick.
	echoApplied := s.OnScroll(preview, editor)

	assert.False(t, echoApplied)
	assert.Zero(t, editor.writes, "echo must not write back to the source")

	s.Release()
	assert.False(t, s.Propagating())
	require.True(t, s.OnScroll(preview, editor))
}

func TestOnScroll_RapidEventsLastWriteWins(t *testing.T) {
	editor, preview, s := newPair()

	editor.offset = 40
	require.True(t, s.OnScroll(editor, preview))
	editor.offset = 80
	assert.False(t, s.OnScroll(editor, preview), "intermediate ratio dropped while in flight")

	s.Release()
	require.True(t, s.OnScroll(editor, preview))
	assert.Equal(t, 180, preview.offset)
}

func TestOnScroll_DisabledAndSingleView(t *testing.T) {
	editor, preview, s := newPair()
	editor.offset = 80

	s.SetEnabled(false)
	assert.False(t, s.OnScroll(editor, preview))

	s.SetEnabled(true)
	s.SetBothVisible(false)
	assert.False(t, s.OnScroll(editor, preview))

	assert.Zero(t, preview.writes)
}

func TestOnScroll_SchedulerReleasesGuard(t *testing.T) {
	editor := &fakeView{content: 100, viewport: 20, offset: 40}
	preview := &fakeView{content: 100, viewport: 20}

	var deferred func()
	s := New(func(release func()) { deferred = release })
	s.SetBothVisible(true)

	require.True(t, s.OnScroll(editor, preview))
	require.NotNil(t, deferred, "release must be handed to the scheduler")
	assert.True(t, s.Propagating())

	// Next tick.
	deferred()
	assert.False(t, s.Propagating())
}

func TestRelease_Idempotent(t *testing.T) {
	_, _, s := newPair()

	s.Release()
	s.Release()

	assert.False(t, s.Propagating())
}

func TestRatio_ZeroScrollRange(t *testing.T) {
	v := &fakeView{content: 10, viewport: 40, offset: 0}

	assert.Zero(t, Ratio(v))
}

func TestRatio_Clamped(t *testing.T) {
	v := &fakeView{content: 100, viewport: 20, offset: 500}
	assert.Equal(t, 1.0, Ratio(v))

	v.offset = -5
	assert.Equal(t, 0.0, Ratio(v))
}

func TestRoundTrip_Idempotence(t *testing.T) {
	// With matching destination geometry, applying the computed offset
	// and re-deriving its ratio recovers the source ratio exactly.
	for _, offset := range []int{0, 1, 37, 80, 159, 160} {
		source := &fakeView{content: 200, viewport: 40, offset: offset}
		dest := &fakeView{content: 200, viewport: 40}

		ratio := Ratio(source)
		dest.SetScrollOffset(TargetOffset(dest, ratio))

		assert.InDelta(t, ratio, Ratio(dest), 1e-9, "offset %d", offset)
	}
}
