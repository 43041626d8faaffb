package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dragHost has a committed offset of 25% at position 1 and a dragged item
// share of 30%.
func dragHost(t *testing.T, o Override) (*Slider, *fakeHost) {
	t.Helper()
	h := newFakeHost(100, 25, 30, 45)
	o.AutoWidth = ptr(true)
	o.StartIndex = ptr(2)
	s := newSlider(t, h, o)
	require.InDelta(t, 25, s.Offset(), tolerance)
	return s, h
}

func TestDrag_PastHalfShareCommits(t *testing.T) {
	s, h := dragHost(t, Override{})

	require.True(t, s.BeginDrag(1, 500))
	assert.False(t, h.transition, "live preview is not animated")

	s.DragTo(480)
	assert.InDelta(t, 20, s.DragIncrement(), tolerance)
	assert.InDelta(t, -45, h.offset, tolerance)

	assert.Equal(t, DragCommitted, s.EndDrag())
	assert.True(t, h.transition)
	assert.Equal(t, 2, s.Current())
	assert.InDelta(t, -55, h.offset, tolerance)
	assert.False(t, s.Dragging())
}

func TestDrag_BelowHalfShareSnapsBack(t *testing.T) {
	s, h := dragHost(t, Override{})

	require.True(t, s.BeginDrag(1, 500))
	s.DragTo(490)
	assert.InDelta(t, 10, s.DragIncrement(), tolerance)

	assert.Equal(t, DragSnapBack, s.EndDrag())
	assert.Equal(t, 1, s.Current())
	assert.InDelta(t, -25, h.offset, tolerance)
	assert.InDelta(t, 25, s.Offset(), tolerance)
}

func TestDrag_BackwardCommits(t *testing.T) {
	s, _ := dragHost(t, Override{})

	require.True(t, s.BeginDrag(1, 500))
	s.DragTo(515) // increment -15 is exactly minus half the share
	assert.Equal(t, DragCommitted, s.EndDrag())
	assert.Equal(t, 0, s.Current())
}

func TestDrag_ExactlyHalfCommits(t *testing.T) {
	s, _ := dragHost(t, Override{})

	require.True(t, s.BeginDrag(1, 500))
	s.DragTo(485)
	assert.Equal(t, DragCommitted, s.EndDrag())
	assert.Equal(t, 2, s.Current())
}

func TestDrag_PastLastItemSnapsBackWhenClamped(t *testing.T) {
	s, h := dragHost(t, Override{})
	s.GoTo(2)

	require.True(t, s.BeginDrag(2, 100))
	s.DragTo(50)
	assert.Equal(t, DragSnapBack, s.EndDrag())
	assert.Equal(t, 2, s.Current())
	assert.InDelta(t, -55, h.offset, tolerance)
}

func TestDrag_PastLastItemWrapsWithRewind(t *testing.T) {
	s, _ := dragHost(t, Override{IsRewind: ptr(true)})
	s.GoTo(2)

	require.True(t, s.BeginDrag(2, 100))
	s.DragTo(50)
	assert.Equal(t, DragCommitted, s.EndDrag())
	assert.Equal(t, 0, s.Current())
}

func TestDrag_SuppressesOtherNavigation(t *testing.T) {
	s, _ := dragHost(t, Override{IsAutoplay: ptr(true)})

	require.True(t, s.BeginDrag(1, 500))
	assert.True(t, s.Interacting())
	assert.False(t, s.Next())
	assert.False(t, s.GoToStop(0))
	assert.Equal(t, TickSkippedBusy, s.AutoplayTick(s.AutoplayGeneration(), nil))
	assert.Equal(t, 1, s.Current())

	assert.False(t, s.BeginDrag(0, 10), "one session at a time")
	s.EndDrag()
	assert.True(t, s.Next())
}

func TestDrag_Refused(t *testing.T) {
	s, _ := dragHost(t, Override{IsMouseDrag: ptr(false)})
	assert.False(t, s.BeginDrag(1, 0))

	s, _ = dragHost(t, Override{})
	assert.False(t, s.BeginDrag(3, 0))
	assert.False(t, s.BeginDrag(-1, 0))
	assert.Equal(t, DragNone, s.EndDrag())
}

func TestDrag_Cancel(t *testing.T) {
	s, h := dragHost(t, Override{})

	require.True(t, s.BeginDrag(1, 500))
	s.DragTo(400)
	s.CancelDrag()
	assert.False(t, s.Dragging())
	assert.InDelta(t, -25, h.offset, tolerance)
	assert.Equal(t, 1, s.Current())
}
