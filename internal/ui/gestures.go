package ui

import (
	"fyne.io/fyne/v2"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
)

// DefaultSwipeThreshold is the drag distance, in canvas units, that counts as a swipe
const DefaultSwipeThreshold float32 = 80.0

// SwipeTracker accumulates drag events and classifies them on release
type SwipeTracker struct {
	threshold float32
	dx, dy    float32
}

// NewSwipeTracker creates a tracker with the given threshold
func NewSwipeTracker(threshold float32) *SwipeTracker {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &SwipeTracker{threshold: threshold}
}

// Drag records one drag step
func (st *SwipeTracker) Drag(event *fyne.DragEvent) {
	st.dx += event.Dragged.DX
	st.dy += event.Dragged.DY
}

// Offset returns the accumulated drag distance
func (st *SwipeTracker) Offset() fyne.Delta {
	return fyne.NewDelta(st.dx, st.dy)
}

// End classifies the gesture and resets the tracker
func (st *SwipeTracker) End() GestureType {
	dx, dy := st.dx, st.dy
	st.dx, st.dy = 0, 0

	if dx*dx+dy*dy < st.threshold*st.threshold {
		return GestureNone
	}
	return detectSwipeDirection(dx, dy)
}

// detectSwipeDirection determines the direction of a swipe gesture
func detectSwipeDirection(dx, dy float32) GestureType {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	// Determine primary direction
	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}
