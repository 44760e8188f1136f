package engine

import (
	"math"
	"testing"
)

// testGestureSetup: extent 400x280 mapped onto a 200x140 overview (scale 0.5,
// no slack), camera at the origin over a 100x80 canvas, so the viewport is
// world [0,0]..[100,80] and the indicator surface [0,0]..[50,40].
func testGestureSetup() (Mapping, BoundingBox, BoundingBox) {
	extent := BoundingBox{MinX: 0, MinY: 0, MaxX: 400, MaxY: 280}
	m := NewMapping(extent, Size{Width: 200, Height: 140})
	viewport := BoundingBox{MinX: 0, MinY: 0, MaxX: 100, MaxY: 80}
	indicator := m.WorldBoxToSurface(viewport)
	return m, indicator, viewport
}

func TestClickOutsideIndicatorJumps(t *testing.T) {
	m, indicator, viewport := testGestureSetup()
	c := NewController()

	c.PointerDown(Point{X: 100, Y: 100}, m, indicator, viewport)
	intent := c.PointerUp(Point{X: 100, Y: 100})

	if intent.Kind != IntentJump {
		t.Fatalf("intent = %q, want jump", intent.Kind)
	}
	// Surface (100,100) at scale 0.5 is world (200,200).
	if math.Abs(intent.Target.X-200) > 1e-9 || math.Abs(intent.Target.Y-200) > 1e-9 {
		t.Errorf("jump target = %+v, want (200, 200)", intent.Target)
	}
	if intent.Gesture == "" {
		t.Error("jump intent missing gesture id")
	}
}

func TestDragIndicatorRecenters(t *testing.T) {
	m, indicator, viewport := testGestureSetup()
	c := NewController()

	// Grab the indicator 10px in from its top-left corner.
	c.PointerDown(Point{X: 10, Y: 10}, m, indicator, viewport)

	intent := c.PointerMove(Point{X: 60, Y: 35})
	if intent.Kind != IntentRecenter {
		t.Fatalf("intent = %q, want recenter", intent.Kind)
	}
	// New indicator top-left surface (50,25) -> world (100,50); recenter on
	// that plus half the 100x80 viewport.
	if math.Abs(intent.Target.X-150) > 1e-9 || math.Abs(intent.Target.Y-90) > 1e-9 {
		t.Errorf("recenter target = %+v, want (150, 90)", intent.Target)
	}

	// The grab offset keeps the indicator under the original grip point, so
	// a second move keeps emitting consistent targets.
	second := c.PointerMove(Point{X: 70, Y: 35})
	if second.Kind != IntentRecenter {
		t.Fatalf("second intent = %q, want recenter", second.Kind)
	}
	if math.Abs(second.Target.X-170) > 1e-9 {
		t.Errorf("second recenter X = %v, want 170", second.Target.X)
	}

	if intent.Gesture != second.Gesture {
		t.Error("gesture id changed mid-drag")
	}

	// Releasing ends the gesture without another intent.
	if up := c.PointerUp(Point{X: 70, Y: 35}); up.Kind != IntentNone {
		t.Errorf("pointer-up after drag emitted %q", up.Kind)
	}
	if after := c.PointerMove(Point{X: 90, Y: 35}); after.Kind != IntentNone {
		t.Errorf("move after release emitted %q", after.Kind)
	}
}

func TestMovementSuppressesClick(t *testing.T) {
	m, indicator, viewport := testGestureSetup()
	c := NewController()

	c.PointerDown(Point{X: 100, Y: 100}, m, indicator, viewport)

	if move := c.PointerMove(Point{X: 104, Y: 100}); move.Kind != IntentNone {
		t.Errorf("pressed-state move emitted %q", move.Kind)
	}

	// Drag wins over click: no jump on release.
	if up := c.PointerUp(Point{X: 104, Y: 100}); up.Kind != IntentNone {
		t.Errorf("moved gesture still jumped: %q", up.Kind)
	}
}

func TestPointerLeaveCancelsGesture(t *testing.T) {
	m, indicator, viewport := testGestureSetup()
	c := NewController()

	c.PointerDown(Point{X: 10, Y: 10}, m, indicator, viewport)
	c.PointerLeave()

	if intent := c.PointerMove(Point{X: 60, Y: 35}); intent.Kind != IntentNone {
		t.Errorf("move after leave emitted %q", intent.Kind)
	}
	if intent := c.PointerUp(Point{X: 60, Y: 35}); intent.Kind != IntentNone {
		t.Errorf("up after leave emitted %q", intent.Kind)
	}
}

func TestMoveWithoutDownIsIgnored(t *testing.T) {
	c := NewController()

	if intent := c.PointerMove(Point{X: 10, Y: 10}); intent.Kind != IntentNone {
		t.Errorf("idle move emitted %q", intent.Kind)
	}
	if intent := c.PointerUp(Point{X: 10, Y: 10}); intent.Kind != IntentNone {
		t.Errorf("idle up emitted %q", intent.Kind)
	}
}
