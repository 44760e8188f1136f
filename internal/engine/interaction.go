package engine

import "github.com/google/uuid"

// gestureState is the overview pointer state machine.
type gestureState int

const (
	// gestureIdle: no button held.
	gestureIdle gestureState = iota
	// gesturePressed: button went down outside the viewport indicator; a
	// click candidate until the pointer moves.
	gesturePressed
	// gestureDragging: button went down inside the viewport indicator and
	// the indicator follows the pointer.
	gestureDragging
)

// IntentKind tags the navigation intents the controller emits for the
// host's camera controller.
type IntentKind string

const (
	IntentNone     IntentKind = ""
	IntentJump     IntentKind = "jump"
	IntentRecenter IntentKind = "recenter"
)

// Intent is a world-space navigation request. Target is the world point the
// camera should center on. Gesture is a short correlation ID shared by all
// intents of one pointer gesture so the host can coalesce them.
type Intent struct {
	Kind    IntentKind `json:"kind"`
	Gesture string     `json:"gesture,omitempty"`
	Target  Point      `json:"target"`
}

func noIntent() Intent { return Intent{Kind: IntentNone} }

// Controller turns overview-surface pointer events into navigation intents.
// It only holds per-gesture state; everything about the world is captured
// from the mapping snapshot passed at pointer-down.
type Controller struct {
	state   gestureState
	gesture string
	moved   bool

	// Snapshot from pointer-down.
	mapping Mapping
	// Pointer offset from the indicator's top-left in surface pixels, so the
	// indicator doesn't jump to center under the cursor when grabbed.
	grabDX, grabDY float64
	// Viewport size in world units, for recentering on the dragged rect.
	viewportW, viewportH float64
}

func NewController() *Controller {
	return &Controller{}
}

// PointerDown starts a gesture. indicator is the viewport-indicator rect in
// surface pixels, viewport the camera's rect in world units; both are
// captured for the rest of the gesture. Down itself never emits an intent.
func (c *Controller) PointerDown(pos Point, m Mapping, indicator BoundingBox, viewport BoundingBox) {
	c.gesture = uuid.New().String()[:8]
	c.mapping = m
	c.moved = false

	if indicator.Contains(pos.X, pos.Y) {
		c.state = gestureDragging
		c.grabDX = pos.X - indicator.MinX
		c.grabDY = pos.Y - indicator.MinY
		c.viewportW = viewport.Width()
		c.viewportH = viewport.Height()
		return
	}

	c.state = gesturePressed
}

// PointerMove updates the gesture. While dragging it emits a recenter intent
// at the dragged viewport's new world center; any movement during a pressed
// gesture converts it to a drag and suppresses the click-navigate on up.
func (c *Controller) PointerMove(pos Point) Intent {
	switch c.state {
	case gestureDragging:
		c.moved = true
		topLeft := c.mapping.SurfaceToWorld(Point{
			X: pos.X - c.grabDX,
			Y: pos.Y - c.grabDY,
		})
		return Intent{
			Kind:    IntentRecenter,
			Gesture: c.gesture,
			Target: Point{
				X: topLeft.X + c.viewportW/2,
				Y: topLeft.Y + c.viewportH/2,
			},
		}

	case gesturePressed:
		c.moved = true
	}

	return noIntent()
}

// PointerUp ends the gesture. A press that never moved is a click and emits
// a jump intent at the clicked world point; drags emit nothing further.
func (c *Controller) PointerUp(pos Point) Intent {
	state, moved := c.state, c.moved
	c.state = gestureIdle

	if state == gesturePressed && !moved {
		return Intent{
			Kind:    IntentJump,
			Gesture: c.gesture,
			Target:  c.mapping.SurfaceToWorld(pos),
		}
	}

	return noIntent()
}

// PointerLeave cancels the gesture when the pointer exits the overview.
func (c *Controller) PointerLeave() {
	c.state = gestureIdle
	c.moved = false
}
