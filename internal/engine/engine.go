package engine

import (
	"encoding/json"

	"github.com/drawdeck/drawdeck/engine-go/internal/config"
	"github.com/drawdeck/drawdeck/engine-go/internal/document"
)

// Engine is the geometry engine façade the frontend talks to. It owns the
// current board snapshot, camera, surface sizes and selection, and answers
// queries with JSON strings ready for the wasm boundary. All geometry math
// below it is pure; the engine only recomputes from the latest snapshot.
type Engine struct {
	doc *document.BoardDocument

	// Main canvas size in pixels, supplied by the host on resize.
	renderSurface Size

	// Overview (mini-map) size in pixels, fixed from config.
	overviewSurface Size

	params Params

	// Selection state (backend owns this)
	selection []string

	controller *Controller
}

// NewEngine creates an engine with built-in defaults.
func NewEngine() *Engine {
	return &Engine{
		renderSurface:   Size{Width: 800, Height: 600},
		overviewSurface: Size{Width: 200, Height: 140},
		params:          DefaultParams(),
		controller:      NewController(),
	}
}

// NewEngineFromConfig creates an engine with parameters from config.
func NewEngineFromConfig(cfg *config.Config) *Engine {
	e := NewEngine()
	e.overviewSurface = Size{Width: cfg.OverviewWidth, Height: cfg.OverviewHeight}
	e.params = Params{
		WorldPadding:   cfg.WorldPadding,
		FallbackWidth:  cfg.FallbackWidth,
		FallbackHeight: cfg.FallbackHeight,
	}
	return e
}

// --- Commands (frontend → backend) ---

// LoadDocument loads a board document from JSON, resetting selection.
func (e *Engine) LoadDocument(jsonData string) error {
	var doc document.BoardDocument
	if err := json.Unmarshal([]byte(jsonData), &doc); err != nil {
		return err
	}

	if doc.Camera.Zoom <= 0 {
		doc.Camera.Zoom = 1
	}

	e.doc = &doc
	e.selection = nil
	return nil
}

// UpdateDocument reloads the board from JSON while preserving the selection.
// Used when the frontend edits shapes during an open selection.
func (e *Engine) UpdateDocument(jsonData string) error {
	var doc document.BoardDocument
	if err := json.Unmarshal([]byte(jsonData), &doc); err != nil {
		return err
	}

	if doc.Camera.Zoom <= 0 {
		doc.Camera.Zoom = 1
	}

	e.doc = &doc
	return nil
}

// LoadSampleDocument loads the built-in sample board.
func (e *Engine) LoadSampleDocument(boardID string) {
	e.doc = document.NewSampleDocument(boardID)
	e.selection = nil
}

// SetCamera updates the camera state. A non-positive zoom is clamped to 1.
func (e *Engine) SetCamera(x, y, zoom float64) {
	if e.doc == nil {
		return
	}
	if zoom <= 0 {
		zoom = 1
	}
	e.doc.Camera = document.Camera{X: x, Y: y, Zoom: zoom}
}

// SetRenderSurface updates the main canvas pixel size.
func (e *Engine) SetRenderSurface(width, height float64) {
	e.renderSurface = Size{Width: width, Height: height}
}

// SetSelection sets the selected shape IDs.
func (e *Engine) SetSelection(ids []string) {
	e.selection = ids
}

// --- Queries (frontend ← backend) ---

// SelectionBounds returns the combined box of the selected shapes. ok is
// false when nothing selected contributes bounds.
func (e *Engine) SelectionBounds() (BoundingBox, bool) {
	if e.doc == nil || len(e.selection) == 0 {
		return BoundingBox{}, false
	}

	selected := make([]document.Shape, 0, len(e.selection))
	for _, id := range e.selection {
		for i := range e.doc.Shapes {
			if e.doc.Shapes[i].ID == id {
				selected = append(selected, e.doc.Shapes[i])
				break
			}
		}
	}

	return CombinedBounds(selected)
}

// GetSelectionBounds returns the selection box as JSON, or "null" when the
// selection has no bounds so the frontend can hide the outline.
func (e *Engine) GetSelectionBounds() string {
	bounds, ok := e.SelectionBounds()
	if !ok {
		return "null"
	}
	data, _ := json.Marshal(bounds)
	return string(data)
}

// Extent returns the current padded world extent.
func (e *Engine) Extent() BoundingBox {
	var shapes []document.Shape
	camera := document.Camera{Zoom: 1}
	if e.doc != nil {
		shapes = e.doc.Shapes
		camera = e.doc.Camera
	}
	return WorldExtent(shapes, camera, e.renderSurface, e.params)
}

// GetWorldExtent returns the current world extent as JSON.
func (e *Engine) GetWorldExtent() string {
	data, _ := json.Marshal(e.Extent())
	return string(data)
}

// RenderOverview compiles the overview frame and returns it as JSON.
func (e *Engine) RenderOverview() string {
	var shapes []document.Shape
	camera := document.Camera{Zoom: 1}
	if e.doc != nil {
		shapes = e.doc.Shapes
		camera = e.doc.Camera
	}

	overview := CompileOverview(shapes, camera, e.renderSurface, e.overviewSurface, e.params)
	data, _ := json.Marshal(overview)
	return string(data)
}

// --- Pointer events on the overview surface ---

// PointerDown begins an overview gesture at surface pixel (x, y).
func (e *Engine) PointerDown(x, y float64) {
	extent := e.Extent()
	mapping := NewMapping(extent, e.overviewSurface)

	camera := document.Camera{Zoom: 1}
	if e.doc != nil {
		camera = e.doc.Camera
	}
	viewport := ViewportWorldRect(camera, e.renderSurface)
	indicator := mapping.WorldBoxToSurface(viewport)

	e.controller.PointerDown(Point{X: x, Y: y}, mapping, indicator, viewport)
}

// PointerMove advances the gesture and returns the intent as JSON.
func (e *Engine) PointerMove(x, y float64) string {
	return intentJSON(e.controller.PointerMove(Point{X: x, Y: y}))
}

// PointerUp ends the gesture and returns the intent as JSON.
func (e *Engine) PointerUp(x, y float64) string {
	return intentJSON(e.controller.PointerUp(Point{X: x, Y: y}))
}

// PointerLeave cancels any gesture in progress.
func (e *Engine) PointerLeave() {
	e.controller.PointerLeave()
}

// intentJSON serializes an intent, collapsing no-ops to "null".
func intentJSON(intent Intent) string {
	if intent.Kind == IntentNone {
		return "null"
	}
	data, _ := json.Marshal(intent)
	return string(data)
}
