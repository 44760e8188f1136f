package engine

import (
	"encoding/json"
	"testing"

	"github.com/drawdeck/drawdeck/engine-go/internal/document"
)

func docJSON(t *testing.T, doc *document.BoardDocument) string {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	return string(data)
}

func TestLoadDocumentRejectsBadJSON(t *testing.T) {
	e := NewEngine()
	if err := e.LoadDocument("{not json"); err == nil {
		t.Error("LoadDocument accepted malformed JSON")
	}
}

func TestLoadDocumentClampsZoom(t *testing.T) {
	doc := document.NewEmptyDocument("board_test", "Test")
	doc.Camera.Zoom = 0

	e := NewEngine()
	if err := e.LoadDocument(docJSON(t, doc)); err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}

	// A zero zoom would divide the viewport rect by zero.
	extent := e.Extent()
	if extent.Width() <= 0 {
		t.Errorf("extent collapsed under zero zoom: %+v", extent)
	}
}

func TestSelectionBounds(t *testing.T) {
	doc := document.NewEmptyDocument("board_test", "Test")
	doc.Shapes = []document.Shape{
		newShape(document.ShapeTypeRect, 0, 0, document.RectData{Width: 50, Height: 50}),
		newShape(document.ShapeTypeRect, 100, 100, document.RectData{Width: 50, Height: 50}),
	}
	doc.Shapes[0].ID = "shape_a"
	doc.Shapes[1].ID = "shape_b"

	e := NewEngine()
	if err := e.LoadDocument(docJSON(t, doc)); err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}

	if got := e.GetSelectionBounds(); got != "null" {
		t.Errorf("no selection should yield null, got %q", got)
	}

	e.SetSelection([]string{"shape_a", "shape_b"})
	bounds, ok := e.SelectionBounds()
	if !ok {
		t.Fatal("SelectionBounds() found no bounds")
	}
	want := BoundingBox{MinX: 0, MinY: 0, MaxX: 150, MaxY: 150}
	if bounds != want {
		t.Errorf("SelectionBounds() = %+v, want %+v", bounds, want)
	}

	e.SetSelection([]string{"shape_missing"})
	if _, ok := e.SelectionBounds(); ok {
		t.Error("selection of unknown ids reported bounds")
	}
}

func TestUpdateDocumentPreservesSelection(t *testing.T) {
	doc := document.NewEmptyDocument("board_test", "Test")
	doc.Shapes = []document.Shape{
		newShape(document.ShapeTypeRect, 0, 0, document.RectData{Width: 50, Height: 50}),
	}
	doc.Shapes[0].ID = "shape_a"

	e := NewEngine()
	if err := e.LoadDocument(docJSON(t, doc)); err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	e.SetSelection([]string{"shape_a"})

	doc.Shapes[0].X = 25
	if err := e.UpdateDocument(docJSON(t, doc)); err != nil {
		t.Fatalf("UpdateDocument: %v", err)
	}

	bounds, ok := e.SelectionBounds()
	if !ok {
		t.Fatal("selection lost across UpdateDocument")
	}
	if bounds.MinX != 25 {
		t.Errorf("selection bounds stale: MinX = %v, want 25", bounds.MinX)
	}
}

func TestRenderOverviewSample(t *testing.T) {
	e := NewEngine()
	e.LoadSampleDocument("board_sample")
	e.SetRenderSurface(800, 600)

	var overview Overview
	if err := json.Unmarshal([]byte(e.RenderOverview()), &overview); err != nil {
		t.Fatalf("RenderOverview produced invalid JSON: %v", err)
	}

	if len(overview.Commands) != 7 {
		t.Errorf("sample board compiled %d commands, want 7", len(overview.Commands))
	}

	surface := Size{Width: 200, Height: 140}
	for _, cmd := range overview.Commands {
		switch cmd.Op {
		case "box":
			if cmd.Box == nil {
				t.Errorf("box command %q missing box", cmd.ShapeID)
				continue
			}
			if cmd.Box.MinX < 0 || cmd.Box.MaxX > surface.Width || cmd.Box.MinY < 0 || cmd.Box.MaxY > surface.Height {
				t.Errorf("box command %q outside surface: %+v", cmd.ShapeID, cmd.Box)
			}
		case "polyline":
			if len(cmd.Points) < 4 || len(cmd.Points)%2 != 0 {
				t.Errorf("polyline command %q has %d coords", cmd.ShapeID, len(cmd.Points))
			}
		default:
			t.Errorf("unexpected op %q", cmd.Op)
		}
	}

	ind := overview.Indicator
	if ind.Width() <= 0 || ind.Height() <= 0 {
		t.Errorf("viewport indicator degenerate: %+v", ind)
	}
}

func TestRenderOverviewZOrder(t *testing.T) {
	doc := document.NewEmptyDocument("board_test", "Test")
	back := newShape(document.ShapeTypeRect, 0, 0, document.RectData{Width: 10, Height: 10})
	back.ID, back.Z = "shape_back", 0
	front := newShape(document.ShapeTypeRect, 5, 5, document.RectData{Width: 10, Height: 10})
	front.ID, front.Z = "shape_front", 1
	doc.Shapes = []document.Shape{front, back}

	e := NewEngine()
	if err := e.LoadDocument(docJSON(t, doc)); err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}

	var overview Overview
	if err := json.Unmarshal([]byte(e.RenderOverview()), &overview); err != nil {
		t.Fatalf("RenderOverview produced invalid JSON: %v", err)
	}

	if len(overview.Commands) != 2 {
		t.Fatalf("compiled %d commands, want 2", len(overview.Commands))
	}
	if overview.Commands[0].ShapeID != "shape_back" || overview.Commands[1].ShapeID != "shape_front" {
		t.Errorf("commands not in z order: %q then %q",
			overview.Commands[0].ShapeID, overview.Commands[1].ShapeID)
	}
}

func TestPointerGestureThroughEngine(t *testing.T) {
	// Big content, small canvas: the viewport indicator sits in the overview's
	// top-left corner, leaving the overview center free for a click.
	doc := document.NewEmptyDocument("board_test", "Test")
	doc.Shapes = []document.Shape{
		newShape(document.ShapeTypeRect, 0, 0, document.RectData{Width: 1000, Height: 700}),
	}

	e := NewEngine()
	if err := e.LoadDocument(docJSON(t, doc)); err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	e.SetRenderSurface(100, 80)

	extent := e.Extent()

	// Clicking the overview's exact center must jump to the extent's center.
	e.PointerDown(100, 70)
	raw := e.PointerUp(100, 70)
	if raw == "null" {
		t.Fatal("center click emitted no intent")
	}

	var intent Intent
	if err := json.Unmarshal([]byte(raw), &intent); err != nil {
		t.Fatalf("intent JSON invalid: %v", err)
	}
	if intent.Kind != IntentJump {
		t.Fatalf("intent = %q, want jump", intent.Kind)
	}
	if !pointNear(intent.Target, extent.Center(), 1e-6) {
		t.Errorf("center click target = %+v, want extent center %+v", intent.Target, extent.Center())
	}

	// Grabbing the indicator and dragging emits recenter intents instead.
	e.PointerDown(15, 15)
	moved := e.PointerMove(40, 40)
	if moved == "null" {
		t.Fatal("indicator drag emitted no intent")
	}
	if err := json.Unmarshal([]byte(moved), &intent); err != nil {
		t.Fatalf("intent JSON invalid: %v", err)
	}
	if intent.Kind != IntentRecenter {
		t.Errorf("drag intent = %q, want recenter", intent.Kind)
	}
	if up := e.PointerUp(40, 40); up != "null" {
		t.Errorf("drag release emitted %q", up)
	}
}
