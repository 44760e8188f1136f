package engine

import (
	"github.com/drawdeck/drawdeck/engine-go/internal/document"
)

// Params holds the world-extent tuning knobs, normally filled from config.
type Params struct {
	// WorldPadding is added on all four sides of the extent so content never
	// touches the overview's edge.
	WorldPadding float64

	// FallbackWidth/FallbackHeight define the origin-centered region the
	// extent falls back to when the board is empty.
	FallbackWidth  float64
	FallbackHeight float64
}

// DefaultParams mirrors the config package defaults for callers that don't
// load config (tests, wasm without environment).
func DefaultParams() Params {
	return Params{
		WorldPadding:   40,
		FallbackWidth:  1000,
		FallbackHeight: 700,
	}
}

// CombinedBounds reduces the shapes' transformed bounding boxes to one
// enclosing box. The second return is false when nothing contributed bounds,
// so callers can hide a selection outline instead of drawing a zero box at
// the origin. The reduction is order-independent and a single shape yields
// exactly its own box. Invisible shapes and strokes with fewer than 2 sample
// points contribute nothing.
func CombinedBounds(shapes []document.Shape) (BoundingBox, bool) {
	var result BoundingBox
	found := false

	for i := range shapes {
		s := &shapes[i]
		if !s.Visible {
			continue
		}
		if s.Type == document.ShapeTypeStroke && strokeSampleCount(s) < 2 {
			continue
		}

		b := TransformedShapeBounds(s)
		if !found {
			result = b
			found = true
		} else {
			result = result.Union(b)
		}
	}

	return result, found
}

// ViewportWorldRect converts the camera state into the world-space rectangle
// visible on the main render surface.
func ViewportWorldRect(camera document.Camera, surface Size) BoundingBox {
	return BoxFromRect(
		-camera.X/camera.Zoom,
		-camera.Y/camera.Zoom,
		surface.Width/camera.Zoom,
		surface.Height/camera.Zoom,
	)
}

// WorldExtent returns the padded box enclosing all visible content plus the
// camera's world-space viewport. An empty board falls back to a fixed region
// centered on the origin so the overview always has something to map; the
// viewport is not unioned in that case.
func WorldExtent(shapes []document.Shape, camera document.Camera, surface Size, p Params) BoundingBox {
	extent, ok := CombinedBounds(shapes)
	if !ok {
		extent = BoundingBox{
			MinX: -p.FallbackWidth / 2,
			MinY: -p.FallbackHeight / 2,
			MaxX: p.FallbackWidth / 2,
			MaxY: p.FallbackHeight / 2,
		}
		return extent.Expand(p.WorldPadding)
	}

	extent = extent.Union(ViewportWorldRect(camera, surface))
	return extent.Expand(p.WorldPadding)
}
