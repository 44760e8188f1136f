package engine

import (
	"encoding/json"
	"math"

	"github.com/drawdeck/drawdeck/engine-go/internal/document"
)

const (
	// defaultArrowheadSize pads a bare arrow's line box so the head geometry
	// is covered when the document doesn't specify a head size.
	defaultArrowheadSize = 10

	// defaultShapeSize is the edge length of the fallback box for shape kinds
	// the engine doesn't recognize. Unknown kinds degrade to this instead of
	// erroring so newer documents still aggregate and render an overview.
	defaultShapeSize = 100

	// Text boxes are estimated from character count, not measured glyphs:
	// width ≈ chars * fontSize * 0.6, height ≈ fontSize * 1.2. Close enough
	// for overview and selection math; real metrics live in the frontend.
	textWidthPerChar = 0.6
	textLineHeight   = 1.2
)

// ShapeBounds returns the minimal axis-aligned bounding box of a shape's
// untransformed geometry. It is total over shape kinds and never fails:
// unknown kinds get a fixed-size box at the shape's anchor, and NaN/Inf
// coordinates propagate into the result untouched.
func ShapeBounds(s *document.Shape) BoundingBox {
	switch s.Type {
	case document.ShapeTypeRect:
		var d document.RectData
		if err := json.Unmarshal(s.Data, &d); err != nil {
			break
		}
		return BoxFromRect(s.X, s.Y, d.Width, d.Height)

	case document.ShapeTypeCircle:
		var d document.CircleData
		if err := json.Unmarshal(s.Data, &d); err != nil {
			break
		}
		return BoundingBox{
			MinX: s.X - d.Radius,
			MinY: s.Y - d.Radius,
			MaxX: s.X + d.Radius,
			MaxY: s.Y + d.Radius,
		}

	case document.ShapeTypeEllipse:
		var d document.EllipseData
		if err := json.Unmarshal(s.Data, &d); err != nil {
			break
		}
		return BoundingBox{
			MinX: s.X - d.RX,
			MinY: s.Y - d.RY,
			MaxX: s.X + d.RX,
			MaxY: s.Y + d.RY,
		}

	case document.ShapeTypeLine:
		var d document.LineData
		if err := json.Unmarshal(s.Data, &d); err != nil {
			break
		}
		return BoxFromCorners(d.X1, d.Y1, d.X2, d.Y2)

	case document.ShapeTypeArrow:
		var d document.ArrowData
		if err := json.Unmarshal(s.Data, &d); err != nil {
			break
		}
		head := d.HeadSize
		if head == 0 {
			head = defaultArrowheadSize
		}
		return BoxFromCorners(d.X1, d.Y1, d.X2, d.Y2).Expand(head)

	case document.ShapeTypeTriangle:
		var d document.TriangleData
		if err := json.Unmarshal(s.Data, &d); err != nil || len(d.Points) == 0 {
			break
		}
		b := BoundingBox{MinX: d.Points[0].X, MinY: d.Points[0].Y, MaxX: d.Points[0].X, MaxY: d.Points[0].Y}
		for _, p := range d.Points[1:] {
			b.MinX = math.Min(b.MinX, p.X)
			b.MinY = math.Min(b.MinY, p.Y)
			b.MaxX = math.Max(b.MaxX, p.X)
			b.MaxY = math.Max(b.MaxY, p.Y)
		}
		return b

	case document.ShapeTypeStroke:
		var d document.StrokeData
		if err := json.Unmarshal(s.Data, &d); err != nil {
			break
		}
		if len(d.Points) < 2 {
			// Degenerate stroke: zero box at the anchor. The aggregator skips
			// strokes with fewer than 2 sample points entirely.
			return BoxFromRect(s.X, s.Y, 0, 0)
		}
		b := BoundingBox{MinX: d.Points[0], MinY: d.Points[1], MaxX: d.Points[0], MaxY: d.Points[1]}
		for i := 2; i+1 < len(d.Points); i += 2 {
			b.MinX = math.Min(b.MinX, d.Points[i])
			b.MinY = math.Min(b.MinY, d.Points[i+1])
			b.MaxX = math.Max(b.MaxX, d.Points[i])
			b.MaxY = math.Max(b.MaxY, d.Points[i+1])
		}
		return b

	case document.ShapeTypeText:
		var d document.TextData
		if err := json.Unmarshal(s.Data, &d); err != nil {
			break
		}
		w := float64(len([]rune(d.Content))) * d.FontSize * textWidthPerChar
		h := d.FontSize * textLineHeight
		return BoxFromRect(s.X, s.Y, w, h)
	}

	// Unknown kind or undecodable payload: fixed-size box at the anchor.
	return BoxFromRect(s.X, s.Y, defaultShapeSize, defaultShapeSize)
}

// TransformedShapeBounds returns the axis-aligned bounding box of the shape
// after its rotation and scale are applied about the untransformed box's own
// center. With an identity transform the untransformed box is returned as-is,
// so the unrotated path stays numerically exact. For rotated shapes the
// result is the true minimal AABB of the rotated box: never smaller than the
// shape, possibly larger than a non-rectangular shape's silhouette.
func TransformedShapeBounds(s *document.Shape) BoundingBox {
	b := ShapeBounds(s)

	t := s.Transform
	if t.R == 0 && t.SX == 1 && t.SY == 1 {
		return b
	}

	m := AboutPoint(t.R, t.SX, t.SY, b.CenterX(), b.CenterY())
	return m.TransformBox(b)
}

// strokeSampleCount returns how many complete x,y sample pairs a stroke
// shape carries, or 0 for non-strokes and undecodable payloads.
func strokeSampleCount(s *document.Shape) int {
	if s.Type != document.ShapeTypeStroke {
		return 0
	}
	var d document.StrokeData
	if err := json.Unmarshal(s.Data, &d); err != nil {
		return 0
	}
	return len(d.Points) / 2
}
