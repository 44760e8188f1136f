package engine

import "math"

// Point is a position in either world or overview-surface coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a surface's pixel dimensions.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BoundingBox is an axis-aligned bounding box. Width, height and center are
// always derived from the min/max corners, never stored. A zero-size box is
// legal (a zero-length line has one).
type BoundingBox struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

func (b BoundingBox) Width() float64   { return b.MaxX - b.MinX }
func (b BoundingBox) Height() float64  { return b.MaxY - b.MinY }
func (b BoundingBox) CenterX() float64 { return (b.MinX + b.MaxX) / 2 }
func (b BoundingBox) CenterY() float64 { return (b.MinY + b.MaxY) / 2 }

// Center returns the center point of the box.
func (b BoundingBox) Center() Point {
	return Point{X: b.CenterX(), Y: b.CenterY()}
}

// Contains checks if a point is inside the box.
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Union returns the smallest box containing both boxes. Degenerate boxes
// still participate; only the accumulator in CombinedBounds decides whether
// there are bounds at all.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

// Expand grows the box by the given margin on all four sides.
func (b BoundingBox) Expand(margin float64) BoundingBox {
	return BoundingBox{
		MinX: b.MinX - margin,
		MinY: b.MinY - margin,
		MaxX: b.MaxX + margin,
		MaxY: b.MaxY + margin,
	}
}

// BoxFromCorners returns the axis-aligned box spanned by two opposite corners
// given in any order.
func BoxFromCorners(x1, y1, x2, y2 float64) BoundingBox {
	return BoundingBox{
		MinX: math.Min(x1, x2),
		MinY: math.Min(y1, y2),
		MaxX: math.Max(x1, x2),
		MaxY: math.Max(y1, y2),
	}
}

// BoxFromRect returns the box for a top-left anchored rectangle.
func BoxFromRect(x, y, width, height float64) BoundingBox {
	return BoundingBox{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}
