package engine

// minExtentSize clamps a zero-size extent axis before the scale division.
// A board whose content is a single point still gets a finite mapping.
const minExtentSize = 1.0

// Mapping is the affine transform between world space and the overview
// surface: a uniform scale that fits the extent into the surface while
// preserving aspect ratio, plus a centering offset on the slack axis.
// It is derived per frame from the current extent and never cached across
// content or camera changes.
type Mapping struct {
	Extent  BoundingBox
	Surface Size
	Scale   float64
	OffsetX float64
	OffsetY float64

	forward Matrix2D
	inverse Matrix2D
}

// NewMapping derives the world↔surface mapping for the given extent and
// overview surface size.
func NewMapping(extent BoundingBox, surface Size) Mapping {
	ew := extent.Width()
	if ew < minExtentSize {
		ew = minExtentSize
	}
	eh := extent.Height()
	if eh < minExtentSize {
		eh = minExtentSize
	}

	scale := min(surface.Width/ew, surface.Height/eh)
	offsetX := (surface.Width - ew*scale) / 2
	offsetY := (surface.Height - eh*scale) / 2

	forward := Translate(offsetX, offsetY).
		Multiply(Scale(scale, scale)).
		Multiply(Translate(-extent.MinX, -extent.MinY))

	return Mapping{
		Extent:  extent,
		Surface: surface,
		Scale:   scale,
		OffsetX: offsetX,
		OffsetY: offsetY,
		forward: forward,
		inverse: forward.Invert(),
	}
}

// WorldToSurface maps a world-space point to overview-surface pixels.
func (m Mapping) WorldToSurface(p Point) Point {
	x, y := m.forward.TransformPoint(p.X, p.Y)
	return Point{X: x, Y: y}
}

// SurfaceToWorld maps an overview-surface pixel back to world space. This is
// the exact inverse of WorldToSurface up to floating-point rounding, so
// click-to-navigate lands on the clicked world point.
func (m Mapping) SurfaceToWorld(q Point) Point {
	x, y := m.inverse.TransformPoint(q.X, q.Y)
	return Point{X: x, Y: y}
}

// WorldBoxToSurface maps a world-space box to overview-surface pixels.
func (m Mapping) WorldBoxToSurface(b BoundingBox) BoundingBox {
	return m.forward.TransformBox(b)
}
