package engine

import (
	"encoding/json"
	"sort"

	"github.com/drawdeck/drawdeck/engine-go/internal/document"
)

// OverviewCommand is one drawing operation for the frontend's overview
// renderer, with all geometry already in overview-surface pixels.
type OverviewCommand struct {
	Op      string       `json:"op"`                // "box" or "polyline"
	ShapeID string       `json:"shapeId,omitempty"` // for hit correlation
	Box     *BoundingBox `json:"box,omitempty"`     // for "box" ops
	Points  []float64    `json:"points,omitempty"`  // flat x,y pairs for "polyline" ops
	Fill    string       `json:"fill,omitempty"`
	Stroke  string       `json:"stroke,omitempty"`
	Opacity float64      `json:"opacity,omitempty"`
}

// Overview is the complete overview frame: per-shape geometry in painter's
// order plus the viewport indicator, everything in surface pixels.
type Overview struct {
	Commands  []OverviewCommand `json:"commands"`
	Indicator BoundingBox       `json:"indicator"`
	Extent    BoundingBox       `json:"extent"`
	Scale     float64           `json:"scale"`
}

// CompileOverview projects every visible shape and the camera viewport into
// overview-surface coordinates. Commands come out in z order, back to front.
func CompileOverview(shapes []document.Shape, camera document.Camera, surface Size, overviewSurface Size, p Params) Overview {
	extent := WorldExtent(shapes, camera, surface, p)
	mapping := NewMapping(extent, overviewSurface)

	ordered := make([]*document.Shape, 0, len(shapes))
	for i := range shapes {
		if shapes[i].Visible {
			ordered = append(ordered, &shapes[i])
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Z < ordered[j].Z
	})

	commands := make([]OverviewCommand, 0, len(ordered))
	for _, s := range ordered {
		if cmd, ok := compileShape(s, mapping); ok {
			commands = append(commands, cmd)
		}
	}

	return Overview{
		Commands:  commands,
		Indicator: mapping.WorldBoxToSurface(ViewportWorldRect(camera, surface)),
		Extent:    extent,
		Scale:     mapping.Scale,
	}
}

// compileShape produces the overview geometry for a single shape. Line-like
// shapes keep their endpoints as a polyline; everything else is reduced to
// its transformed box, which reads fine at overview scale.
func compileShape(s *document.Shape, m Mapping) (OverviewCommand, bool) {
	switch s.Type {
	case document.ShapeTypeLine, document.ShapeTypeArrow:
		var d document.LineData
		if err := json.Unmarshal(s.Data, &d); err != nil {
			break
		}
		p1 := m.WorldToSurface(Point{X: d.X1, Y: d.Y1})
		p2 := m.WorldToSurface(Point{X: d.X2, Y: d.Y2})
		return OverviewCommand{
			Op:      "polyline",
			ShapeID: s.ID,
			Points:  []float64{p1.X, p1.Y, p2.X, p2.Y},
			Stroke:  s.Style.Stroke,
			Opacity: s.Style.Opacity,
		}, true

	case document.ShapeTypeStroke:
		if strokeSampleCount(s) < 2 {
			return OverviewCommand{}, false
		}
		var d document.StrokeData
		if err := json.Unmarshal(s.Data, &d); err != nil {
			break
		}
		points := make([]float64, 0, len(d.Points))
		for i := 0; i+1 < len(d.Points); i += 2 {
			p := m.WorldToSurface(Point{X: d.Points[i], Y: d.Points[i+1]})
			points = append(points, p.X, p.Y)
		}
		return OverviewCommand{
			Op:      "polyline",
			ShapeID: s.ID,
			Points:  points,
			Stroke:  s.Style.Stroke,
			Opacity: s.Style.Opacity,
		}, true
	}

	box := m.WorldBoxToSurface(TransformedShapeBounds(s))
	return OverviewCommand{
		Op:      "box",
		ShapeID: s.ID,
		Box:     &box,
		Fill:    s.Style.Fill,
		Stroke:  s.Style.Stroke,
		Opacity: s.Style.Opacity,
	}, true
}
