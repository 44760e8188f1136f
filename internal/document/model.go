package document

import "encoding/json"

// BoardDocument is the full state of one drawing board as the frontend ships
// it to the engine: board metadata, the drawable shapes in z order, and the
// camera over the main canvas.
type BoardDocument struct {
	Board  Board   `json:"board"`
	Shapes []Shape `json:"shapes"`
	Camera Camera  `json:"camera"`
}

type Board struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Version    int    `json:"version"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
	Background string `json:"background"`
}

// Camera is the main-canvas viewport: world-space pan offset plus zoom.
// The visible world rectangle is x = -X/Zoom, width = surfaceWidth/Zoom
// (same for Y), so Zoom must be positive.
type Camera struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

type ShapeType string

const (
	ShapeTypeRect     ShapeType = "Rect"
	ShapeTypeCircle   ShapeType = "Circle"
	ShapeTypeEllipse  ShapeType = "Ellipse"
	ShapeTypeLine     ShapeType = "Line"
	ShapeTypeArrow    ShapeType = "Arrow"
	ShapeTypeTriangle ShapeType = "Triangle"
	ShapeTypeStroke   ShapeType = "Stroke"
	ShapeTypeText     ShapeType = "Text"
)

// Transform holds the per-shape transform: rotation in degrees (positive =
// clockwise in screen space) and scale, both applied about the shape's
// untransformed bounding-box center.
type Transform struct {
	R  float64 `json:"r"`
	SX float64 `json:"sx"`
	SY float64 `json:"sy"`
}

type Style struct {
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
	Opacity     float64 `json:"opacity"`
}

// Shape is one drawable. X/Y is the variant's anchor (top-left for rects and
// text, center for circles and ellipses, unused for variants whose geometry
// lives entirely in Data). Variant-specific geometry is carried in Data and
// decoded by the engine.
type Shape struct {
	ID        string          `json:"id"`
	Type      ShapeType       `json:"type"`
	X         float64         `json:"x"`
	Y         float64         `json:"y"`
	Transform Transform       `json:"transform"`
	Style     Style           `json:"style"`
	Z         int             `json:"z"`
	Visible   bool            `json:"visible"`
	Data      json.RawMessage `json:"data"`
}

// Variant payloads for Shape.Data.

type RectData struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type CircleData struct {
	Radius float64 `json:"radius"`
}

type EllipseData struct {
	RX float64 `json:"rx"`
	RY float64 `json:"ry"`
}

type LineData struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

type ArrowData struct {
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	X2       float64 `json:"x2"`
	Y2       float64 `json:"y2"`
	HeadSize float64 `json:"headSize"`
}

type PointData struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type TriangleData struct {
	Points []PointData `json:"points"`
}

// StrokeData is a freehand stroke: Points is a flat interleaved x,y sample
// sequence of even length.
type StrokeData struct {
	Points []float64 `json:"points"`
}

type TextData struct {
	Content  string  `json:"content"`
	FontSize float64 `json:"fontSize"`
}

// NewEmptyDocument creates an empty board for a new project.
func NewEmptyDocument(boardID, boardName string) *BoardDocument {
	return &BoardDocument{
		Board: Board{
			ID:         boardID,
			Name:       boardName,
			Version:    1,
			CreatedAt:  "", // Will be set by caller
			UpdatedAt:  "",
			Background: "#1a1a2e",
		},
		Shapes: []Shape{},
		Camera: Camera{X: 0, Y: 0, Zoom: 1},
	}
}
