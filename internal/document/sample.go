package document

import (
	"encoding/json"
	"time"

	"github.com/drawdeck/drawdeck/engine-go/internal/typeid"
)

// NewSampleDocument builds the built-in demo board: one of each shape kind,
// laid out so the overview has something to show on first load.
func NewSampleDocument(boardID string) *BoardDocument {
	now := time.Now().UTC().Format(time.RFC3339)

	return &BoardDocument{
		Board: Board{
			ID:         boardID,
			Name:       "Untitled",
			Version:    1,
			CreatedAt:  now,
			UpdatedAt:  now,
			Background: "#1a1a2e",
		},
		Shapes: []Shape{
			{
				ID:        typeid.NewShapeID(),
				Type:      ShapeTypeRect,
				X:         80,
				Y:         60,
				Transform: Transform{R: 0, SX: 1, SY: 1},
				Style:     Style{Fill: "#e94560", Stroke: "#ffffff", StrokeWidth: 2, Opacity: 1},
				Z:         0,
				Visible:   true,
				Data:      mustJSON(RectData{Width: 200, Height: 120}),
			},
			{
				ID:        typeid.NewShapeID(),
				Type:      ShapeTypeCircle,
				X:         420,
				Y:         140,
				Transform: Transform{R: 0, SX: 1, SY: 1},
				Style:     Style{Fill: "#0f3460", Stroke: "#ffffff", StrokeWidth: 2, Opacity: 1},
				Z:         1,
				Visible:   true,
				Data:      mustJSON(CircleData{Radius: 70}),
			},
			{
				ID:        typeid.NewShapeID(),
				Type:      ShapeTypeEllipse,
				X:         650,
				Y:         120,
				Transform: Transform{R: 30, SX: 1, SY: 1},
				Style:     Style{Fill: "#53354a", Stroke: "", StrokeWidth: 0, Opacity: 1},
				Z:         2,
				Visible:   true,
				Data:      mustJSON(EllipseData{RX: 90, RY: 50}),
			},
			{
				ID:        typeid.NewShapeID(),
				Type:      ShapeTypeArrow,
				X:         0,
				Y:         0,
				Transform: Transform{R: 0, SX: 1, SY: 1},
				Style:     Style{Stroke: "#ffffff", StrokeWidth: 2, Opacity: 1},
				Z:         3,
				Visible:   true,
				Data:      mustJSON(ArrowData{X1: 180, Y1: 220, X2: 380, Y2: 180, HeadSize: 12}),
			},
			{
				ID:        typeid.NewShapeID(),
				Type:      ShapeTypeTriangle,
				X:         0,
				Y:         0,
				Transform: Transform{R: 0, SX: 1, SY: 1},
				Style:     Style{Fill: "#f9a826", Opacity: 1},
				Z:         4,
				Visible:   true,
				Data: mustJSON(TriangleData{Points: []PointData{
					{X: 120, Y: 420},
					{X: 220, Y: 280},
					{X: 320, Y: 420},
				}}),
			},
			{
				ID:        typeid.NewShapeID(),
				Type:      ShapeTypeStroke,
				X:         0,
				Y:         0,
				Transform: Transform{R: 0, SX: 1, SY: 1},
				Style:     Style{Stroke: "#e94560", StrokeWidth: 4, Opacity: 1},
				Z:         5,
				Visible:   true,
				Data: mustJSON(StrokeData{Points: []float64{
					420, 320, 460, 300, 510, 330, 560, 290, 610, 320,
				}}),
			},
			{
				ID:        typeid.NewShapeID(),
				Type:      ShapeTypeText,
				X:         80,
				Y:         480,
				Transform: Transform{R: 0, SX: 1, SY: 1},
				Style:     Style{Fill: "#ffffff", Opacity: 1},
				Z:         6,
				Visible:   true,
				Data:      mustJSON(TextData{Content: "welcome to drawdeck", FontSize: 24}),
			},
		},
		Camera: Camera{X: 0, Y: 0, Zoom: 1},
	}
}

func mustJSON(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
