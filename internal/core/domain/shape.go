package domain

// ShapeKind is the primitive a drawing backend renders.
type ShapeKind string

const (
	// ShapeRect is an axis aligned rectangle.
	ShapeRect ShapeKind = "rect"
	// ShapeLine is a straight segment from (X, Y) to (X2, Y2).
	ShapeLine ShapeKind = "line"
	// ShapePolyline is an open path through Points.
	ShapePolyline ShapeKind = "polyline"
	// ShapePolygon is a closed filled path through Points.
	ShapePolygon ShapeKind = "polygon"
	// ShapeCircle is a circle centered on (X, Y) with radius R.
	ShapeCircle ShapeKind = "circle"
	// ShapeText is a text label anchored at (X, Y).
	ShapeText ShapeKind = "text"
)

// Point is a coordinate on a drawing surface.
type Point struct {
	X float64
	Y float64
}

// Shape is a named drawing instruction. Names are unique within a group;
// setting a shape with an existing name replaces it in place.
type Shape struct {
	Name   string
	Kind   ShapeKind
	X      float64
	Y      float64
	X2     float64
	Y2     float64
	Width  float64
	Height float64
	R      float64
	Points []Point
	Text   string
	Hidden bool
	Style  ShapeStyle
}

// Contains reports whether (x, y) lies inside the shape's bounding box.
// Lines, paths and text are never hit.
func (s Shape) Contains(x, y float64) bool {
	switch s.Kind {
	case ShapeRect:
		return x >= s.X && x <= s.X+s.Width && y >= s.Y && y <= s.Y+s.Height
	case ShapeCircle:
		dx, dy := x-s.X, y-s.Y
		return dx*dx+dy*dy <= s.R*s.R
	default:
		return false
	}
}
