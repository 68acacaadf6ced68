package models

// Shape is the selection of the area panel.
type Shape int

const (
	ShapeUnset Shape = iota
	ShapeSquare
	ShapeRectangle
	ShapeTriangle
	ShapeCircle
)

const (
	// ShapePlaceholder is the selector's first item and selects nothing.
	ShapePlaceholder = "Select a shape:"
	AreaCaption      = "AREA"
)

var shapeNames = map[Shape]string{
	ShapeSquare:    "Square",
	ShapeRectangle: "Rectangle",
	ShapeTriangle:  "Triangle",
	ShapeCircle:    "Circle",
}

// ShapeOptions lists the selector items in display order.
func ShapeOptions() []string {
	return []string{
		ShapePlaceholder,
		ShapeSquare.String(),
		ShapeRectangle.String(),
		ShapeTriangle.String(),
		ShapeCircle.String(),
	}
}

// ParseShape maps a selector item to a Shape. Unknown names are ShapeUnset.
func ParseShape(name string) Shape {
	for shape, n := range shapeNames {
		if n == name {
			return shape
		}
	}
	return ShapeUnset
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "Unset"
}

// InputField describes one labeled entry of the area panel.
type InputField struct {
	Label   string
	Visible bool
}

// InputLayout is the state of both area entries for a shape.
type InputLayout [2]InputField

// Inputs returns which entries a shape needs and their captions. Hidden
// entries keep an empty label.
func (s Shape) Inputs() InputLayout {
	switch s {
	case ShapeSquare:
		return InputLayout{{Label: "Side Length:", Visible: true}}
	case ShapeRectangle:
		return InputLayout{{Label: "Length:", Visible: true}, {Label: "Width:", Visible: true}}
	case ShapeTriangle:
		return InputLayout{{Label: "Base:", Visible: true}, {Label: "Height:", Visible: true}}
	case ShapeCircle:
		return InputLayout{{Label: "Radius:", Visible: true}}
	default:
		return InputLayout{}
	}
}

// InputCount is the number of visible entries for the shape.
func (s Shape) InputCount() int {
	count := 0
	for _, field := range s.Inputs() {
		if field.Visible {
			count++
		}
	}
	return count
}
