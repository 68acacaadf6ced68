package services

import (
	"errors"
	"fmt"

	"geocalc/internal/models"
)

// CirclePi is the fixed constant of the circle formula. Results are expected
// to match it exactly, so math.Pi is not used.
const CirclePi = 3.14159

var (
	ErrNoShape      = errors.New("no shape selected")
	ErrInvalidInput = errors.New("invalid input")
)

var areaFormulas = map[models.Shape]func(dims [2]float64) float64{
	models.ShapeSquare: func(dims [2]float64) float64 {
		return dims[0] * dims[0]
	},
	models.ShapeRectangle: func(dims [2]float64) float64 {
		return dims[0] * dims[1]
	},
	models.ShapeTriangle: func(dims [2]float64) float64 {
		return 0.5 * dims[0] * dims[1]
	},
	models.ShapeCircle: func(dims [2]float64) float64 {
		return CirclePi * (dims[0] * dims[0])
	},
}

// Area applies the formula of shape to its dimensions. Negative dimensions
// are accepted.
func Area(shape models.Shape, dims [2]float64) (float64, error) {
	formula, ok := areaFormulas[shape]
	if !ok {
		return 0, ErrNoShape
	}
	return formula(dims), nil
}

// AreaService owns the Selected Shape of the area panel.
type AreaService struct {
	shape models.Shape
}

func NewAreaService() *AreaService {
	return &AreaService{}
}

func (as *AreaService) Shape() models.Shape {
	return as.shape
}

// SelectShape records the selector item and returns the entry layout the
// panel must show. Entry values are left alone.
func (as *AreaService) SelectShape(name string) models.InputLayout {
	as.shape = models.ParseShape(name)
	return as.shape.Inputs()
}

// ComputeArea reads the entries the selected shape needs and writes the
// formatted area, "Invalid input!" or "Select a valid shape" to the display.
func (as *AreaService) ComputeArea(d *models.Display, inputs [2]string) error {
	if as.shape == models.ShapeUnset {
		d.SetText(models.SelectShapeText)
		return ErrNoShape
	}

	var dims [2]float64
	layout := as.shape.Inputs()
	for i, field := range layout {
		if !field.Visible {
			continue
		}
		value, err := parseNumber(inputs[i])
		if err != nil {
			d.SetText(models.InvalidInputText)
			return fmt.Errorf("%w: %s %q", ErrInvalidInput, field.Label, inputs[i])
		}
		dims[i] = value
	}

	area, err := Area(as.shape, dims)
	if err != nil {
		d.SetText(models.SelectShapeText)
		return err
	}

	d.SetText(FormatDecimal(area))
	return nil
}
