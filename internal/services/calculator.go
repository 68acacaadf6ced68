package services

import (
	"strings"
	"unicode/utf8"

	"geocalc/internal/expr"
	"geocalc/internal/models"
)

// Keypad glyphs that differ from the evaluator's operators.
const (
	MultiplyGlyph = "X"
	DivideGlyph   = "÷"
)

// CalculatorService edits and evaluates the Expression Text held by a Display.
type CalculatorService struct {
	glyphs *strings.Replacer
}

func NewCalculatorService() *CalculatorService {
	return &CalculatorService{
		glyphs: strings.NewReplacer(
			MultiplyGlyph, "*",
			"×", "*",
			DivideGlyph, "/",
		),
	}
}

// Append adds a keypad token to the end of the expression, discarding an
// "Error" left by the previous evaluation. The result is not validated.
func (cs *CalculatorService) Append(d *models.Display, token string) {
	if d.IsError() {
		d.Clear()
	}
	d.SetText(d.Text() + token)
}

func (cs *CalculatorService) Clear(d *models.Display) {
	d.Clear()
}

// DeleteLast removes the last character, or the whole "Error" sentinel.
func (cs *CalculatorService) DeleteLast(d *models.Display) {
	if d.IsError() {
		d.Clear()
		return
	}

	text := d.Text()
	if text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(text)
	d.SetText(text[:len(text)-size])
}

// ToggleSign negates the display when it holds a single non-zero number and
// replaces the whole text with the result. "inf" flips to "-inf" and "nan"
// stays "nan". It reports whether the text changed.
func (cs *CalculatorService) ToggleSign(d *models.Display) bool {
	text := d.Text()
	if text == "" || d.IsError() {
		return false
	}

	value, err := parseNumber(text)
	if err != nil || value == 0 {
		return false
	}

	d.SetText(formatNumber(-value))
	return d.Text() != text
}

// Evaluate replaces the expression with its formatted result. Any failure
// leaves "Error" on the display and is returned as an *expr.EvaluationError.
func (cs *CalculatorService) Evaluate(d *models.Display) error {
	value, err := expr.Evaluate(cs.glyphs.Replace(d.Text()))
	if err != nil {
		d.SetText(models.ErrorText)
		return err
	}

	d.SetText(FormatValue(value))
	return nil
}
