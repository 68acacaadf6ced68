package models

// Messages written to the display in place of a result.
const (
	ErrorText        = "Error"
	InvalidInputText = "Invalid input!"
	SelectShapeText  = "Select a valid shape"
)

// Display is the single output surface shared by the calculator and the area
// panel. Its text is the calculator's Expression Text.
type Display struct {
	text string
}

func NewDisplay() *Display {
	return &Display{}
}

func (d *Display) Text() string {
	return d.text
}

func (d *Display) SetText(text string) {
	d.text = text
}

func (d *Display) Clear() {
	d.text = ""
}

// IsError reports whether the display holds the evaluation failure sentinel.
func (d *Display) IsError() bool {
	return d.text == ErrorText
}
