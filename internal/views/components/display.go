package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Display shows the calculator's expression and every result message.
type Display struct {
	container *fyne.Container
	label     *widget.Label
}

func NewDisplay() *Display {
	label := widget.NewLabel("")
	label.Alignment = fyne.TextAlignTrailing
	label.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	label.Truncation = fyne.TextTruncateClip

	return &Display{
		container: container.NewPadded(widget.NewCard("", "", label)),
		label:     label,
	}
}

func (d *Display) GetContainer() *fyne.Container {
	return d.container
}

func (d *Display) SetText(text string) {
	d.label.SetText(text)
}

func (d *Display) Text() string {
	return d.label.Text
}
