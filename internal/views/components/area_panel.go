package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"geocalc/internal/models"
)

// AreaPanel holds the shape selector, two labeled entries and the compute
// button. It starts hidden.
type AreaPanel struct {
	container   *fyne.Container
	caption     *widget.Label
	shapeSelect *widget.Select
	labels      [2]*widget.Label
	entries     [2]*widget.Entry
	enterButton *widget.Button

	shapeChangeHandler func(string)
	computeHandler     func()
}

func NewAreaPanel() *AreaPanel {
	ap := &AreaPanel{}
	ap.createComponents()
	ap.buildLayout()
	ap.setupEventHandlers()
	return ap
}

func (ap *AreaPanel) createComponents() {
	ap.caption = widget.NewLabelWithStyle(models.AreaCaption, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	ap.shapeSelect = widget.NewSelect(models.ShapeOptions(), nil)
	ap.shapeSelect.SetSelectedIndex(0)

	for i := range ap.entries {
		ap.labels[i] = widget.NewLabel("")
		ap.labels[i].Hide()
		ap.entries[i] = widget.NewEntry()
		ap.entries[i].Hide()
	}

	ap.enterButton = widget.NewButton("Enter", nil)
	ap.enterButton.Importance = widget.HighImportance
}

func (ap *AreaPanel) buildLayout() {
	ap.container = container.NewVBox(
		ap.caption,
		ap.shapeSelect,
		ap.labels[0],
		ap.entries[0],
		ap.labels[1],
		ap.entries[1],
		widget.NewSeparator(),
		ap.enterButton,
	)
	ap.container.Hide()
}

func (ap *AreaPanel) setupEventHandlers() {
	ap.shapeSelect.OnChanged = func(name string) {
		if ap.shapeChangeHandler != nil {
			ap.shapeChangeHandler(name)
		}
	}

	ap.enterButton.OnTapped = func() {
		if ap.computeHandler != nil {
			ap.computeHandler()
		}
	}
}

func (ap *AreaPanel) GetContainer() *fyne.Container {
	return ap.container
}

// SetInputs shows, hides and captions both entries. Entry text is untouched.
func (ap *AreaPanel) SetInputs(layout models.InputLayout) {
	for i, field := range layout {
		ap.labels[i].SetText(field.Label)
		if field.Visible {
			ap.labels[i].Show()
			ap.entries[i].Show()
		} else {
			ap.labels[i].Hide()
			ap.entries[i].Hide()
		}
	}
	ap.container.Refresh()
}

func (ap *AreaPanel) SetCaption(caption string) {
	ap.caption.SetText(caption)
}

// InputText returns the text of entry index, or "" for an unknown index.
func (ap *AreaPanel) InputText(index int) string {
	if index < 0 || index >= len(ap.entries) {
		return ""
	}
	return ap.entries[index].Text
}

func (ap *AreaPanel) SetVisible(visible bool) {
	if visible {
		ap.container.Show()
	} else {
		ap.container.Hide()
	}
}

func (ap *AreaPanel) Visible() bool {
	return ap.container.Visible()
}

// Entry exposes entry index for focus handling and tests.
func (ap *AreaPanel) Entry(index int) *widget.Entry {
	return ap.entries[index]
}

func (ap *AreaPanel) Label(index int) *widget.Label {
	return ap.labels[index]
}

func (ap *AreaPanel) ShapeSelect() *widget.Select {
	return ap.shapeSelect
}

func (ap *AreaPanel) EnterButton() *widget.Button {
	return ap.enterButton
}

func (ap *AreaPanel) SetShapeChangeHandler(handler func(string)) {
	ap.shapeChangeHandler = handler
}

func (ap *AreaPanel) SetComputeHandler(handler func()) {
	ap.computeHandler = handler
}
