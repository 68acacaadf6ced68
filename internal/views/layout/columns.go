package layout

import (
	"fyne.io/fyne/v2"
)

// FixedColumnLayout places objects side by side, each in a column of fixed
// width. Hidden objects give up their column, so the container shrinks with
// them.
type FixedColumnLayout struct {
	columnWidths []float32
	padding      float32
}

func NewFixedColumnLayout(columnWidths []float32, padding float32) *FixedColumnLayout {
	return &FixedColumnLayout{
		columnWidths: columnWidths,
		padding:      padding,
	}
}

func (fcl *FixedColumnLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	x := float32(0)
	for i, obj := range objects {
		if i >= len(fcl.columnWidths) {
			break
		}
		if !obj.Visible() {
			continue
		}

		width := fcl.columnWidths[i]
		obj.Resize(fyne.NewSize(width-fcl.padding, containerSize.Height))
		obj.Move(fyne.NewPos(x, 0))
		x += width
	}
}

func (fcl *FixedColumnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	totalWidth := float32(0)
	maxHeight := float32(0)

	for i, width := range fcl.columnWidths {
		if i >= len(objects) || !objects[i].Visible() {
			continue
		}

		totalWidth += width
		if h := objects[i].MinSize().Height; h > maxHeight {
			maxHeight = h
		}
	}

	return fyne.NewSize(totalWidth, maxHeight)
}
