package layout

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
)

func newBlock(height float32) *canvas.Rectangle {
	r := canvas.NewRectangle(color.Transparent)
	r.SetMinSize(fyne.NewSize(10, height))
	return r
}

func TestFixedColumnLayout(t *testing.T) {
	left, right := newBlock(200), newBlock(250)
	objects := []fyne.CanvasObject{left, right}
	l := NewFixedColumnLayout([]float32{300, 175}, 5)

	assert.Equal(t, fyne.NewSize(475, 250), l.MinSize(objects))

	l.Layout(objects, fyne.NewSize(475, 375))
	assert.Equal(t, fyne.NewPos(0, 0), left.Position())
	assert.Equal(t, fyne.NewSize(295, 375), left.Size())
	assert.Equal(t, fyne.NewPos(300, 0), right.Position())
	assert.Equal(t, fyne.NewSize(170, 375), right.Size())
}

func TestFixedColumnLayoutSkipsHidden(t *testing.T) {
	left, right := newBlock(200), newBlock(250)
	right.Hide()
	objects := []fyne.CanvasObject{left, right}
	l := NewFixedColumnLayout([]float32{300, 175}, 0)

	assert.Equal(t, fyne.NewSize(300, 200), l.MinSize(objects))

	l.Layout(objects, fyne.NewSize(300, 375))
	assert.Equal(t, fyne.NewSize(300, 375), left.Size())
}

func TestFixedColumnLayoutExtraObjects(t *testing.T) {
	objects := []fyne.CanvasObject{newBlock(10), newBlock(10), newBlock(90)}
	l := NewFixedColumnLayout([]float32{100}, 0)
	assert.Equal(t, fyne.NewSize(100, 10), l.MinSize(objects))
}
