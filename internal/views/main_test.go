package views

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geocalc/internal/controllers"
	"geocalc/internal/logger"
	"geocalc/internal/models"
	"geocalc/internal/services"
	"geocalc/internal/views/components"
)

func newTestView(t *testing.T) (*MainView, fyne.Window, *controllers.MainController) {
	t.Helper()
	app := test.NewTempApp(t)
	window := app.NewWindow("Calculator")
	t.Cleanup(window.Close)

	view := NewMainView(window)
	controller := controllers.NewMainController(
		services.NewCalculatorService(),
		services.NewAreaService(),
		models.NewDisplay(),
		logger.NewNop(),
	)
	view.SetEventHandler(controller)
	controller.SetRenderer(view)
	return view, window, controller
}

func tapKeys(t *testing.T, view *MainView, labels ...string) {
	t.Helper()
	for _, label := range labels {
		button := view.Keypad().Button(label)
		require.NotNil(t, button, "missing keypad button %q", label)
		test.Tap(button)
	}
}

func TestKeypadEvaluates(t *testing.T) {
	view, _, _ := newTestView(t)

	tapKeys(t, view, "1", "2", "X", "3", components.KeyEquals)
	assert.Equal(t, "36", view.Display().Text())

	tapKeys(t, view, "÷", "8", components.KeyEquals)
	assert.Equal(t, "4.5", view.Display().Text())

	tapKeys(t, view, components.KeyToggleSign)
	assert.Equal(t, "-4.5", view.Display().Text())

	tapKeys(t, view, components.KeyDelete)
	assert.Equal(t, "-4.", view.Display().Text())

	tapKeys(t, view, components.KeyClear)
	assert.Empty(t, view.Display().Text())
}

func TestKeypadErrorThenDigit(t *testing.T) {
	view, _, _ := newTestView(t)

	tapKeys(t, view, "+", components.KeyEquals)
	assert.Equal(t, models.ErrorText, view.Display().Text())

	tapKeys(t, view, "7")
	assert.Equal(t, "7", view.Display().Text())
}

func TestModeButtonTogglesPanelAndWindow(t *testing.T) {
	view, window, controller := newTestView(t)
	compact := fyne.NewSize(models.CompactWindow.Width, models.CompactWindow.Height)
	wide := fyne.NewSize(models.WideWindow.Width, models.WideWindow.Height)

	assert.False(t, view.AreaPanel().Visible())
	assert.Equal(t, compact, window.Canvas().Size())

	tapKeys(t, view, components.KeyMode)
	assert.True(t, view.AreaPanel().Visible())
	assert.Equal(t, wide, window.Canvas().Size())
	assert.True(t, controller.State().AreaVisible)

	tapKeys(t, view, components.KeyMode)
	assert.False(t, view.AreaPanel().Visible())
	assert.Equal(t, compact, window.Canvas().Size())
}

func TestAreaPanelComputes(t *testing.T) {
	view, _, _ := newTestView(t)
	panel := view.AreaPanel()
	tapKeys(t, view, components.KeyMode)

	panel.ShapeSelect().SetSelected("Square")
	assert.True(t, panel.Entry(0).Visible())
	assert.False(t, panel.Entry(1).Visible())
	assert.Equal(t, "Side Length:", panel.Label(0).Text)

	panel.Entry(0).SetText("4")
	test.Tap(panel.EnterButton())
	assert.Equal(t, "16", view.Display().Text())

	panel.ShapeSelect().SetSelected("Rectangle")
	assert.True(t, panel.Entry(1).Visible())
	assert.Equal(t, "Length:", panel.Label(0).Text)
	assert.Equal(t, "Width:", panel.Label(1).Text)
	assert.Equal(t, "4", panel.Entry(0).Text)

	test.Tap(panel.EnterButton())
	assert.Equal(t, models.InvalidInputText, view.Display().Text())

	panel.Entry(1).SetText("0.5")
	test.Tap(panel.EnterButton())
	assert.Equal(t, "2", view.Display().Text())

	panel.ShapeSelect().SetSelected(models.ShapePlaceholder)
	assert.False(t, panel.Entry(0).Visible())
	test.Tap(panel.EnterButton())
	assert.Equal(t, models.SelectShapeText, view.Display().Text())
}

func TestRuneAction(t *testing.T) {
	tests := []struct {
		r        rune
		wantNil  bool
		wantText string
	}{
		{r: '7', wantText: "7"},
		{r: '+', wantText: "+"},
		{r: '.', wantText: "."},
		{r: '*', wantText: services.MultiplyGlyph},
		{r: 'x', wantText: services.MultiplyGlyph},
		{r: '/', wantText: services.DivideGlyph},
		{r: 'a', wantNil: true},
		{r: '(', wantNil: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			action := runeAction(tt.r)
			if tt.wantNil {
				assert.Nil(t, action)
				return
			}
			require.NotNil(t, action)

			rec := &recorder{}
			action(rec)
			assert.Equal(t, []string{tt.wantText}, rec.appended)
		})
	}
}

func TestKeyAction(t *testing.T) {
	rec := &recorder{}
	for _, name := range []fyne.KeyName{fyne.KeyReturn, fyne.KeyEnter, fyne.KeyBackspace, fyne.KeyEscape} {
		action := keyAction(name)
		require.NotNil(t, action)
		action(rec)
	}
	assert.Equal(t, []string{"evaluate", "evaluate", "delete", "clear"}, rec.commands)
	assert.Nil(t, keyAction(fyne.KeyTab))
}

func TestTypedRunesReachController(t *testing.T) {
	view, window, _ := newTestView(t)

	for _, r := range "6/4=" {
		window.Canvas().OnTypedRune()(r)
	}
	assert.Equal(t, "1.5", view.Display().Text())
}

type recorder struct {
	appended []string
	commands []string
}

func (r *recorder) OnDigit(digit string)       { r.appended = append(r.appended, digit) }
func (r *recorder) OnOperator(operator string) { r.appended = append(r.appended, operator) }
func (r *recorder) OnEvaluate()                { r.commands = append(r.commands, "evaluate") }
func (r *recorder) OnClear()                   { r.commands = append(r.commands, "clear") }
func (r *recorder) OnDelete()                  { r.commands = append(r.commands, "delete") }
func (r *recorder) OnToggleSign()              { r.commands = append(r.commands, "toggle_sign") }
func (r *recorder) OnShapeChange(name string)  { r.commands = append(r.commands, "shape:"+name) }
func (r *recorder) OnComputeArea()             { r.commands = append(r.commands, "compute_area") }
func (r *recorder) OnToggleMode()              { r.commands = append(r.commands, "toggle_mode") }

func TestMainMenu(t *testing.T) {
	view, window, controller := newTestView(t)
	menu := window.MainMenu()
	require.NotNil(t, menu)
	require.Len(t, menu.Items, 2)

	tapKeys(t, view, "4", "2")
	menu.Items[0].Items[0].Action()
	assert.Equal(t, "42", window.Clipboard().Content())

	menu.Items[0].Items[2].Action()
	assert.Empty(t, view.Display().Text())

	menu.Items[1].Items[0].Action()
	assert.True(t, controller.State().AreaVisible)
}
