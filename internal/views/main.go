package views

import (
	"geocalc/internal/controllers"
	"geocalc/internal/models"
	"geocalc/internal/views/components"
	"geocalc/internal/views/layout"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

const columnPadding = 4

// MainView is the calculator window. It reports user actions to an
// EventHandler and implements controllers.Renderer.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	display       *components.Display
	keypad        *components.Keypad
	areaPanel     *components.AreaPanel

	handler controllers.EventHandler
}

var _ controllers.Renderer = (*MainView)(nil)

func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()
	view.setupShortcuts()
	view.setupMenus()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.display = components.NewDisplay()
	mv.keypad = components.NewKeypad()
	mv.areaPanel = components.NewAreaPanel()
}

// buildLayout puts the calculator and the area panel in fixed columns whose
// widths add up to the window presets.
func (mv *MainView) buildLayout() {
	calculator := container.NewBorder(
		mv.display.GetContainer(),
		nil,
		nil,
		nil,
		mv.keypad.GetContainer(),
	)

	columns := layout.NewFixedColumnLayout([]float32{
		models.CompactWindow.Width,
		models.WideWindow.Width - models.CompactWindow.Width,
	}, columnPadding)
	mv.mainContainer = container.New(columns, calculator, mv.areaPanel.GetContainer())

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.keypad.SetDigitHandler(func(digit string) {
		if mv.handler != nil {
			mv.handler.OnDigit(digit)
		}
	})
	mv.keypad.SetOperatorHandler(func(operator string) {
		if mv.handler != nil {
			mv.handler.OnOperator(operator)
		}
	})
	mv.keypad.SetEqualsHandler(mv.dispatch(func(h controllers.EventHandler) { h.OnEvaluate() }))
	mv.keypad.SetClearHandler(mv.dispatch(func(h controllers.EventHandler) { h.OnClear() }))
	mv.keypad.SetDeleteHandler(mv.dispatch(func(h controllers.EventHandler) { h.OnDelete() }))
	mv.keypad.SetToggleSignHandler(mv.dispatch(func(h controllers.EventHandler) { h.OnToggleSign() }))
	mv.keypad.SetModeHandler(mv.dispatch(func(h controllers.EventHandler) { h.OnToggleMode() }))

	mv.areaPanel.SetShapeChangeHandler(func(name string) {
		if mv.handler != nil {
			mv.handler.OnShapeChange(name)
		}
	})
	mv.areaPanel.SetComputeHandler(mv.dispatch(func(h controllers.EventHandler) { h.OnComputeArea() }))
}

// dispatch binds a parameterless action to whatever handler is attached at
// the time the button fires.
func (mv *MainView) dispatch(action func(controllers.EventHandler)) func() {
	return func() {
		if mv.handler != nil {
			action(mv.handler)
		}
	}
}

// SetEventHandler connects the view to the controller.
func (mv *MainView) SetEventHandler(handler controllers.EventHandler) {
	mv.handler = handler
}

func (mv *MainView) SetDisplayText(text string) {
	mv.display.SetText(text)
}

func (mv *MainView) SetAreaInputs(layout models.InputLayout) {
	mv.areaPanel.SetInputs(layout)
}

func (mv *MainView) SetAreaCaption(caption string) {
	mv.areaPanel.SetCaption(caption)
}

func (mv *MainView) InputText(index int) string {
	return mv.areaPanel.InputText(index)
}

func (mv *MainView) SetAreaPanelVisible(visible bool) {
	mv.areaPanel.SetVisible(visible)
	mv.mainContainer.Refresh()
}

func (mv *MainView) ResizeWindow(size models.WindowSize) {
	mv.window.Resize(fyne.NewSize(size.Width, size.Height))
}

func (mv *MainView) Show() {
	mv.window.Show()
}

func (mv *MainView) Display() *components.Display {
	return mv.display
}

func (mv *MainView) Keypad() *components.Keypad {
	return mv.keypad
}

func (mv *MainView) AreaPanel() *components.AreaPanel {
	return mv.areaPanel
}
