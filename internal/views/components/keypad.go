package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Labels of the keypad's command buttons.
const (
	KeyClear      = "C"
	KeyDelete     = "DEL"
	KeyToggleSign = "+/-"
	KeyEquals     = "="
	KeyMode       = "Area"
)

// keypadRows is the button grid, top to bottom.
var keypadRows = [][]string{
	{KeyClear, KeyDelete, KeyToggleSign, "÷"},
	{"7", "8", "9", "X"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{KeyMode, "0", ".", KeyEquals},
}

// Keypad is the calculator's button grid. Digit and operator buttons report
// their own label; command buttons have dedicated handlers.
type Keypad struct {
	container *fyne.Container
	buttons   map[string]*widget.Button

	digitHandler      func(string)
	operatorHandler   func(string)
	equalsHandler     func()
	clearHandler      func()
	deleteHandler     func()
	toggleSignHandler func()
	modeHandler       func()
}

func NewKeypad() *Keypad {
	k := &Keypad{buttons: make(map[string]*widget.Button)}
	k.createComponents()
	k.buildLayout()
	return k
}

func (k *Keypad) createComponents() {
	for _, row := range keypadRows {
		for _, label := range row {
			button := widget.NewButton(label, func() { k.press(label) })
			switch label {
			case KeyEquals:
				button.Importance = widget.HighImportance
			case KeyClear, KeyDelete:
				button.Importance = widget.DangerImportance
			case KeyMode:
				button.Importance = widget.LowImportance
			}
			k.buttons[label] = button
		}
	}
}

func (k *Keypad) buildLayout() {
	objects := make([]fyne.CanvasObject, 0, len(keypadRows)*4)
	for _, row := range keypadRows {
		for _, label := range row {
			objects = append(objects, k.buttons[label])
		}
	}
	k.container = container.NewGridWithColumns(4, objects...)
}

// press dispatches a button label to the matching handler.
func (k *Keypad) press(label string) {
	switch label {
	case KeyEquals:
		call(k.equalsHandler)
	case KeyClear:
		call(k.clearHandler)
	case KeyDelete:
		call(k.deleteHandler)
	case KeyToggleSign:
		call(k.toggleSignHandler)
	case KeyMode:
		call(k.modeHandler)
	default:
		if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
			if k.digitHandler != nil {
				k.digitHandler(label)
			}
		} else if k.operatorHandler != nil {
			k.operatorHandler(label)
		}
	}
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}

func (k *Keypad) GetContainer() *fyne.Container {
	return k.container
}

// Button returns the button with the given label, or nil.
func (k *Keypad) Button(label string) *widget.Button {
	return k.buttons[label]
}

func (k *Keypad) SetDigitHandler(handler func(string)) {
	k.digitHandler = handler
}

func (k *Keypad) SetOperatorHandler(handler func(string)) {
	k.operatorHandler = handler
}

func (k *Keypad) SetEqualsHandler(handler func()) {
	k.equalsHandler = handler
}

func (k *Keypad) SetClearHandler(handler func()) {
	k.clearHandler = handler
}

func (k *Keypad) SetDeleteHandler(handler func()) {
	k.deleteHandler = handler
}

func (k *Keypad) SetToggleSignHandler(handler func()) {
	k.toggleSignHandler = handler
}

func (k *Keypad) SetModeHandler(handler func()) {
	k.modeHandler = handler
}
