package views

import (
	"geocalc/internal/controllers"
	"geocalc/internal/services"

	"fyne.io/fyne/v2"
)

// setupShortcuts routes keyboard input that no focused widget consumed.
// Typing into an area entry never reaches the canvas handlers.
func (mv *MainView) setupShortcuts() {
	canvas := mv.window.Canvas()
	canvas.SetOnTypedRune(func(r rune) {
		if action := runeAction(r); action != nil && mv.handler != nil {
			action(mv.handler)
		}
	})
	canvas.SetOnTypedKey(func(event *fyne.KeyEvent) {
		if action := keyAction(event.Name); action != nil && mv.handler != nil {
			action(mv.handler)
		}
	})
}

func runeAction(r rune) func(controllers.EventHandler) {
	switch {
	case r >= '0' && r <= '9':
		digit := string(r)
		return func(h controllers.EventHandler) { h.OnDigit(digit) }
	case r == '+' || r == '-' || r == '.':
		operator := string(r)
		return func(h controllers.EventHandler) { h.OnOperator(operator) }
	case r == '*' || r == 'x' || r == 'X':
		return func(h controllers.EventHandler) { h.OnOperator(services.MultiplyGlyph) }
	case r == '/':
		return func(h controllers.EventHandler) { h.OnOperator(services.DivideGlyph) }
	case r == '=':
		return func(h controllers.EventHandler) { h.OnEvaluate() }
	default:
		return nil
	}
}

func keyAction(name fyne.KeyName) func(controllers.EventHandler) {
	switch name {
	case fyne.KeyReturn, fyne.KeyEnter:
		return func(h controllers.EventHandler) { h.OnEvaluate() }
	case fyne.KeyBackspace:
		return func(h controllers.EventHandler) { h.OnDelete() }
	case fyne.KeyEscape:
		return func(h controllers.EventHandler) { h.OnClear() }
	default:
		return nil
	}
}
