package views

import (
	"geocalc/internal/controllers"

	"fyne.io/fyne/v2"
)

func (mv *MainView) setupMenus() {
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Copy Result", mv.copyDisplay),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear", mv.dispatch(func(h controllers.EventHandler) { h.OnClear() })),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Area Panel", mv.dispatch(func(h controllers.EventHandler) { h.OnToggleMode() })),
	)

	mv.window.SetMainMenu(fyne.NewMainMenu(editMenu, viewMenu))
}

// copyDisplay puts the display text on the system clipboard.
func (mv *MainView) copyDisplay() {
	mv.window.Clipboard().SetContent(mv.display.Text())
}
