package ui

import (
	"github.com/gdamore/tcell/v2"
)

// setupEventHandling configures all event handlers
func (app *Application) setupEventHandling() {
	index := app.editor.Search()

	// Engine hooks. The debounced rebuild fires off the UI goroutine,
	// so redraws go through QueueUpdateDraw.
	index.SetNavigateFunc(app.scrollToMatch)
	index.SetUpdateFunc(func() {
		app.app.QueueUpdateDraw(func() {
			app.refreshBody()
			app.updateBars()
		})
	})

	app.searchInput.SetChangedFunc(func(text string) {
		index.QueryChanged(text)
	})

	app.searchInput.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			index.Next()
		case tcell.KeyEscape:
			app.app.SetFocus(app.bodyView)
		case tcell.KeyBacktab:
			index.Previous()
		}
	})

	app.searchInput.SetFocusFunc(func() {
		app.searchInput.SetBorderColor(tcell.ColorYellow)
	})
	app.searchInput.SetBlurFunc(func() {
		app.searchInput.SetBorderColor(tcell.ColorGreen)
	})

	app.app.SetInputCapture(app.handleInput)
}

// handleInput processes global keyboard shortcuts while the body view
// has focus.
func (app *Application) handleInput(event *tcell.EventKey) *tcell.EventKey {
	if app.app.GetFocus() == app.searchInput {
		return event
	}

	switch event.Rune() {
	case '/':
		app.app.SetFocus(app.searchInput)
		return nil
	case 'n':
		app.editor.Search().Next()
		return nil
	case 'N':
		app.editor.Search().Previous()
		return nil
	case 'q':
		app.app.Stop()
		return nil
	}
	return event
}
