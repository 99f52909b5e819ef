// Package ui is the terminal host adapter for the body editor engine.
// It wires tview widget events to the engine's observer hooks; all
// classification, formatting and search logic lives below it.
package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/bodylens/bodylens/internal/editor"
	"github.com/bodylens/bodylens/internal/search"
)

// Application is the main TUI application state
type Application struct {
	app    *tview.Application
	editor *editor.Editor
	source string

	bodyView    *tview.TextView
	searchInput *tview.InputField
	topBar      *tview.TextView
	bottomBar   *tview.TextView
	layout      *tview.Flex
}

// NewApplication creates a viewer for an editor whose body is already
// installed. source is the display name of where the body came from.
func NewApplication(ed *editor.Editor, source string) *Application {
	app := &Application{
		app:    tview.NewApplication(),
		editor: ed,
		source: source,
	}
	app.setupUI()
	app.setupEventHandling()
	return app
}

// Run starts the TUI application
func (app *Application) Run() error {
	app.refreshBody()
	app.updateBars()
	return app.app.SetRoot(app.layout, true).EnableMouse(true).Run()
}

// refreshBody re-renders the body text with the current match regions.
func (app *Application) refreshBody() {
	text := app.editor.Buffer().Text()
	spans := app.editor.Search().Matches()
	app.bodyView.SetText(renderWithRegions(text, spans))
	if cursor := app.editor.Search().Cursor(); cursor >= 0 {
		app.bodyView.Highlight(regionID(cursor))
	} else {
		app.bodyView.Highlight()
	}
}

// updateBars refreshes the header and status line.
func (app *Application) updateBars() {
	modified := ""
	if app.editor.IsModified() {
		modified = " [red]modified[white]"
	}
	app.topBar.SetText(fmt.Sprintf(" [::b]%s[::-] — %s  [dim]%s / %s[white]%s",
		app.editor.DisplayLabel(), app.source,
		app.editor.ContentType(), app.editor.Charset(), modified))
	app.bottomBar.SetText(fmt.Sprintf(" %s  [dim]/ search · Enter next · Shift-Tab prev · q quit[white]",
		app.editor.Search().Status()))
}

// scrollToMatch highlights the current match region and scrolls it
// into view.
func (app *Application) scrollToMatch(search.Span) {
	cursor := app.editor.Search().Cursor()
	if cursor < 0 {
		return
	}
	app.bodyView.Highlight(regionID(cursor))
	app.bodyView.ScrollToHighlight()
	app.updateBars()
}
