package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// setupUI creates and configures all UI components
func (app *Application) setupUI() {
	tview.Styles.PrimitiveBackgroundColor = tcell.ColorDefault
	tview.Styles.ContrastBackgroundColor = tcell.ColorDefault

	app.createComponents()
	app.createLayout()
}

// createComponents initializes all UI components
func (app *Application) createComponents() {
	app.topBar = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)

	app.bodyView = tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWrap(true).
		SetWordWrap(true)
	app.bodyView.SetBorder(false)

	app.searchInput = tview.NewInputField()
	app.searchInput.SetLabel("")
	app.searchInput.SetFieldWidth(0)
	app.searchInput.SetBorder(true)
	app.searchInput.SetTitle(" Search ")
	app.searchInput.SetTitleAlign(tview.AlignLeft)
	app.searchInput.SetBorderColor(tcell.ColorGreen)

	app.bottomBar = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
}

// createLayout assembles the main screen layout
func (app *Application) createLayout() {
	app.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(app.topBar, 1, 0, false).
		AddItem(app.bodyView, 0, 1, true).
		AddItem(app.searchInput, 3, 0, false).
		AddItem(app.bottomBar, 1, 0, false)
}
