// Package tui implements the interactive regulation browser built on
// Bubble Tea.
package tui

import "github.com/charmbracelet/lipgloss"

// ViewState tracks which screen the browser is showing.
type ViewState int

const (
	ViewStateList ViewState = iota
	ViewStateDetail
	ViewStateQuitting
)

// Key bindings shared across browser states.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
	keySlash = "/"
	keySort  = "s"
)

// Default dimensions used before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
	minTableRows  = 5
	footerHeight  = 4
)

//nolint:gochecknoglobals // Shared lipgloss styles, initialized once.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("22")).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("252")).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("240"))

	TableSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	DetailLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("245")).
				Width(18)

	VerifiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40"))

	UnverifiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
