package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/carboncomply/internal/refdata"
)

// RunBrowser starts the interactive regulation browser and blocks until the
// user quits.
func RunBrowser(regulations []refdata.Regulation) error {
	program := tea.NewProgram(NewBrowserModel(regulations), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running regulation browser: %w", err)
	}
	return nil
}
