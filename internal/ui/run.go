package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bubroz/videograbber/internal/model"
)

// Run launches the TUI for a single download session and blocks until it
// finishes. A failed session surfaces as an error after the UI exits.
func Run(ctx context.Context, url string, opts model.CLIOptions) error {
	m := NewModel(ctx, url, opts)
	prog := tea.NewProgram(m, tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.job.err != nil {
		return fmt.Errorf("%s: %w", fm.job.url, fm.job.err)
	}
	return nil
}
