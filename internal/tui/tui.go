// Package tui renders the session state machine as a terminal UI.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/casebook/internal/app"
)

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, runner app.EffectRunner) error {
	m := New(ctx, runner)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
