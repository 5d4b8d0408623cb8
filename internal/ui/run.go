package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaanHessen/smallheath/internal/util"
)

// Run boots the TUI program and blocks until it exits.
func Run(ctx context.Context, deps Deps, cfg util.Config) error {
	m := initialModel(ctx, deps, cfg)
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
