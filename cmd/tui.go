package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/wlx/internal/shared"
	"github.com/desertthunder/wlx/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI starts the interactive terminal interface. Logs are redirected to a
// file so they don't fight bubbletea for the terminal.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	app, closer, err := r.connect(cmd.String("config"))
	if err != nil {
		return err
	}
	defer closer()

	logger, err := shared.NewFileLogger("./tmp/wlx-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	r.SetLogger(logger)

	deps := ui.Deps{
		Users:     app.users,
		Titles:    app.titles,
		Watchlist: app.watchlist,
		Session:   r.currentSession(),
	}

	program := tea.NewProgram(ui.NewModel(ctx, deps), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
