package main

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fennwald/tracker-api/internal/errors"
	"github.com/fennwald/tracker-api/internal/tui"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Launch the dashboard",
	Long:  `Launch the interactive encounter tracker dashboard. A persisted refresh token restores the previous session automatically.`,
	RunE:  runDash,
}

func runDash(cmd *cobra.Command, _ []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}

	// Restore the session from the persisted refresh token. A missing or
	// rejected token just means the login screen shows first.
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := d.gateway.Refresh(ctx); err != nil {
		if !errors.IsNotFound(err) {
			slog.Debug("session restore failed", "error", err.Error())
		}
	}

	app := tui.NewApp(tui.Config{
		Store:     d.store,
		Gateway:   d.gateway,
		Snapshots: d.snapshots,
		IDs:       d.ids,
	})

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("dashboard exited with error: %w", err)
	}
	return nil
}
