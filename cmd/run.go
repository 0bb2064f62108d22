package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/logging"
	"github.com/abhisek/quizdeck/internal/site"
)

// runApp resolves configuration and launches the TUI. Logs go to the
// configured file only; the alternate screen owns the terminal.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd.Flags())
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.Log, io.Discard)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	return app.Run(app.Options{
		Table:     site.DefaultTable(),
		StartPath: cfg.StartPath,
		Logger:    logger,
	})
}
