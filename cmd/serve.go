package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/logging"
	"github.com/abhisek/quizdeck/internal/site"
	"github.com/abhisek/quizdeck/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pages over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd.Flags())
		if err != nil {
			return err
		}

		logger, closeLog, err := logging.Open(cfg.Log, os.Stderr)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer closeLog()

		srv, err := web.NewServer(web.Options{
			Table:  site.DefaultTable(),
			Config: cfg.Web,
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("build server: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return srv.ListenAndServe(ctx)
	},
}

func init() {
	addServeFlags(serveCmd.Flags())
}
