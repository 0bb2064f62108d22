package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/quizdeck/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Quiz deck app skeleton",
	Long:  "Quizdeck: a navigable quiz app skeleton with Home, My Quizzes, Play, Edit and About pages, in the terminal or the browser.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addLogFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().String("path", "", "Path to open (overrides QUIZDECK_START_PATH)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(versionCmd)
}

func addLogFlags(fs *pflag.FlagSet) {
	fs.String("log-level", "", "Log level: debug, info, warn or error (overrides QUIZDECK_LOG_LEVEL)")
	fs.String("log-format", "", "Log format: text or json (overrides QUIZDECK_LOG_FORMAT)")
	fs.String("log-file", "", "Write logs to this file (overrides QUIZDECK_LOG_FILE)")
}

func addServeFlags(fs *pflag.FlagSet) {
	fs.String("addr", "", "Listen address (overrides QUIZDECK_ADDR)")
	fs.String("tls-cert", "", "TLS certificate file (overrides QUIZDECK_TLS_CERT)")
	fs.String("tls-key", "", "TLS key file (overrides QUIZDECK_TLS_KEY)")
	fs.Bool("http3", false, "Also serve HTTP/3 over QUIC; requires TLS (overrides QUIZDECK_HTTP3)")
	fs.Duration("shutdown-timeout", 0, "Graceful shutdown timeout (overrides QUIZDECK_SHUTDOWN_TIMEOUT)")
}

// resolveConfig returns the configuration using flags (highest priority),
// then QUIZDECK_* env vars, then defaults.
func resolveConfig(fs *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}

	if fs.Changed("log-level") {
		v, _ := fs.GetString("log-level")
		cfg.Log.Level = strings.ToLower(v)
	}
	if fs.Changed("log-format") {
		v, _ := fs.GetString("log-format")
		cfg.Log.Format = strings.ToLower(v)
	}
	if fs.Changed("log-file") {
		cfg.Log.File, _ = fs.GetString("log-file")
	}
	if fs.Changed("path") {
		cfg.StartPath, _ = fs.GetString("path")
	}
	if fs.Changed("addr") {
		cfg.Web.Addr, _ = fs.GetString("addr")
	}
	if fs.Changed("tls-cert") {
		cfg.Web.TLSCert, _ = fs.GetString("tls-cert")
	}
	if fs.Changed("tls-key") {
		cfg.Web.TLSKey, _ = fs.GetString("tls-key")
	}
	if fs.Changed("http3") {
		cfg.Web.HTTP3, _ = fs.GetBool("http3")
	}
	if fs.Changed("shutdown-timeout") {
		cfg.Web.ShutdownTimeout, _ = fs.GetDuration("shutdown-timeout")
	}

	return cfg, cfg.Validate()
}
