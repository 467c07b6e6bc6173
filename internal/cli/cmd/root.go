// Package cmd provides Cobra CLI commands for rimekit.
package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/qianyan/rimekit/internal/build"
	"github.com/qianyan/rimekit/internal/config"
	"github.com/qianyan/rimekit/internal/logging"
)

var (
	buildInfo build.Info
	cfgMgr    *config.Manager
	log       zerolog.Logger

	rootCmd = &cobra.Command{
		Use:   "rimekit",
		Short: "Composition session engine for Rime-style input methods",
		Long: `Rimekit - the composition session and candidate-lifecycle engine
behind a Rime-style input method.

It owns the backend session, routes key events, paginates and selects
candidates, and coordinates schema and color-scheme switches. Use
'rimekit repl' for an interactive composition session, or explore the
subcommands for schema, history, and deployment operations.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			cfgMgr, err = config.NewManager()
			if err != nil {
				return fmt.Errorf("initialize config: %w", err)
			}

			logCfg := logging.DefaultConfig()
			cfg := cfgMgr.Get()
			logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
			if cfg.Logging.Format != "" {
				logCfg.Format = cfg.Logging.Format
			}
			log = logging.New(logCfg)
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("rimekit %s (%s, built %s, %s)\n",
				buildInfo.Version, buildInfo.Commit, buildInfo.BuildDate, buildInfo.GoVersion)
		},
	}
)

// SetBuildInfo injects build-time identification from main.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
