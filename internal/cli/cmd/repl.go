package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/qianyan/rimekit/internal/candidate"
	"github.com/qianyan/rimekit/internal/config"
	"github.com/qianyan/rimekit/internal/history"
	"github.com/qianyan/rimekit/internal/tui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive composition session",
	Long: `Starts an interactive terminal session against the demo engine.
Type lowercase letters to compose, digits to select candidates, space
for the first candidate. Committed text is recorded in the history
database.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := startCore()
		if err != nil {
			return err
		}
		defer c.close()

		var opts []candidate.Option
		dbPath, err := config.GetHistoryDBFile()
		if err == nil {
			store, err := history.Open(context.Background(), dbPath, log)
			if err != nil {
				log.Warn().Err(err).Msg("history store unavailable")
			} else {
				defer store.Close()
				opts = append(opts, candidate.WithRecorder(store))
			}
		}

		model := tui.NewModel(c.router, nil, c.schemas, c.sessions, c.resolver, cfgMgr)
		cands := candidate.NewManager(c.sessions, model, log, opts...)
		model.SetCandidates(cands)

		if err := cfgMgr.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}

		if _, err := tea.NewProgram(model).Run(); err != nil {
			return fmt.Errorf("repl: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
