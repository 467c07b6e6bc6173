package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qianyan/rimekit/internal/config"
	"github.com/qianyan/rimekit/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently committed text",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dbPath, err := config.GetHistoryDBFile()
		if err != nil {
			return err
		}
		store, err := history.Open(cmd.Context(), dbPath, log)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer store.Close()

		entries, err := store.Recent(context.Background(), historyLimit)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}
		for _, e := range entries {
			fmt.Printf("%s  %-10s %s\n", e.CommittedAt.Format("2006-01-02 15:04:05"), e.SchemaID, e.Text)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum entries to show")
	rootCmd.AddCommand(historyCmd)
}
