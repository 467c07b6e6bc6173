package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List available input schemas",
	RunE: func(_ *cobra.Command, _ []string) error {
		c, err := startCore()
		if err != nil {
			return err
		}
		defer c.close()

		schemas, err := c.schemas.List()
		if err != nil {
			return fmt.Errorf("list schemas: %w", err)
		}
		active := c.schemas.Active()
		for _, s := range schemas {
			marker := " "
			if s.ID == active {
				marker = "*"
			}
			fmt.Printf("%s %-12s %s\n", marker, s.ID, s.Name)
		}
		return nil
	},
}

var schemasSwitchCmd = &cobra.Command{
	Use:   "switch <id>",
	Short: "Make a schema the active one",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		c, err := startCore()
		if err != nil {
			return err
		}
		defer c.close()

		id := args[0]
		if !c.schemas.Switch(id) {
			return fmt.Errorf("unknown schema %q", id)
		}

		// Persist the selection through whole-object replacement.
		next := *cfgMgr.Get()
		next.Schema.ActiveID = id
		if err := cfgMgr.Replace(&next); err != nil {
			return err
		}
		fmt.Printf("active schema: %s\n", id)
		return nil
	},
}

func init() {
	schemasCmd.AddCommand(schemasSwitchCmd)
	rootCmd.AddCommand(schemasCmd)
}
