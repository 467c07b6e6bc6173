package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qianyan/rimekit/internal/deploy"
)

var (
	deploySource string
	deployForce  bool
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Provision shared-asset and user-data directories",
	Long: `Copies bundled assets into the shared data directory, comparing
checksums against the last sync. With --force every asset is re-copied
and the next session start performs a full resource re-scan.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := cfgMgr.Get()
		prov := deploy.New(deploySource, cfg.Deployment.SharedDataDir, cfg.Deployment.UserDataDir, log)

		if err := prov.Sync(cmd.Context(), deployForce); err != nil {
			return fmt.Errorf("deploy: %w", err)
		}

		if deployForce {
			// Arm the one-shot override so the next session start
			// re-scans everything.
			next := *cfgMgr.Get()
			next.Deployment.OverrideUserData = true
			if err := cfgMgr.Replace(&next); err != nil {
				return err
			}
		}
		fmt.Println("deploy complete")
		return nil
	},
}

func init() {
	deployCmd.Flags().StringVar(&deploySource, "source", "", "directory holding bundled assets")
	deployCmd.Flags().BoolVar(&deployForce, "force", false, "re-copy all assets and force a full re-scan")
	rootCmd.AddCommand(deployCmd)
}
