package cmd

import (
	"fmt"
	"time"

	"charge-finder/core/storage"
	"charge-finder/feature/snapshot"

	"github.com/spf13/cobra"
)

var pruneOlderThan time.Duration

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Store a reconciled nearby result in object storage",
	Long: `Runs a nearby search and writes the result as JSON to the configured bucket
under snapshots/<timestamp>-<uuid>.json.`,
	Example: "  charge-finder export --lat 48.137 --lon 11.575 --radius 10000",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, svc, err := newSnapshotService()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		q, err := nearbyQueryFromFlags()
		if err != nil {
			return err
		}
		info, err := svc.Export(cmd.Context(), q, "")
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), info)
	},
}

var exportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, svc, err := newSnapshotService()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		infos, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), infos)
	},
}

var exportPruneCmd = &cobra.Command{
	Use:     "prune",
	Short:   "Delete snapshots older than a retention window",
	Example: "  charge-finder export prune --older-than 720h",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, svc, err := newSnapshotService()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		removed, err := svc.Prune(cmd.Context(), pruneOlderThan)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), map[string]int{"removed": removed})
	},
}

func newSnapshotService() (*components, *snapshot.Service, error) {
	a, err := newApp()
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return a, snapshot.NewService(store, a.cfg.Storage, a.stationService(), a.logger), nil
}

func init() {
	addSearchFlags(exportCmd)
	exportPruneCmd.Flags().DurationVar(&pruneOlderThan, "older-than", 30*24*time.Hour, "Retention window")
	exportCmd.AddCommand(exportListCmd)
	exportCmd.AddCommand(exportPruneCmd)
	RootCmd.AddCommand(exportCmd)
}
