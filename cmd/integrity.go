package cmd

import (
	"fmt"

	"charge-finder/core/database"
	"charge-finder/core/storage"
	"charge-finder/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check storage, database and provider health",
	Long: `Checks that the snapshot bucket exists, that the search history table matches
its model and that both station providers answer a probe search.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, svc, err := newIntegrityService()
		if err != nil {
			return err
		}
		defer a.logger.Sync()
		return printResult(cmd.OutOrStdout(), svc.RunAll(cmd.Context()))
	},
}

// storageCheckCmd represents the integrity storage command
var storageCheckCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and optionally fix the snapshot bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, svc, err := newIntegrityService()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		report, err := svc.CheckStructure(cmd.Context())
		if err != nil {
			return err
		}
		if fixFlag && !report.OK() {
			if err := svc.FixStructure(cmd.Context(), report.Missing); err != nil {
				return fmt.Errorf("fix storage structure: %w", err)
			}
			a.logger.Info("Storage structure fixed", zap.Strings("fixed", report.Missing))
			if report, err = svc.CheckStructure(cmd.Context()); err != nil {
				return err
			}
		}
		return printResult(cmd.OutOrStdout(), report)
	},
}

// databaseCheckCmd represents the integrity database command
var databaseCheckCmd = &cobra.Command{
	Use:   "database",
	Short: "Compare the search history table with its model",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, svc, err := newIntegrityService()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		report, err := svc.CheckDatabase()
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), report)
	},
}

// providersCheckCmd represents the integrity providers command
var providersCheckCmd = &cobra.Command{
	Use:   "providers",
	Short: "Probe the registry and directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, svc, err := newIntegrityService()
		if err != nil {
			return err
		}
		defer a.logger.Sync()
		return printResult(cmd.OutOrStdout(), svc.CheckProviders(cmd.Context(), integrity.DefaultProbeLatitude, integrity.DefaultProbeLongitude))
	},
}

func newIntegrityService() (*components, *integrity.Service, error) {
	a, err := newApp()
	if err != nil {
		return nil, nil, err
	}

	var store storage.Client
	if client, err := storage.NewClient(a.cfg.Storage); err != nil {
		a.logger.Warn("Storage client unavailable", zap.Error(err))
	} else {
		store = client
	}

	var db *gorm.DB
	if conn, err := database.Connect(a.cfg.Database); err != nil {
		a.logger.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	return a, integrity.NewService(store, a.cfg.Storage, db, a.probes(), a.logger), nil
}

func init() {
	storageCheckCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket and missing folders")
	integrityCmd.AddCommand(storageCheckCmd)
	integrityCmd.AddCommand(databaseCheckCmd)
	integrityCmd.AddCommand(providersCheckCmd)
	RootCmd.AddCommand(integrityCmd)
}
