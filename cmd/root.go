package cmd

import (
	"fmt"
	"os"

	"charge-finder/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "charge-finder",
	Short: "EV charging station finder",
	Long: `Charge Finder merges a public charging-station registry with a commercial
place directory into one canonical list of stations, enriched with ratings,
photos, amenities and live connector availability.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with development timestamps reads better in a
		// terminal than the production JSON logger.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
