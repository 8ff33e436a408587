package cmd

import (
	"fmt"
	"strconv"

	"charge-finder/core/reconcile"
	"charge-finder/feature/stations"

	"github.com/spf13/cobra"
)

var (
	nearbyLatitude  float64
	nearbyLongitude float64
	nearbyRadius    int
	nearbyLimit     int
	nearbySort      string
)

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "Query reconciled stations without starting the server",
}

var stationsNearbyCmd = &cobra.Command{
	Use:   "nearby",
	Short: "List reconciled stations around a point",
	Example: `  charge-finder stations nearby --lat 52.52 --lon 13.405 --radius 2000
  charge-finder stations nearby --lat 52.52 --lon 13.405 --sort rating -o yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		q, err := nearbyQueryFromFlags()
		if err != nil {
			return err
		}
		res, err := a.stationService().Nearby(cmd.Context(), q, "")
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), res)
	},
}

var stationsGetCmd = &cobra.Command{
	Use:     "get <id>",
	Short:   "Show one reconciled station",
	Example: "  charge-finder stations get ocm_12345",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		st, err := a.stationService().Station(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), map[string]any{"data": st})
	},
}

// nearbyQueryFromFlags validates the shared search flags with the same
// rules as the HTTP query.
func nearbyQueryFromFlags() (reconcile.NearbyQuery, error) {
	params := map[string]string{
		"latitude":  strconv.FormatFloat(nearbyLatitude, 'f', -1, 64),
		"longitude": strconv.FormatFloat(nearbyLongitude, 'f', -1, 64),
		"radius":    strconv.Itoa(nearbyRadius),
		"limit":     strconv.Itoa(nearbyLimit),
		"sort":      nearbySort,
	}
	q, err := stations.ParseNearbyQuery(func(k string) string { return params[k] })
	if err != nil {
		return q, fmt.Errorf("invalid search flags: %w", err)
	}
	return q, nil
}

// addSearchFlags registers the search flags on cmd.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&nearbyLatitude, "lat", 0, "Latitude of the search center")
	cmd.Flags().Float64Var(&nearbyLongitude, "lon", 0, "Longitude of the search center")
	cmd.Flags().IntVar(&nearbyRadius, "radius", stations.DefaultRadius, "Search radius in meters")
	cmd.Flags().IntVar(&nearbyLimit, "limit", stations.DefaultLimit, "Maximum number of stations")
	cmd.Flags().StringVar(&nearbySort, "sort", "", "Sort order: rating or distance")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
}

func init() {
	addSearchFlags(stationsNearbyCmd)
	stationsCmd.AddCommand(stationsNearbyCmd)
	stationsCmd.AddCommand(stationsGetCmd)
	RootCmd.AddCommand(stationsCmd)
}
