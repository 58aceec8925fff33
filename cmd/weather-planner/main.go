package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "weather-planner/configs"
	"weather-planner/pkg/log"
)

// @title weather-planner API
// @version 1.0
// @description Current conditions, forecasts and weather-aware day plans for a fixed catalog of locations.
func main() {
	defer log.Sync()

	rootCmd := &cobra.Command{
		Use:   "weather-planner",
		Short: "Weather lookups and weather-aware day planning",
		Long:  "Resolve locations, fetch current conditions and forecasts from NWS or Tomorrow.io, and build day plans around the forecast",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(weatherCmd())
	rootCmd.AddCommand(planCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
