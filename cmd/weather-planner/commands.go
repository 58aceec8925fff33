package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/model"
	"weather-planner/pkg/util/numberutils"
)

func printJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <query>",
		Short: "Resolve a location query against the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			results, err := app.locations.Resolve(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), results)
		},
	}
}

func weatherCmd() *cobra.Command {
	var (
		source   string
		forecast bool
	)

	cmd := &cobra.Command{
		Use:   "weather <lat> <lon>",
		Short: "Print current conditions or the forecast at a coordinate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, latErr := numberutils.ToFloat64WithError(args[0])
			lon, lonErr := numberutils.ToFloat64WithError(args[1])
			if latErr != nil || lonErr != nil {
				return fmt.Errorf("invalid coordinates %q %q", args[0], args[1])
			}
			coord := entity.Coordinate{Latitude: lat, Longitude: lon}

			app, err := newApplication(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			if forecast {
				set, cached, err := app.weather.GetForecast(cmd.Context(), nil, coord, source)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), model.ForecastResult{Success: true, Data: set, Cached: cached})
			}

			snapshot, cached, err := app.weather.GetCurrent(cmd.Context(), nil, coord, source)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), model.WeatherResult{
				Success: true,
				Data:    snapshot,
				Display: app.weather.Display(snapshot),
				Cached:  cached,
			})
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", entity.SourceNWS.String(), "weather source: nws, tomorrow or synthetic")
	cmd.Flags().BoolVarP(&forecast, "forecast", "f", false, "print the forecast instead of current conditions")
	return cmd
}

func planCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <message...>",
		Short: "Ask the planner for a day plan",
		Long:  "Run one planner turn, e.g. plan \"museums and dining in seattle tomorrow\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			current, _ := app.sessions.GetOrCreate("")
			reply := app.planner.Converse(cmd.Context(), current, strings.Join(args, " "))

			out := cmd.OutOrStdout()
			if reply.Type != model.ReplyPlan {
				_, err = fmt.Fprintln(out, reply.Message)
				return err
			}
			_, err = fmt.Fprintf(out, "%s\n\n%s\n\n%s\n", reply.Message, reply.Summary, reply.PlanText)
			return err
		},
	}
}
