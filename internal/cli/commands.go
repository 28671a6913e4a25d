package cli

import (
	"fmt"
	"io"
	"strings"

	"campus-navigator/internal/models"

	"github.com/spf13/cobra"
)

func newLocationsCmd(load serviceLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List every location on the campus map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load(cmd)
			if err != nil {
				return err
			}
			locations, err := svc.Locations(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Available locations on campus:")
			for _, loc := range locations {
				fmt.Fprintf(out, "- %s\n", loc)
			}
			return nil
		},
	}
}

func newRouteCmd(load serviceLoader) *cobra.Command {
	var speed float64

	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Print the shortest walking route between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load(cmd)
			if err != nil {
				return err
			}
			route, err := svc.ShortestRoute(cmd.Context(), args[0], args[1], speed)
			if err != nil {
				return err
			}

			printRoute(cmd.OutOrStdout(), args[0], args[1], route)
			return nil
		},
	}

	cmd.Flags().Float64Var(&speed, "speed", 0, "walking speed in km/h (default from config)")
	return cmd
}

func newOptionsCmd(load serviceLoader) *cobra.Command {
	var speed float64

	cmd := &cobra.Command{
		Use:   "options FROM TO",
		Short: "Print up to three route options, fastest first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load(cmd)
			if err != nil {
				return err
			}
			options, err := svc.RouteOptions(cmd.Context(), args[0], args[1], speed)
			if err != nil {
				return err
			}

			printOptions(cmd.OutOrStdout(), options)
			return nil
		},
	}

	cmd.Flags().Float64Var(&speed, "speed", 0, "walking speed in km/h (default from config)")
	return cmd
}

func printRoute(w io.Writer, from, to string, route *models.Route) {
	if len(route.Path) == 1 {
		fmt.Fprintf(w, "You are already at %s.\n", from)
		return
	}

	fmt.Fprintf(w, "Route from %s to %s:\n", from, to)
	for i, stop := range route.Path {
		fmt.Fprintf(w, "  %d. %s\n", i+1, stop)
	}
	fmt.Fprintf(w, "Distance: %.2f m\n", route.Distance)
	fmt.Fprintf(w, "Estimated time: %s\n", FormatTravelTime(route.TravelTime))
}

func printOptions(w io.Writer, options []models.RouteOption) {
	for i, o := range options {
		fmt.Fprintf(w, "Option %d: %s\n", i+1, o.Description)
		fmt.Fprintf(w, "  %s\n", strings.Join(o.Path, " -> "))
		fmt.Fprintf(w, "  Distance: %.2f m, time: %s\n", o.Distance, FormatTravelTime(o.TravelTime))
	}
}

// FormatTravelTime renders minutes as "N min" or, from an hour up, "H hr M min"
func FormatTravelTime(minutes float64) string {
	total := int(minutes + 0.5)
	if total < 60 {
		return fmt.Sprintf("%d min", total)
	}
	return fmt.Sprintf("%d hr %d min", total/60, total%60)
}
