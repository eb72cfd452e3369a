package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/routedesk/formatter"
)

var (
	fromCity  string
	toCity    string
	listQuery string
	listSort  string
	listPages int
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List all cities in Russian alphabetical order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(cmd, sess.Cities())
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Suggest city names containing query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(cmd, sess.SuggestCities(args[0]))
	},
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find exact and partial routes between two cities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(cmd, formatter.NewSearchView(sess, fromCity, toCity))
	},
}

var routeCmd = &cobra.Command{
	Use:   "route <name>",
	Short: "Show a route with statistics, itineraries and drivers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, ok := sess.Snapshot().RouteByName(args[0])
		if !ok {
			r, ok = sess.Snapshot().RouteByKey(args[0])
		}
		if !ok {
			return fmt.Errorf("route %q not found", args[0])
		}
		return render(cmd, formatter.NewRouteDetail(sess, r))
	},
}

var driverCmd = &cobra.Command{
	Use:   "driver <full name>",
	Short: "Show a driver's trips, earnings and per-route breakdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, ok := sess.Snapshot().DriverByName(args[0])
		if !ok {
			return fmt.Errorf("driver %q not found", args[0])
		}
		return render(cmd, formatter.NewDriverDetail(sess, d))
	},
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List routes, optionally filtered and sorted (trips|drivers|alpha)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(cmd, formatter.NewRouteList(sess, listQuery, listSort, listPages))
	},
}

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List drivers, optionally filtered and sorted (routes|earnings|alpha)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(cmd, formatter.NewDriverList(sess, listQuery, listSort, listPages))
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Count loaded trips, cities, drivers and routes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(cmd, sess.Summary())
	},
}

func init() {
	searchCmd.Flags().StringVar(&fromCity, "from", "", "origin city")
	searchCmd.Flags().StringVar(&toCity, "to", "", "destination city")
	_ = searchCmd.MarkFlagRequired("from")
	_ = searchCmd.MarkFlagRequired("to")

	for _, c := range []*cobra.Command{routesCmd, driversCmd} {
		c.Flags().StringVarP(&listQuery, "query", "q", "", "case-insensitive substring filter")
		c.Flags().StringVarP(&listSort, "sort", "s", "", "sort order")
		c.Flags().IntVar(&listPages, "pages", 0, "number of extra pages to load")
	}

	rootCmd.AddCommand(citiesCmd, suggestCmd, searchCmd, routeCmd, driverCmd, routesCmd, driversCmd, summaryCmd)
}
