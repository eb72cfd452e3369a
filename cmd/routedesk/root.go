package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/routedesk/config"
	"github.com/theoremus-urban-solutions/routedesk/dataset"
	"github.com/theoremus-urban-solutions/routedesk/formatter"
	"github.com/theoremus-urban-solutions/routedesk/internal"
	"github.com/theoremus-urban-solutions/routedesk/session"
	"github.com/theoremus-urban-solutions/routedesk/tabular"
)

var (
	cfgFile string
	format  string
	noCache bool

	logger *zap.Logger
	sess   *session.Session
)

var rootCmd = &cobra.Command{
	Use:   "routedesk",
	Short: "Find routes between cities and inspect driver and trip figures",
	Long: `routedesk loads the routes, drivers and trips extracts and answers
dispatcher questions about them:

- which routes connect two cities, exactly or as part of a longer corridor
- trip count and cost statistics of a route
- a driver's trips, earnings and per-route breakdown
- filtered and sorted route and driver lists`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yml)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "text", "output format: text|json")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "ignore the snapshot cache file")
}

func setup(cmd *cobra.Command, args []string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q", format)
	}
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		config.Config = cfg
	} else if err := config.LoadAppConfig(); err != nil && !os.IsNotExist(err) {
		return err
	}
	cfg := config.Config

	var err error
	logger, err = internal.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}

	snap := loadSnapshot(cmd.Context(), cfg)
	sess, err = session.New(snap, cfg, logger)
	return err
}

func loadSnapshot(ctx context.Context, cfg config.AppConfig) *dataset.Snapshot {
	if ctx == nil {
		ctx = context.Background()
	}
	path := cfg.Cache.SnapshotPath
	if noCache {
		path = ""
	}
	fetcher := tabular.NewFetcher(time.Duration(cfg.Data.TimeoutMS) * time.Millisecond)
	snap, err := dataset.LoadCached(ctx, fetcher, dataset.Sources{
		Routes:  cfg.Data.Routes,
		Drivers: cfg.Data.Drivers,
		Trips:   cfg.Data.Trips,
	}, path, logger)
	if err != nil {
		logger.Warn("continuing with partial data", zap.Error(err))
	}
	if !snap.Ready() {
		logger.Warn("no records loaded", zap.String("routes", cfg.Data.Routes),
			zap.String("drivers", cfg.Data.Drivers), zap.String("trips", cfg.Data.Trips))
	}
	return snap
}

func render(cmd *cobra.Command, v any) error {
	rb := formatter.NewResponseBuilder()
	if format == "json" {
		buf, err := rb.BuildJSON(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(buf))
		return err
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), rb.BuildText(v))
	return err
}
