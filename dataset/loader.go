package dataset

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/theoremus-urban-solutions/routedesk/model"
	"github.com/theoremus-urban-solutions/routedesk/tabular"
)

// Table names used in logs and errors
const (
	TableRoutes  = "routes"
	TableDrivers = "drivers"
	TableTrips   = "trips"
)

// Sources locates the three tables
type Sources struct {
	Routes  string
	Drivers string
	Trips   string
}

// Loader fetches a single table
type Loader interface {
	Load(ctx context.Context, table, source string) ([]tabular.Record, error)
}

// Load fetches the three tables in parallel and builds a snapshot once all
// have resolved. Failed tables are empty in the result and reported in err.
func Load(ctx context.Context, l Loader, src Sources, logger *zap.Logger) (*Snapshot, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var (
		routes  []model.Route
		drivers []model.Driver
		trips   []model.Trip
		errs    [3]error
		g       errgroup.Group
	)
	g.Go(func() error {
		routes, errs[0] = loadTable[model.Route](ctx, l, TableRoutes, src.Routes, logger)
		return nil
	})
	g.Go(func() error {
		drivers, errs[1] = loadTable[model.Driver](ctx, l, TableDrivers, src.Drivers, logger)
		return nil
	})
	g.Go(func() error {
		trips, errs[2] = loadTable[model.Trip](ctx, l, TableTrips, src.Trips, logger)
		return nil
	})
	_ = g.Wait()

	s := New(routes, drivers, trips, logger)
	logger.Info("snapshot loaded",
		zap.String("version", s.Version),
		zap.Int("routes", len(s.Routes)),
		zap.Int("drivers", len(s.Drivers)),
		zap.Int("trips", len(s.Trips)))
	return s, errors.Join(errs[:]...)
}

func loadTable[T any](ctx context.Context, l Loader, table, source string, logger *zap.Logger) ([]T, error) {
	recs, err := l.Load(ctx, table, source)
	if err != nil {
		logger.Error("table load failed", zap.String("table", table), zap.String("source", source), zap.Error(err))
		return nil, err
	}
	out, err := tabular.Decode[T](recs)
	if err != nil {
		// rows are kept with the fields that did decode
		logger.Warn("table rows partially decoded", zap.String("table", table), zap.Error(err))
	}
	return out, nil
}
