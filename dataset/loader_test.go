package dataset_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/routedesk/dataset"
	"github.com/theoremus-urban-solutions/routedesk/internal/testutil"
	"github.com/theoremus-urban-solutions/routedesk/tabular"
)

func TestLoad_Fixtures(t *testing.T) {
	snap, err := dataset.Load(context.Background(), tabular.NewFetcher(time.Second), testutil.Sources(), nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(snap.Routes) != 3 {
		t.Errorf("expected 3 routes after dropping the duplicate, got %d", len(snap.Routes))
	}
	if len(snap.Drivers) != 3 {
		t.Errorf("expected 3 drivers, got %d", len(snap.Drivers))
	}
	if len(snap.Trips) != 5 {
		t.Errorf("expected 5 trips, got %d", len(snap.Trips))
	}

	r, ok := snap.RouteByName("Москва - Казань")
	if !ok {
		t.Fatal("route Москва - Казань missing")
	}
	if r.AvailableDrivers == "" {
		t.Error("duplicate row replaced the first occurrence")
	}

	d, ok := snap.DriverByName("Иванов Иван Иванович")
	if !ok {
		t.Fatal("driver missing")
	}
	if d.Phone != "79001112233" {
		t.Errorf("numeric phone: expected digits, got %q", d.Phone)
	}

	var blankCost, fractional bool
	for _, tr := range snap.Trips {
		if tr.RouteName == "Москва - Уфа" && tr.Cost == 0 {
			blankCost = true
		}
		if tr.Cost == 60001.5 {
			fractional = true
		}
	}
	if !blankCost || !fractional {
		t.Errorf("trip costs not decoded as expected: %+v", snap.Trips)
	}
	t.Logf("✓ loaded snapshot %s", snap.Version)
}

type stubLoader map[string][]tabular.Record

func (s stubLoader) Load(_ context.Context, table, source string) ([]tabular.Record, error) {
	recs, ok := s[table]
	if !ok {
		return nil, &tabular.LoadError{Table: table, Source: source, Err: errors.New("unavailable")}
	}
	return recs, nil
}

func TestLoad_MissingTableLeavesOthers(t *testing.T) {
	l := stubLoader{
		dataset.TableRoutes: {{"Маршрут": "Москва - Казань", "Доступные исполнители": "Иванов"}},
		dataset.TableTrips:  {{"Маршрут": "Москва - Казань", "ФИО": "Иванов", "СЕБЕСТОИМОСТЬ МАРШРУТА": float64(5)}},
	}

	snap, err := dataset.Load(context.Background(), l, dataset.Sources{Drivers: "drivers.csv"}, nil)
	if err == nil {
		t.Fatal("expected an error for the missing drivers table")
	}
	var le *tabular.LoadError
	if !errors.As(err, &le) || le.Table != dataset.TableDrivers {
		t.Errorf("expected drivers LoadError, got %v", err)
	}
	if len(snap.Routes) != 1 || len(snap.Trips) != 1 {
		t.Errorf("other tables should load: routes=%d trips=%d", len(snap.Routes), len(snap.Trips))
	}
	if len(snap.Drivers) != 0 {
		t.Errorf("drivers should be empty, got %d", len(snap.Drivers))
	}
	if !snap.Ready() {
		t.Error("snapshot with routes should be ready")
	}
}
