package tabular_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/routedesk/internal/testutil"
	"github.com/theoremus-urban-solutions/routedesk/tabular"
)

func TestFetcher_LocalFile(t *testing.T) {
	f := tabular.NewFetcher(time.Second)
	recs, err := f.Load(context.Background(), "trips", testutil.TestDataFile("trips.csv"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(recs) != 5 {
		t.Errorf("expected 5 trips, got %d", len(recs))
	}
}

func TestFetcher_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trips.csv" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("Маршрут,ФИО,СЕБЕСТОИМОСТЬ МАРШРУТА\nA,Иванов,10\n"))
	}))
	defer srv.Close()

	f := tabular.NewFetcher(time.Second)
	recs, err := f.Load(context.Background(), "trips", srv.URL+"/trips.csv")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(recs) != 1 || recs[0]["ФИО"] != "Иванов" {
		t.Errorf("unexpected records: %v", recs)
	}

	_, err = f.Load(context.Background(), "drivers", srv.URL+"/missing.csv")
	if err == nil {
		t.Fatal("expected error for HTTP 404")
	}
	if !tabular.IsLoadError(err) {
		t.Errorf("expected LoadError, got %T", err)
	}
}

func TestFetcher_MissingFile(t *testing.T) {
	f := tabular.NewFetcher(0)
	_, err := f.Load(context.Background(), "routes", "/nonexistent/routes.csv")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var le *tabular.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if le.Table != "routes" {
		t.Errorf("expected table routes, got %q", le.Table)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("underlying error should be not-exist: %v", err)
	}
}

func TestFetcher_EmptySource(t *testing.T) {
	f := tabular.NewFetcher(0)
	if _, err := f.Load(context.Background(), "routes", ""); err == nil {
		t.Error("expected error for empty source")
	}
}
