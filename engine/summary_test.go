package engine_test

import (
	"testing"

	"github.com/theoremus-urban-solutions/routedesk/engine"
	"github.com/theoremus-urban-solutions/routedesk/internal/testutil"
)

func TestSummarize(t *testing.T) {
	got := engine.Summarize(testutil.Routes(), testutil.Drivers(), testutil.Trips())
	want := engine.Summary{TotalTrips: 5, TotalCities: 4, TotalDrivers: 3, TotalRoutes: 4}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestSummarize_EmptyTables(t *testing.T) {
	got := engine.Summarize(nil, nil, nil)
	if got != (engine.Summary{}) {
		t.Errorf("expected zero summary, got %+v", got)
	}
}
