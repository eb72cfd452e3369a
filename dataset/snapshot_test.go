package dataset_test

import (
	"testing"

	"github.com/theoremus-urban-solutions/routedesk/dataset"
	"github.com/theoremus-urban-solutions/routedesk/internal/testutil"
	"github.com/theoremus-urban-solutions/routedesk/model"
)

func TestNew_AssignsIDsAndDedupes(t *testing.T) {
	routes := append(testutil.Routes(), model.Route{Name: "Москва - Казань", DetailVariants: "дубликат"})
	snap := dataset.New(routes, testutil.Drivers(), testutil.Trips(), nil)

	if len(snap.Routes) != 4 {
		t.Fatalf("expected 4 routes, got %d", len(snap.Routes))
	}
	for _, r := range snap.Routes {
		if r.ID != model.RouteID(r.Name) {
			t.Errorf("route %q has ID %q", r.Name, r.ID)
		}
		if r.DetailVariants == "дубликат" {
			t.Error("later duplicate kept")
		}
	}
	for _, d := range snap.Drivers {
		if d.ID == "" {
			t.Errorf("driver %q has no ID", d.FullName)
		}
	}
	if snap.Version == "" {
		t.Error("version not set")
	}
	if dataset.New(nil, nil, nil, nil).Version == snap.Version {
		t.Error("versions should differ between snapshots")
	}
}

func TestSnapshot_Lookups(t *testing.T) {
	snap := testutil.Snapshot(t)

	if _, ok := snap.RouteByName("москва - казань"); ok {
		t.Error("RouteByName should be exact")
	}
	if r, ok := snap.RouteByKey("  москва -  казань "); !ok || r.Name != "Москва - Казань" {
		t.Errorf("RouteByKey should normalize, got %+v %v", r, ok)
	}
	if d, ok := snap.DriverByName("ПЕТРОВ ПЁТР ПЕТРОВИЧ"); !ok || d.TotalRouteCount != 4 {
		t.Errorf("DriverByName should normalize, got %+v %v", d, ok)
	}
}

func TestSnapshot_Relations(t *testing.T) {
	snap := testutil.Snapshot(t)

	r, _ := snap.RouteByName("Москва - Уфа")
	drivers := snap.DriversForRoute(r)
	if len(drivers) != 1 || drivers[0].FullName != "Иванов Иван Иванович" {
		t.Errorf("unknown driver should be skipped, got %+v", drivers)
	}

	d, _ := snap.DriverByName("Иванов Иван Иванович")
	routes := snap.RoutesForDriver(d)
	if len(routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(routes))
	}
	if routes[0].Name != "Москва - Казань" || routes[1].Name != "Москва - Уфа" {
		t.Errorf("routes out of declared order: %s, %s", routes[0].Name, routes[1].Name)
	}
}

func TestEmpty(t *testing.T) {
	snap := dataset.Empty()
	if snap.Ready() {
		t.Error("empty snapshot should not be ready")
	}
	if _, ok := snap.RouteByName("Москва - Казань"); ok {
		t.Error("empty snapshot returned a route")
	}
}

func TestSnapshot_NormalizedNameCollisionKeepsFirst(t *testing.T) {
	routes := []model.Route{
		{Name: "A - B", DetailVariants: "first"},
		{Name: "a - b ", DetailVariants: "second"},
	}
	snap := dataset.New(routes, []model.Driver{{FullName: "Иванов", AvailableRoutes: "A - B"}}, nil, nil)

	if len(snap.Routes) != 2 {
		t.Fatalf("raw-distinct names should both be kept, got %d", len(snap.Routes))
	}
	if r, ok := snap.RouteByKey("a - b"); !ok || r.DetailVariants != "first" {
		t.Errorf("RouteByKey should return the first record, got %+v", r)
	}
	d, _ := snap.DriverByName("Иванов")
	if got := snap.RoutesForDriver(d); len(got) != 1 || got[0].DetailVariants != "first" {
		t.Errorf("RoutesForDriver should resolve the first record, got %+v", got)
	}
	if r, ok := snap.RouteByName("a - b "); !ok || r.DetailVariants != "second" {
		t.Errorf("exact name lookup should still reach the second record, got %+v", r)
	}
}

func TestNew_UnnamedRoutesKept(t *testing.T) {
	routes := []model.Route{
		{Name: "", OriginFull: "Москва", DestinationFull: "Тверь"},
		{Name: "", OriginFull: "Самара", DestinationFull: "Пенза"},
		{Name: "Москва - Казань"},
	}
	snap := dataset.New(routes, nil, nil, nil)

	if len(snap.Routes) != 3 {
		t.Errorf("rows without a name should not be treated as duplicates, got %d routes", len(snap.Routes))
	}
	if _, ok := snap.RouteByName(""); ok {
		t.Error("empty name should not be indexed")
	}
}
