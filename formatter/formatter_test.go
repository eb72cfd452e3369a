package formatter_test

import (
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"

	"github.com/theoremus-urban-solutions/routedesk/config"
	"github.com/theoremus-urban-solutions/routedesk/engine"
	"github.com/theoremus-urban-solutions/routedesk/formatter"
	"github.com/theoremus-urban-solutions/routedesk/internal/testutil"
	"github.com/theoremus-urban-solutions/routedesk/session"
)

func newSession(t *testing.T, pageSize int) *session.Session {
	t.Helper()
	cfg := config.Default()
	cfg.Listing.PageSize = pageSize
	s, err := session.New(testutil.Snapshot(t), cfg, nil)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	return s
}

func TestNewSearchView(t *testing.T) {
	s := newSession(t, 12)
	v := formatter.NewSearchView(s, "Москва", "Казань")

	if len(v.Exact) != 1 || v.Exact[0].Route.Name != "Москва - Казань" {
		t.Fatalf("unexpected exact cards %+v", v.Exact)
	}
	if v.Exact[0].Stats.TripCount != 2 || v.Exact[0].DriverCount != 2 {
		t.Errorf("unexpected card figures %+v", v.Exact[0])
	}
	if len(v.Partial) != 1 || v.Partial[0].Route.Name != "Москва - Уфа" {
		t.Errorf("unexpected partial cards %+v", v.Partial)
	}

	text := formatter.NewResponseBuilder().BuildText(v)
	for _, want := range []string{"Москва → Казань", "Точные совпадения (1)", "Частичные совпадения (1)", "Москва - Уфа"} {
		if !strings.Contains(text, want) {
			t.Errorf("text output missing %q:\n%s", want, text)
		}
	}
}

func TestNewRouteList_Paging(t *testing.T) {
	s := newSession(t, 2)

	v := formatter.NewRouteList(s, "", engine.SortAlpha, 0)
	if v.Total != 4 || v.Shown != 2 || !v.HasMore || len(v.Items) != 2 {
		t.Errorf("first page: %+v", v)
	}
	if v.Items[0].Route.Name != "Казань - Уфа" {
		t.Errorf("expected alphabetical order, got %s first", v.Items[0].Route.Name)
	}

	v = formatter.NewRouteList(s, "", engine.SortAlpha, 5)
	if v.Shown != 4 || v.HasMore {
		t.Errorf("all pages: %+v", v)
	}
}

func TestNewDriverDetail(t *testing.T) {
	s := newSession(t, 12)
	d, _ := s.Snapshot().DriverByName("Иванов Иван Иванович")
	v := formatter.NewDriverDetail(s, d)

	if !v.Top {
		t.Error("expected top badge")
	}
	if v.Earnings != 100000 || v.Financials.TotalTrips != 2 {
		t.Errorf("unexpected figures %+v", v.Financials)
	}
	if len(v.ByRoute) != 2 || v.ByRoute[0].Route != "Москва - Казань" {
		t.Errorf("unexpected per-route order %+v", v.ByRoute)
	}
}

func TestBuildJSON_RouteDetail(t *testing.T) {
	s := newSession(t, 12)
	r, _ := s.Snapshot().RouteByName("Самара - Уфа")
	data, err := formatter.NewResponseBuilder().BuildJSON(formatter.NewRouteDetail(s, r))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var got struct {
		Route struct {
			Name string `json:"name"`
		} `json:"route"`
		Stats    engine.RouteStats `json:"stats"`
		Variants []struct {
			Departure string `json:"departure"`
		} `json:"variants"`
		Drivers []any `json:"drivers"`
	}
	if err := jsoniter.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got.Route.Name != "Самара - Уфа" {
		t.Errorf("unexpected route %q", got.Route.Name)
	}
	if !got.Stats.Estimated || got.Stats.TripCount != 3 || got.Stats.TotalCost != 355000 {
		t.Errorf("fallback stats not rendered: %+v", got.Stats)
	}
	if len(got.Variants) != 1 || got.Variants[0].Departure != "Самара" {
		t.Errorf("unexpected variants %+v", got.Variants)
	}
	if got.Drivers == nil || len(got.Drivers) != 0 {
		t.Errorf("drivers should be an empty array, got %s", data)
	}
}

func TestBuildText_Summary(t *testing.T) {
	s := newSession(t, 12)
	text := formatter.NewResponseBuilder().BuildText(s.Summary())
	for _, want := range []string{"Рейсов: 5", "Городов: 4", "Водителей: 3", "Маршрутов: 4"} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q:\n%s", want, text)
		}
	}
}

func TestNewDriverList_Filtered(t *testing.T) {
	s := newSession(t, 2)

	v := formatter.NewDriverList(s, "+7 900", engine.SortEarnings, 0)
	if v.Query != "+7 900" || v.Total != 2 || v.Shown != 2 || v.HasMore {
		t.Errorf("unexpected list %+v", v)
	}
	if len(v.Items) != 2 || v.Items[0].Driver.FullName != "Петров Пётр Петрович" {
		t.Errorf("unexpected order %+v", v.Items)
	}
}
