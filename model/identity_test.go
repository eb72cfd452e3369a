package model_test

import (
	"testing"

	"github.com/theoremus-urban-solutions/routedesk/model"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Иванов Иван", "иванов иван"},
		{"  Иванов   Иван ", "иванов иван"},
		{"ИВАНОВ\tИВАН", "иванов иван"},
	}
	for _, tt := range tests {
		if got := model.NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestStableIDs(t *testing.T) {
	if model.DriverID("Иванов Иван") != model.DriverID(" иванов  иван ") {
		t.Error("formatting drift should not change the driver ID")
	}
	if model.DriverID("Иванов Иван") == model.DriverID("Петров Пётр") {
		t.Error("different drivers share an ID")
	}
	if model.RouteID("Москва - Казань") == model.DriverID("Москва - Казань") {
		t.Error("route and driver IDs should live in separate namespaces")
	}
	if model.RouteID("Москва - Казань") != model.RouteID("Москва - Казань") {
		t.Error("route ID is not deterministic")
	}
}
