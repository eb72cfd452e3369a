// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theoremus-urban-solutions/routedesk/dataset"
	"github.com/theoremus-urban-solutions/routedesk/model"
)

// GetTestDataPath returns absolute path to testdata/
func GetTestDataPath() string {
	wd, _ := os.Getwd()
	for {
		testdataPath := filepath.Join(wd, "testdata")
		if _, err := os.Stat(testdataPath); err == nil {
			return testdataPath
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			panic("Could not find testdata directory")
		}
		wd = parent
	}
}

// TestDataFile returns the absolute path of a file under testdata/
func TestDataFile(name string) string {
	return filepath.Join(GetTestDataPath(), name)
}

// Sources returns the CSV fixtures under testdata/
func Sources() dataset.Sources {
	return dataset.Sources{
		Routes:  TestDataFile("routes.csv"),
		Drivers: TestDataFile("drivers.csv"),
		Trips:   TestDataFile("trips.csv"),
	}
}

// Routes is a small route table covering exact, partial and unrelated routes
func Routes() []model.Route {
	return []model.Route{
		{
			Name:             "Москва - Казань",
			OriginFull:       "Москва",
			DestinationFull:  "Казань",
			DetailVariants:   "Москва - Владимир - Нижний Новгород - Казань || Москва - Рязань - Казань",
			AvailableDrivers: "Иванов Иван Иванович; Петров Пётр Петрович",
		},
		{
			Name:             "Казань - Уфа",
			OriginFull:       "Казань",
			DestinationFull:  "Уфа",
			DetailVariants:   "Казань - Набережные Челны - Уфа",
			AvailableDrivers: "Сидоров Сидор Сидорович",
		},
		{
			Name:             "Москва - Уфа",
			OriginFull:       "Москва",
			DestinationFull:  "Уфа",
			DetailVariants:   "Москва - Казань - Уфа || Москва - Самара - Уфа",
			AvailableDrivers: "Иванов Иван Иванович;Неизвестный Водитель",
		},
		{
			Name:             "Самара - Уфа",
			OriginFull:       " Самара ",
			DestinationFull:  "Уфа",
			DetailVariants:   "Самара - Уфа",
			AvailableDrivers: "",
		},
	}
}

// Drivers is the driver table matching Routes
func Drivers() []model.Driver {
	return []model.Driver{
		{FullName: "Иванов Иван Иванович", Phone: "+7 900 111-22-33", AvailableRoutes: "Москва - Казань; Москва - Уфа", TotalRouteCount: 17},
		{FullName: "Петров Пётр Петрович", Phone: "+7 900 444-55-66", AvailableRoutes: "Москва - Казань", TotalRouteCount: 4},
		{FullName: "Сидоров Сидор Сидорович", Phone: "+7 912 777-88-99", AvailableRoutes: "Казань - Уфа", TotalRouteCount: 9},
	}
}

// Trips is the trip table matching Routes and Drivers
func Trips() []model.Trip {
	return []model.Trip{
		{RouteName: "Москва - Казань", DriverName: "Иванов Иван Иванович", Cost: 100000},
		{RouteName: "Москва - Казань", DriverName: "Петров Пётр Петрович", Cost: 200000},
		{RouteName: "Москва - Уфа", DriverName: "Иванов Иван Иванович", Cost: 0},
		{RouteName: "Казань - Уфа", DriverName: "Сидоров Сидор Сидорович", Cost: 90000},
		{RouteName: "Казань - Уфа", DriverName: "Сидоров Сидор Сидорович", Cost: 60001},
	}
}

// Snapshot builds a snapshot from the inline fixtures
func Snapshot(t *testing.T) *dataset.Snapshot {
	t.Helper()
	return dataset.New(Routes(), Drivers(), Trips(), nil)
}
