package model

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

var (
	routeNamespace  = uuid.NewSHA1(uuid.NameSpaceURL, []byte("routedesk:route"))
	driverNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("routedesk:driver"))
)

// NormalizeKey trims, collapses inner whitespace and case-folds a name
func NormalizeKey(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}

// RouteID returns the stable identifier for a route name
func RouteID(name string) string {
	return uuid.NewSHA1(routeNamespace, []byte(NormalizeKey(name))).String()
}

// DriverID returns the stable identifier for a driver full name
func DriverID(fullName string) string {
	return uuid.NewSHA1(driverNamespace, []byte(NormalizeKey(fullName))).String()
}
