package nttmcp

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// DefaultRegion is used whenever an operation does not name a region.
	DefaultRegion = "na"

	// DefaultAPIVersion is targeted when the credential record carries no
	// explicit Cloud Control API version.
	DefaultAPIVersion = "2.11"
)

// Region describes one Cloud Control geographic API endpoint.
type Region struct {
	Name string
	Host string
}

var apiEndpoints = map[string]Region{
	"af": {Name: "MEA (Africa)", Host: "api-mea.mcp-services.net"},
	"ap": {Name: "Asia Pacific", Host: "api-ap.mcp-services.net"},
	"au": {Name: "Australia", Host: "api-au.mcp-services.net"},
	"ca": {Name: "Canada", Host: "api-canada.mcp-services.net"},
	"eu": {Name: "Europe", Host: "api-eu.mcp-services.net"},
	"na": {Name: "North America", Host: "api-na.mcp-services.net"},
}

// Regions returns the known region keys in sorted order.
func Regions() []string {
	keys := make([]string, 0, len(apiEndpoints))
	for key := range apiEndpoints {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// EndpointForRegion returns the well-known API host for a region key.
func EndpointForRegion(region string) (string, error) {
	entry, ok := apiEndpoints[region]
	if !ok {
		return "", fmt.Errorf("invalid region %q: regions must be one of %s", region, strings.Join(Regions(), ", "))
	}
	return entry.Host, nil
}
