package nttmcp

import (
	"context"
	"net/url"
)

// Geo is a Cloud Control geographic region as reported by the API, not
// to be confused with the region keys used to pick an endpoint.
type Geo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	State         string `json:"state,omitempty"`
	CloudAPIHost  string `json:"cloudApiHost,omitempty"`
	CloudUIURL    string `json:"cloudUiUrl,omitempty"`
	FtpsHost      string `json:"ftpsHost,omitempty"`
	MonitoringURL string `json:"monitoringUrl,omitempty"`
	IsHome        bool   `json:"isHome,omitempty"`
	Timezone      string `json:"timezone,omitempty"`
}

type geoList struct {
	TotalCount int   `json:"totalCount"`
	Geos       []Geo `json:"geographicRegion"`
}

// GeoFilter narrows a ListGeos call. Empty fields are not sent.
type GeoFilter struct {
	ID     string
	Name   string
	IsHome bool
}

// ListGeos returns the geographic regions visible to the organization.
func (c *Client) ListGeos(ctx context.Context, filter GeoFilter) ([]Geo, error) {
	query := url.Values{}
	if filter.ID != "" {
		query.Set("id", filter.ID)
	}
	if filter.Name != "" {
		query.Set("name", filter.Name)
	}
	if filter.IsHome {
		query.Set("isHome", "true")
	}

	var list geoList
	if err := c.get(ctx, c.orgURL("infrastructure", "geographicRegion"), query, &list); err != nil {
		return nil, err
	}
	return list.Geos, nil
}
