package nttmcp

import (
	"context"
	"net/url"
)

// NetworkDomain is the subset of a Cloud Network Domain needed to scope
// VIP lookups.
type NetworkDomain struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DatacenterID string `json:"datacenterId"`
	State        string `json:"state,omitempty"`
}

type networkDomainList struct {
	TotalCount     int             `json:"totalCount"`
	NetworkDomains []NetworkDomain `json:"networkDomain"`
}

// GetNetworkDomainByName looks up a Cloud Network Domain by name within a
// datacenter. It returns (nil, nil) when no domain with that name exists.
func (c *Client) GetNetworkDomainByName(ctx context.Context, name, datacenterID string) (*NetworkDomain, error) {
	query := url.Values{}
	query.Set("name", name)
	query.Set("datacenterId", datacenterID)

	var list networkDomainList
	if err := c.get(ctx, c.orgURL("network", "networkDomain"), query, &list); err != nil {
		return nil, err
	}
	if len(list.NetworkDomains) == 0 {
		return nil, nil
	}
	return &list.NetworkDomains[0], nil
}
