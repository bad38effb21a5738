/*
Copyright (c) 2025 NTT Ltd.

Licensed under the Mozilla Public License Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://mozilla.org/MPL/2.0/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package nttmcp

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// VIPFunctionType selects which class of default VIP function to list.
type VIPFunctionType string

const (
	VIPFunctionHealthMonitor      VIPFunctionType = "health_monitor"
	VIPFunctionPersistenceProfile VIPFunctionType = "persistence_profile"
	VIPFunctionIRule              VIPFunctionType = "irule"
)

// VIPFunctionTypes returns the supported function type values.
func VIPFunctionTypes() []string {
	return []string{
		string(VIPFunctionHealthMonitor),
		string(VIPFunctionPersistenceProfile),
		string(VIPFunctionIRule),
	}
}

// VIPListenerCompatibility describes one virtual listener combination a
// VIP function may be attached to.
type VIPListenerCompatibility struct {
	Protocol string `json:"protocol"`
	Type     string `json:"type"`
}

// VIPFunction is a default health monitor, persistence profile or iRule
// available within a Cloud Network Domain.
type VIPFunction struct {
	ID                           string                     `json:"id"`
	Name                         string                     `json:"name"`
	NodeCompatible               bool                       `json:"nodeCompatible,omitempty"`
	PoolCompatible               bool                       `json:"poolCompatible,omitempty"`
	FallbackCompatible           bool                       `json:"fallbackCompatible,omitempty"`
	VirtualListenerCompatibility []VIPListenerCompatibility `json:"virtualListenerCompatibility,omitempty"`
}

// Each function class is listed under its own path and collection key.
type vipFunctionList struct {
	TotalCount          int           `json:"totalCount"`
	HealthMonitors      []VIPFunction `json:"defaultHealthMonitor"`
	PersistenceProfiles []VIPFunction `json:"defaultPersistenceProfile"`
	IRules              []VIPFunction `json:"defaultIrule"`
}

// ListVIPFunctions returns the default VIP functions of one class
// available in a Cloud Network Domain.
func (c *Client) ListVIPFunctions(ctx context.Context, networkDomainID string, functionType VIPFunctionType) ([]VIPFunction, error) {
	var endpoint string
	switch functionType {
	case VIPFunctionHealthMonitor:
		endpoint = "defaultHealthMonitor"
	case VIPFunctionPersistenceProfile:
		endpoint = "defaultPersistenceProfile"
	case VIPFunctionIRule:
		endpoint = "defaultIrule"
	default:
		return nil, fmt.Errorf("invalid VIP function type %q: must be one of %s",
			functionType, strings.Join(VIPFunctionTypes(), ", "))
	}

	query := url.Values{}
	query.Set("networkDomainId", networkDomainID)

	var list vipFunctionList
	if err := c.get(ctx, c.orgURL("networkDomainVip", endpoint), query, &list); err != nil {
		return nil, err
	}

	switch functionType {
	case VIPFunctionPersistenceProfile:
		return list.PersistenceProfiles, nil
	case VIPFunctionIRule:
		return list.IRules, nil
	default:
		return list.HealthMonitors, nil
	}
}
