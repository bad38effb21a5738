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

package models

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

type VipFunctionDataSourceModel struct {
	Auth          []AuthCredentials `tfsdk:"auth"`
	Region        types.String      `tfsdk:"region"`
	Datacenter    types.String      `tfsdk:"datacenter"`
	NetworkDomain types.String      `tfsdk:"network_domain"`
	Type          types.String      `tfsdk:"type"`
	Count         types.Int64       `tfsdk:"count"`
	VipFunctions  []VipFunctionData `tfsdk:"vip_functions"`
}

type VipFunctionData struct {
	ID                           types.String               `tfsdk:"id"`
	Name                         types.String               `tfsdk:"name"`
	NodeCompatible               types.Bool                 `tfsdk:"node_compatible"`
	PoolCompatible               types.Bool                 `tfsdk:"pool_compatible"`
	FallbackCompatible           types.Bool                 `tfsdk:"fallback_compatible"`
	VirtualListenerCompatibility []VipListenerCompatibility `tfsdk:"virtual_listener_compatibility"`
}

type VipListenerCompatibility struct {
	Protocol types.String `tfsdk:"protocol"`
	Type     types.String `tfsdk:"type"`
}
