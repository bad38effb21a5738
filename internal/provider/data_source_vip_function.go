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

package provider

import (
	"context"
	"fmt"

	"terraform-provider-nttmcp/internal/models"
	"terraform-provider-nttmcp/internal/nttmcp"
	"terraform-provider-nttmcp/internal/validators"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &VipFunctionDataSource{}

func NewVipFunctionDataSource() datasource.DataSource {
	return &VipFunctionDataSource{}
}

// VipFunctionDataSource defines the data source implementation.
type VipFunctionDataSource struct {
	p *NttmcpProvider
}

func (d *VipFunctionDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_" + vipFunctionName
}

func VipFunctionDataSourceSchema() map[string]schema.Attribute {
	return map[string]schema.Attribute{
		"region": schema.StringAttribute{
			Optional:    true,
			Description: "The geographical region API to be used, defaults to na",
			Validators: []validator.String{
				validators.IsValidRegion(),
			},
		},
		"datacenter": schema.StringAttribute{
			Required:    true,
			Description: "The datacenter id e.g. NA9",
		},
		"network_domain": schema.StringAttribute{
			Required:    true,
			Description: "The name of the Cloud Network Domain",
		},
		"type": schema.StringAttribute{
			Optional:    true,
			Description: "The type of VIP function, one of health_monitor, persistence_profile or irule, defaults to health_monitor",
			Validators: []validator.String{
				stringvalidator.OneOf(nttmcp.VIPFunctionTypes()...),
			},
		},
		"count": schema.Int64Attribute{
			Computed:    true,
			Description: "The number of objects returned",
		},
		"vip_functions": schema.ListNestedAttribute{
			MarkdownDescription: "List of default VIP functions available in the Cloud Network Domain",
			Computed:            true,
			NestedObject: schema.NestedAttributeObject{
				Attributes: map[string]schema.Attribute{
					"id": schema.StringAttribute{
						Computed:    true,
						Description: "The UUID of the VIP function",
					},
					"name": schema.StringAttribute{
						Computed:    true,
						Description: "The name of the VIP function",
					},
					"node_compatible": schema.BoolAttribute{
						Computed:    true,
						Description: "Can this function be used on a VIP Node",
					},
					"pool_compatible": schema.BoolAttribute{
						Computed:    true,
						Description: "Can this function be used on a VIP Pool",
					},
					"fallback_compatible": schema.BoolAttribute{
						Computed:    true,
						Description: "Can this function be configured as a fallback profile",
					},
					"virtual_listener_compatibility": schema.ListNestedAttribute{
						Computed:    true,
						Description: "What type of VIP Listener the function is compatible with",
						NestedObject: schema.NestedAttributeObject{
							Attributes: map[string]schema.Attribute{
								"protocol": schema.StringAttribute{
									Computed:    true,
									Description: "The protocol name",
								},
								"type": schema.StringAttribute{
									Computed:    true,
									Description: "The protocol group type",
								},
							},
						},
					},
				},
			},
		},
	}
}

func (d *VipFunctionDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Cloud Control VIP support function data source",
		Attributes:          VipFunctionDataSourceSchema(),
		Blocks:              AuthDatasourceBlockMap(),
	}
}

func (d *VipFunctionDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	// Prevent panic if the provider has not been configured.
	if req.ProviderData == nil {
		return
	}

	p, ok := req.ProviderData.(*NttmcpProvider)

	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Data Source Configure Type",
			fmt.Sprintf("Expected *NttmcpProvider, got: %T. Please report this issue to the provider developers.", req.ProviderData),
		)

		return
	}

	d.p = p
}

func (d *VipFunctionDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	// Read Terraform configuration data into the model
	var data models.VipFunctionDataSourceModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	functionType := nttmcp.VIPFunctionType(data.Type.ValueString())
	if len(data.Type.ValueString()) == 0 {
		functionType = nttmcp.VIPFunctionHealthMonitor
	}

	client, err := NewClientFromConfig(ctx, d.p, &data.Auth, data.Region.ValueString())
	if err != nil {
		resp.Diagnostics.AddError("Cloud Control API connection error", err.Error())
		return
	}

	domainName := data.NetworkDomain.ValueString()
	domain, err := client.GetNetworkDomainByName(ctx, domainName, data.Datacenter.ValueString())
	if err != nil || domain == nil {
		msg := fmt.Sprintf("Could not find the Cloud Network Domain: %s", domainName)
		if err != nil {
			resp.Diagnostics.AddError(msg, err.Error())
		} else {
			resp.Diagnostics.AddError(msg, "No Cloud Network Domain with that name exists in the datacenter")
		}
		return
	}

	functions, err := client.ListVIPFunctions(ctx, domain.ID, functionType)
	if err != nil {
		resp.Diagnostics.AddError(
			fmt.Sprintf("Could not find any VIP Functions of type %s", functionType), err.Error())
		return
	}

	data.Count = types.Int64Value(int64(len(functions)))
	data.VipFunctions = make([]models.VipFunctionData, 0, len(functions))
	for _, function := range functions {
		entry := models.VipFunctionData{
			ID:                 types.StringValue(function.ID),
			Name:               types.StringValue(function.Name),
			NodeCompatible:     types.BoolValue(function.NodeCompatible),
			PoolCompatible:     types.BoolValue(function.PoolCompatible),
			FallbackCompatible: types.BoolValue(function.FallbackCompatible),
		}
		for _, compat := range function.VirtualListenerCompatibility {
			entry.VirtualListenerCompatibility = append(entry.VirtualListenerCompatibility, models.VipListenerCompatibility{
				Protocol: types.StringValue(compat.Protocol),
				Type:     types.StringValue(compat.Type),
			})
		}
		data.VipFunctions = append(data.VipFunctions, entry)
	}

	// Save data into Terraform state
	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
