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

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &GeoDataSource{}

func NewGeoDataSource() datasource.DataSource {
	return &GeoDataSource{}
}

// GeoDataSource defines the data source implementation.
type GeoDataSource struct {
	p *NttmcpProvider
}

func (d *GeoDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_" + geoName
}

func GeoDataSourceSchema() map[string]schema.Attribute {
	return map[string]schema.Attribute{
		"region": schema.StringAttribute{
			Optional:    true,
			Description: "The geographical region API to be used, defaults to na",
			Validators: []validator.String{
				validators.IsValidRegion(),
			},
		},
		"id": schema.StringAttribute{
			Optional:    true,
			Description: "The id of a specific geographical region",
		},
		"name": schema.StringAttribute{
			Optional:    true,
			Description: "The name of a specific geographical region",
		},
		"is_home": schema.BoolAttribute{
			Optional:    true,
			Description: "Return only the home geographical region of the organization",
		},
		"count": schema.Int64Attribute{
			Computed:    true,
			Description: "The number of objects returned",
		},
		"geos": schema.ListNestedAttribute{
			MarkdownDescription: "List of geographic regions visible to the organization",
			Computed:            true,
			NestedObject: schema.NestedAttributeObject{
				Attributes: map[string]schema.Attribute{
					"id": schema.StringAttribute{
						Computed:    true,
						Description: "The id of the geographical region",
					},
					"name": schema.StringAttribute{
						Computed:    true,
						Description: "The name of the geographical region",
					},
					"state": schema.StringAttribute{
						Computed:    true,
						Description: "The state of the geographical region",
					},
					"cloud_api_host": schema.StringAttribute{
						Computed:    true,
						Description: "The API host for the geographical region",
					},
					"cloud_ui_url": schema.StringAttribute{
						Computed:    true,
						Description: "The Cloud Control UI URL for the geographical region",
					},
					"ftps_host": schema.StringAttribute{
						Computed:    true,
						Description: "The FTPS host for image imports in the geographical region",
					},
					"monitoring_url": schema.StringAttribute{
						Computed:    true,
						Description: "The monitoring URL for the geographical region",
					},
					"is_home": schema.BoolAttribute{
						Computed:    true,
						Description: "Whether this is the home geographical region of the organization",
					},
					"timezone": schema.StringAttribute{
						Computed:    true,
						Description: "The timezone of the geographical region",
					},
				},
			},
		},
	}
}

func (d *GeoDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Cloud Control geographic region data source",
		Attributes:          GeoDataSourceSchema(),
		Blocks:              AuthDatasourceBlockMap(),
	}
}

func (d *GeoDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
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

func (d *GeoDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	// Read Terraform configuration data into the model
	var data models.GeoDataSourceModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	client, err := NewClientFromConfig(ctx, d.p, &data.Auth, data.Region.ValueString())
	if err != nil {
		resp.Diagnostics.AddError("Cloud Control API connection error", err.Error())
		return
	}

	geos, err := client.ListGeos(ctx, nttmcp.GeoFilter{
		ID:     data.ID.ValueString(),
		Name:   data.Name.ValueString(),
		IsHome: data.IsHome.ValueBool(),
	})
	if err != nil {
		resp.Diagnostics.AddError("Could not get a list of geographic regions", err.Error())
		return
	}

	data.Count = types.Int64Value(int64(len(geos)))
	data.Geos = make([]models.GeoData, 0, len(geos))
	for _, geo := range geos {
		data.Geos = append(data.Geos, models.GeoData{
			ID:            types.StringValue(geo.ID),
			Name:          types.StringValue(geo.Name),
			State:         types.StringValue(geo.State),
			CloudAPIHost:  types.StringValue(geo.CloudAPIHost),
			CloudUIURL:    types.StringValue(geo.CloudUIURL),
			FtpsHost:      types.StringValue(geo.FtpsHost),
			MonitoringURL: types.StringValue(geo.MonitoringURL),
			IsHome:        types.BoolValue(geo.IsHome),
			Timezone:      types.StringValue(geo.Timezone),
		})
	}

	// Save data into Terraform state
	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
