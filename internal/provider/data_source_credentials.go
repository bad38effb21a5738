// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"fmt"

	"terraform-provider-nttmcp/internal/models"
	"terraform-provider-nttmcp/internal/nttmcp"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &CredentialsDataSource{}

func NewCredentialsDataSource() datasource.DataSource {
	return &CredentialsDataSource{}
}

// CredentialsDataSource defines the data source implementation.
type CredentialsDataSource struct {
	p *NttmcpProvider
}

func (d *CredentialsDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_" + credentialsName
}

func (d *CredentialsDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Resolved Cloud Control credentials data source",
		Attributes: map[string]schema.Attribute{
			"user_id": schema.StringAttribute{
				Computed:    true,
				Description: "User ID for Cloud Control",
			},
			"password": schema.StringAttribute{
				Computed:    true,
				Sensitive:   true,
				Description: "Password for Cloud Control",
			},
			"api_endpoint": schema.StringAttribute{
				Computed:    true,
				Description: "Endpoint for the chosen MCP region",
			},
			"api_version": schema.StringAttribute{
				Computed:    true,
				Description: "Cloud Control API version targeted",
			},
		},
		Blocks: AuthDatasourceBlockMap(),
	}
}

func (d *CredentialsDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
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

func (d *CredentialsDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	// Read Terraform configuration data into the model
	var data models.CredentialsDataSourceModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	// Resolution only, no API call is made here.
	creds, err := nttmcp.ResolveCredentials(authConfig(d.p, &data.Auth))
	if err != nil {
		resp.Diagnostics.AddError("Could not load the user credentials", err.Error())
		return
	}

	data.UserID = types.StringValue(creds.UserID)
	data.Password = types.StringValue(creds.Password)
	data.APIEndpoint = types.StringValue(creds.APIEndpoint)
	data.APIVersion = types.StringValue(creds.APIVersion)

	// Save data into Terraform state
	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
