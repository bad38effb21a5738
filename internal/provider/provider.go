// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"

	"terraform-provider-nttmcp/internal/validators"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure NttmcpProvider satisfies various provider interfaces.
var _ provider.Provider = &NttmcpProvider{}

// NttmcpProvider defines the provider implementation.
type NttmcpProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version    string
	Username   string
	Password   string
	API        string
	APIVersion string
	Region     string
	Insecure   bool
}

// NttmcpProviderModel describes the provider data model.
type NttmcpProviderModel struct {
	Username   types.String `tfsdk:"username"`
	Password   types.String `tfsdk:"password"`
	API        types.String `tfsdk:"api"`
	APIVersion types.String `tfsdk:"api_version"`
	Region     types.String `tfsdk:"region"`
	Insecure   types.Bool   `tfsdk:"insecure"`
}

func (p *NttmcpProvider) Metadata(ctx context.Context, req provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "nttmcp"
	resp.Version = p.version
}

func (p *NttmcpProvider) Schema(ctx context.Context, req provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		Attributes: map[string]schema.Attribute{
			"username": schema.StringAttribute{
				Description: "The Cloud Control API username",
				Optional:    true,
			},
			"password": schema.StringAttribute{
				Description: "The Cloud Control API user password",
				Optional:    true,
				Sensitive:   true,
			},
			"api": schema.StringAttribute{
				Description: "The Cloud Control API endpoint e.g. api-na.mcp-services.net",
				Optional:    true,
			},
			"api_version": schema.StringAttribute{
				Description: "The Cloud Control API version e.g. 2.11",
				Optional:    true,
			},
			"region": schema.StringAttribute{
				Description: "The geographical region API to be used, defaults to na",
				Optional:    true,
				Validators: []validator.String{
					validators.IsValidRegion(),
				},
			},
			"insecure": schema.BoolAttribute{
				Description: "Skip SSL certificate verification on API connections",
				Optional:    true,
			},
		},
	}
}

func (p *NttmcpProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var data NttmcpProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	// Configuration values are now available.
	if data.Username.IsUnknown() {
		resp.Diagnostics.AddWarning(
			"Unable to create client as username is missing",
			"Cannot use unknown value",
		)
	}

	if data.Password.IsUnknown() {
		resp.Diagnostics.AddWarning(
			"Unable to create client as password is missing",
			"Cannot use unknown value",
		)
	}

	p.Username = data.Username.ValueString()
	p.Password = data.Password.ValueString()
	p.API = data.API.ValueString()
	p.APIVersion = data.APIVersion.ValueString()
	p.Region = data.Region.ValueString()
	p.Insecure = data.Insecure.ValueBool()

	resp.ResourceData = p
	resp.DataSourceData = p

	tflog.Trace(ctx, "Finished configuring the provider")
}

func (p *NttmcpProvider) Resources(ctx context.Context) []func() resource.Resource {
	return []func() resource.Resource{
		NewUserResource,
	}
}

func (p *NttmcpProvider) DataSources(ctx context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		NewCredentialsDataSource,
		NewGeoDataSource,
		NewUsersDataSource,
		NewVipFunctionDataSource,
	}
}

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &NttmcpProvider{
			version: version,
		}
	}
}
