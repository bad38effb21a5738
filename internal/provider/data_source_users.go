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
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &UsersDataSource{}

func NewUsersDataSource() datasource.DataSource {
	return &UsersDataSource{}
}

// UsersDataSource defines the data source implementation.
type UsersDataSource struct {
	p *NttmcpProvider
}

func (d *UsersDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_" + usersName
}

func UsersDataSourceSchema() map[string]schema.Attribute {
	return map[string]schema.Attribute{
		"region": schema.StringAttribute{
			Optional:    true,
			Description: "The geographical region API to be used, defaults to na",
			Validators: []validator.String{
				validators.IsValidRegion(),
			},
		},
		"my_user": schema.BoolAttribute{
			Optional:    true,
			Description: "Return just the user associated with the API credentials",
		},
		"username": schema.StringAttribute{
			Optional:    true,
			Description: "The username to search for, takes precedence over the filter attributes",
		},
		"firstname": schema.StringAttribute{
			Optional:    true,
			Description: "Filter on the firstname of the user, supports * wildcards",
		},
		"lastname": schema.StringAttribute{
			Optional:    true,
			Description: "Filter on the lastname of the user, supports * wildcards",
		},
		"email": schema.StringAttribute{
			Optional:    true,
			Description: "Filter on the email address of the user, supports * wildcards",
		},
		"phone_country_code": schema.StringAttribute{
			Optional:    true,
			Description: "Filter on the dialing code for the country of the user",
		},
		"phone": schema.StringAttribute{
			Optional:    true,
			Description: "Filter on the phone number of the user",
		},
		"state": schema.StringAttribute{
			Optional:    true,
			Description: "Filter on the state of the user",
		},
		"department": schema.StringAttribute{
			Optional:    true,
			Description: "Filter on the department of the user, supports * wildcards",
		},
		"count": schema.Int64Attribute{
			Computed:    true,
			Description: "The number of objects returned",
		},
		"users": schema.ListNestedAttribute{
			MarkdownDescription: "List of users matching the search",
			Computed:            true,
			NestedObject: schema.NestedAttributeObject{
				Attributes: map[string]schema.Attribute{
					"username": schema.StringAttribute{
						Computed:    true,
						Description: "The user ID",
					},
					"fullname": schema.StringAttribute{
						Computed:    true,
						Description: "The user's full name",
					},
					"firstname": schema.StringAttribute{
						Computed:    true,
						Description: "The user's firstname",
					},
					"lastname": schema.StringAttribute{
						Computed:    true,
						Description: "The user's lastname",
					},
					"state": schema.StringAttribute{
						Computed:    true,
						Description: "The user's status",
					},
					"email": schema.StringAttribute{
						Computed:    true,
						Description: "The user's email address",
					},
					"phone_country_code": schema.StringAttribute{
						Computed:    true,
						Description: "The dialing code for the country of the user",
					},
					"phone": schema.StringAttribute{
						Computed:    true,
						Description: "The phone number of the user",
					},
					"department": schema.StringAttribute{
						Computed:    true,
						Description: "The department of the user",
					},
					"custom_1": schema.StringAttribute{
						Computed:    true,
						Description: "User defined custom attribute 1",
					},
					"custom_2": schema.StringAttribute{
						Computed:    true,
						Description: "User defined custom attribute 2",
					},
					"organization_id": schema.StringAttribute{
						Computed:    true,
						Description: "The UUID of the organization",
					},
					"organization_name": schema.StringAttribute{
						Computed:    true,
						Description: "The organization name",
					},
					"home_geo_id": schema.StringAttribute{
						Computed:    true,
						Description: "The home Geo ID of the organization",
					},
					"home_geo_name": schema.StringAttribute{
						Computed:    true,
						Description: "The name of the home Geo",
					},
					"home_geo_api_host": schema.StringAttribute{
						Computed:    true,
						Description: "The user's home Geo API host",
					},
					"roles": schema.ListAttribute{
						Computed:    true,
						ElementType: types.StringType,
						Description: "List of access roles associated with the user",
					},
				},
			},
		},
	}
}

func (d *UsersDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Cloud Control organization users data source",
		Attributes:          UsersDataSourceSchema(),
		Blocks:              AuthDatasourceBlockMap(),
	}
}

func (d *UsersDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
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

func (d *UsersDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	// Read Terraform configuration data into the model
	var data models.UsersDataSourceModel
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	client, err := NewClientFromConfig(ctx, d.p, &data.Auth, data.Region.ValueString())
	if err != nil {
		resp.Diagnostics.AddError("Cloud Control API connection error", err.Error())
		return
	}

	// my_user wins over a username lookup which wins over a filtered list,
	// matching the API's own precedence.
	var users []nttmcp.User
	switch {
	case data.MyUser.ValueBool():
		user, err := client.GetMyUser(ctx)
		if err != nil {
			resp.Diagnostics.AddError("Could not retrieve a list of users", err.Error())
			return
		}
		if user != nil {
			users = append(users, *user)
		}
	case len(data.Username.ValueString()) > 0:
		user, err := client.GetUser(ctx, data.Username.ValueString())
		if err != nil {
			resp.Diagnostics.AddError("Could not retrieve a list of users", err.Error())
			return
		}
		if user != nil {
			users = append(users, *user)
		}
	default:
		users, err = client.ListUsers(ctx, nttmcp.UserFilter{
			FirstName:        data.Firstname.ValueString(),
			LastName:         data.Lastname.ValueString(),
			EmailAddress:     data.Email.ValueString(),
			PhoneCountryCode: data.PhoneCountryCode.ValueString(),
			PhoneNumber:      data.Phone.ValueString(),
			State:            data.State.ValueString(),
			Department:       data.Department.ValueString(),
		})
		if err != nil {
			resp.Diagnostics.AddError("Could not retrieve a list of users", err.Error())
			return
		}
	}

	data.Count = types.Int64Value(int64(len(users)))
	data.Users = make([]models.UserData, 0, len(users))
	for _, user := range users {
		entry, diags := userData(ctx, user)
		resp.Diagnostics.Append(diags...)
		data.Users = append(data.Users, entry)
	}
	if resp.Diagnostics.HasError() {
		return
	}

	// Save data into Terraform state
	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

// userData maps a wire user object onto the nested state model.
func userData(ctx context.Context, user nttmcp.User) (models.UserData, diag.Diagnostics) {
	roles, diags := types.ListValueFrom(ctx, types.StringType, user.Role)

	entry := models.UserData{
		Username:         types.StringValue(user.UserName),
		Fullname:         types.StringValue(user.FullName),
		Firstname:        types.StringValue(user.FirstName),
		Lastname:         types.StringValue(user.LastName),
		State:            types.StringValue(user.State),
		Email:            types.StringValue(user.EmailAddress),
		Department:       types.StringValue(user.Department),
		Custom1:          types.StringValue(user.CustomDefined1),
		Custom2:          types.StringValue(user.CustomDefined2),
		OrganizationID:   types.StringValue(user.Organization.ID),
		OrganizationName: types.StringValue(user.Organization.Name),
		HomeGeoID:        types.StringValue(user.Organization.HomeGeoID),
		HomeGeoName:      types.StringValue(user.Organization.HomeGeoName),
		HomeGeoAPIHost:   types.StringValue(user.Organization.HomeGeoAPIHost),
		PhoneCountryCode: types.StringNull(),
		Phone:            types.StringNull(),
		Roles:            roles,
	}
	if user.Phone != nil {
		entry.PhoneCountryCode = types.StringValue(user.Phone.CountryCode)
		entry.Phone = types.StringValue(user.Phone.Number)
	}
	return entry, diags
}
