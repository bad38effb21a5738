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
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"terraform-provider-nttmcp/internal/models"
	"terraform-provider-nttmcp/internal/nttmcp"
	"terraform-provider-nttmcp/internal/validators"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/booldefault"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

type userImportConfig struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	API        string `json:"api"`
	APIVersion string `json:"api_version"`
	Region     string `json:"region"`
	User       string `json:"user"`
}

// Ensure provider defined types fully satisfy framework interfaces.
var _ resource.Resource = &UserResource{}
var _ resource.ResourceWithImportState = &UserResource{}

func NewUserResource() resource.Resource {
	return &UserResource{}
}

// UserResource defines the resource implementation.
type UserResource struct {
	p *NttmcpProvider
}

func (r *UserResource) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_" + userName
}

func (r *UserResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "This resource is used to manage Cloud Control organization users.",
		Description:         "This resource is used to manage Cloud Control organization users.",
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				MarkdownDescription: "The ID of the user resource.",
				Description:         "The ID of the user resource.",
				Computed:            true,
			},
			"region": schema.StringAttribute{
				MarkdownDescription: "The geographical region API to be used, defaults to na.",
				Description:         "The geographical region API to be used, defaults to na.",
				Optional:            true,
				Validators: []validator.String{
					validators.IsValidRegion(),
				},
			},
			"username": schema.StringAttribute{
				MarkdownDescription: "The username of the user.",
				Description:         "The username of the user.",
				Required:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"password": schema.StringAttribute{
				MarkdownDescription: "The password of the user, only used at creation.",
				Description:         "The password of the user, only used at creation.",
				Optional:            true,
				Sensitive:           true,
			},
			"new_password": schema.StringAttribute{
				MarkdownDescription: "Set to change the password of an existing user.",
				Description:         "Set to change the password of an existing user.",
				Optional:            true,
				Sensitive:           true,
			},
			"firstname": schema.StringAttribute{
				MarkdownDescription: "The firstname of the user.",
				Description:         "The firstname of the user.",
				Optional:            true,
			},
			"lastname": schema.StringAttribute{
				MarkdownDescription: "The lastname of the user.",
				Description:         "The lastname of the user.",
				Optional:            true,
			},
			"fullname": schema.StringAttribute{
				MarkdownDescription: "The full name of the user.",
				Description:         "The full name of the user.",
				Optional:            true,
			},
			"email": schema.StringAttribute{
				MarkdownDescription: "The email address of the user.",
				Description:         "The email address of the user.",
				Optional:            true,
			},
			"phone_country_code": schema.StringAttribute{
				MarkdownDescription: "The dialing code for the country of the user.",
				Description:         "The dialing code for the country of the user.",
				Optional:            true,
			},
			"phone": schema.StringAttribute{
				MarkdownDescription: "The phone number of the user, requires phone_country_code.",
				Description:         "The phone number of the user, requires phone_country_code.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.AlsoRequires(path.MatchRoot("phone_country_code")),
				},
			},
			"remove_phone": schema.BoolAttribute{
				MarkdownDescription: "Remove the user's phone information.",
				Description:         "Remove the user's phone information.",
				Optional:            true,
				Computed:            true,
				Default:             booldefault.StaticBool(false),
			},
			"department": schema.StringAttribute{
				MarkdownDescription: "The department of the user.",
				Description:         "The department of the user.",
				Optional:            true,
			},
			"custom_1": schema.StringAttribute{
				MarkdownDescription: "User defined custom attribute 1.",
				Description:         "User defined custom attribute 1.",
				Optional:            true,
			},
			"custom_2": schema.StringAttribute{
				MarkdownDescription: "User defined custom attribute 2.",
				Description:         "User defined custom attribute 2.",
				Optional:            true,
			},
			"roles": schema.ListAttribute{
				MarkdownDescription: "List of roles for the user.",
				Description:         "List of roles for the user.",
				Optional:            true,
				ElementType:         types.StringType,
			},
			"state": schema.StringAttribute{
				MarkdownDescription: "The status of the user within Cloud Control.",
				Description:         "The status of the user within Cloud Control.",
				Computed:            true,
			},
		},
		Blocks: AuthResourceBlockMap(),
	}
}

func (r *UserResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	// Prevent panic if the provider has not been configured.
	if req.ProviderData == nil {
		return
	}

	p, ok := req.ProviderData.(*NttmcpProvider)

	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Resource Configure Type",
			fmt.Sprintf("Expected *NttmcpProvider, got: %T. Please report this issue to the provider developers.", req.ProviderData),
		)

		return
	}

	r.p = p
}

func (r *UserResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	tflog.Info(ctx, "resource-user: create starts")
	// Get Plan Data
	var plan models.UserResourceModel
	diags := req.Plan.Get(ctx, &plan)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	// The API requires the full identity set when adding a user.
	if plan.Username.IsNull() || plan.Password.IsNull() || plan.Fullname.IsNull() ||
		plan.Firstname.IsNull() || plan.Lastname.IsNull() || plan.Email.IsNull() {
		resp.Diagnostics.AddError("User validation error",
			"A valid value for username, password, fullname, firstname, lastname and email are required")
		return
	}

	var roles []string
	if !plan.Roles.IsNull() && !plan.Roles.IsUnknown() {
		resp.Diagnostics.Append(plan.Roles.ElementsAs(ctx, &roles, false)...)
		if resp.Diagnostics.HasError() {
			return
		}
	}

	client, err := NewClientFromConfig(ctx, r.p, &plan.Auth, plan.Region.ValueString())
	if err != nil {
		resp.Diagnostics.AddError("Cloud Control API connection error", err.Error())
		return
	}

	// Provide synchronization
	var endpoint string = client.Endpoint()
	var resource_name string = "resource-user"
	mutexPool.Lock(ctx, endpoint, resource_name)
	defer mutexPool.Unlock(ctx, endpoint, resource_name)

	createReq := nttmcp.CreateUserRequest{
		UserName:       plan.Username.ValueString(),
		Password:       plan.Password.ValueString(),
		FullName:       plan.Fullname.ValueString(),
		FirstName:      plan.Firstname.ValueString(),
		LastName:       plan.Lastname.ValueString(),
		EmailAddress:   plan.Email.ValueString(),
		Department:     plan.Department.ValueString(),
		CustomDefined1: plan.Custom1.ValueString(),
		CustomDefined2: plan.Custom2.ValueString(),
		Role:           roles,
	}
	if len(plan.Phone.ValueString()) > 0 {
		createReq.Phone = &nttmcp.Phone{
			CountryCode: plan.PhoneCountryCode.ValueString(),
			Number:      plan.Phone.ValueString(),
		}
	}

	if err := client.CreateUser(ctx, createReq); err != nil {
		resp.Diagnostics.AddError("User creation failed", err.Error())
		return
	}

	// Allow the API to catch up before reading the user back.
	user, err := WaitForUser(ctx, client, plan.Username.ValueString(), userSettleTimeout)
	if err != nil {
		resp.Diagnostics.AddError("User creation was accepted but the user could not be read back", err.Error())
		return
	}

	plan.ID = types.StringValue(user.UserName)
	plan.State = types.StringValue(user.State)

	// Save into State
	diags = resp.State.Set(ctx, &plan)
	resp.Diagnostics.Append(diags...)
	tflog.Info(ctx, "resource-user: create ends")
}

func (r *UserResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	tflog.Info(ctx, "resource-user: read starts")
	var state models.UserResourceModel
	diags := req.State.Get(ctx, &state)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	client, err := NewClientFromConfig(ctx, r.p, &state.Auth, state.Region.ValueString())
	if err != nil {
		resp.Diagnostics.AddError("Cloud Control API connection error", err.Error())
		return
	}

	user, err := client.GetUser(ctx, state.Username.ValueString())
	if err != nil {
		resp.Diagnostics.AddError("Error reading Cloud Control user", err.Error())
		return
	}
	if user == nil {
		resp.State.RemoveResource(ctx)
		return
	}

	state.ID = types.StringValue(user.UserName)
	state.Username = types.StringValue(user.UserName)
	state.State = types.StringValue(user.State)
	state.Fullname = stringOrNull(user.FullName)
	state.Firstname = stringOrNull(user.FirstName)
	state.Lastname = stringOrNull(user.LastName)
	state.Email = stringOrNull(user.EmailAddress)
	state.Department = stringOrNull(user.Department)
	state.Custom1 = stringOrNull(user.CustomDefined1)
	state.Custom2 = stringOrNull(user.CustomDefined2)
	if user.Phone != nil {
		state.PhoneCountryCode = types.StringValue(user.Phone.CountryCode)
		state.Phone = types.StringValue(user.Phone.Number)
	} else {
		state.PhoneCountryCode = types.StringNull()
		state.Phone = types.StringNull()
	}

	// Only rewrite the role list when membership actually changed, the API
	// does not guarantee a stable order.
	var stateRoles []string
	if !state.Roles.IsNull() {
		resp.Diagnostics.Append(state.Roles.ElementsAs(ctx, &stateRoles, false)...)
	}
	if !rolesEqual(stateRoles, user.Role) {
		roles, rolesDiags := types.ListValueFrom(ctx, types.StringType, user.Role)
		resp.Diagnostics.Append(rolesDiags...)
		state.Roles = roles
	}

	diags = resp.State.Set(ctx, &state)
	resp.Diagnostics.Append(diags...)

	tflog.Info(ctx, "resource-user: read ends")
}

func (r *UserResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	tflog.Info(ctx, "resource-user: update starts")

	var state models.UserResourceModel
	diags := req.State.Get(ctx, &state)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	var plan models.UserResourceModel
	diags = req.Plan.Get(ctx, &plan)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	client, err := NewClientFromConfig(ctx, r.p, &plan.Auth, plan.Region.ValueString())
	if err != nil {
		resp.Diagnostics.AddError("Cloud Control API connection error", err.Error())
		return
	}

	// Provide synchronization
	var endpoint string = client.Endpoint()
	var resource_name string = "resource-user"
	mutexPool.Lock(ctx, endpoint, resource_name)
	defer mutexPool.Unlock(ctx, endpoint, resource_name)

	username := state.Username.ValueString()

	// A password change goes first, it is a separate API operation.
	if len(plan.NewPassword.ValueString()) > 0 &&
		plan.NewPassword.ValueString() != state.NewPassword.ValueString() {
		if err := client.ChangeUserPassword(ctx, username, plan.NewPassword.ValueString()); err != nil {
			resp.Diagnostics.AddError("Failed to update the User", err.Error())
			return
		}
	}

	// Roles are replaced as a whole set when membership changed.
	if !plan.Roles.IsNull() && !plan.Roles.IsUnknown() {
		var planRoles, stateRoles []string
		resp.Diagnostics.Append(plan.Roles.ElementsAs(ctx, &planRoles, false)...)
		if !state.Roles.IsNull() {
			resp.Diagnostics.Append(state.Roles.ElementsAs(ctx, &stateRoles, false)...)
		}
		if resp.Diagnostics.HasError() {
			return
		}
		if !rolesEqual(planRoles, stateRoles) {
			if err := client.SetUserRoles(ctx, username, planRoles); err != nil {
				resp.Diagnostics.AddError("Failed to update the User", err.Error())
				return
			}
		}
	}

	updateReq := nttmcp.UpdateUserRequest{
		UserName:       username,
		FullName:       plan.Fullname.ValueString(),
		FirstName:      plan.Firstname.ValueString(),
		LastName:       plan.Lastname.ValueString(),
		EmailAddress:   plan.Email.ValueString(),
		Department:     plan.Department.ValueString(),
		CustomDefined1: plan.Custom1.ValueString(),
		CustomDefined2: plan.Custom2.ValueString(),
	}
	// A null phone on the wire clears the user's phone record, so carry
	// the existing number unless remove_phone asked for exactly that.
	if !plan.RemovePhone.ValueBool() {
		if len(plan.Phone.ValueString()) > 0 {
			updateReq.Phone = &nttmcp.Phone{
				CountryCode: plan.PhoneCountryCode.ValueString(),
				Number:      plan.Phone.ValueString(),
			}
		} else if len(state.Phone.ValueString()) > 0 {
			updateReq.Phone = &nttmcp.Phone{
				CountryCode: state.PhoneCountryCode.ValueString(),
				Number:      state.Phone.ValueString(),
			}
		}
	}

	if err := client.UpdateUser(ctx, updateReq); err != nil {
		resp.Diagnostics.AddError("Failed to update the User", err.Error())
		return
	}

	// Allow the API to catch up before reading the user back.
	time.Sleep(userSettleInterval)
	user, err := client.GetUser(ctx, username)
	if err != nil {
		resp.Diagnostics.AddError("Error reading Cloud Control user", err.Error())
		return
	}
	if user == nil {
		resp.State.RemoveResource(ctx)
		return
	}

	plan.ID = types.StringValue(user.UserName)
	plan.State = types.StringValue(user.State)
	if plan.RemovePhone.ValueBool() {
		plan.Phone = types.StringNull()
		plan.PhoneCountryCode = types.StringNull()
	}

	diags = resp.State.Set(ctx, &plan)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Info(ctx, "resource-user: update ends")
}

func (r *UserResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	tflog.Info(ctx, "resource-user: delete starts")

	var state models.UserResourceModel
	diags := req.State.Get(ctx, &state)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	client, err := NewClientFromConfig(ctx, r.p, &state.Auth, state.Region.ValueString())
	if err != nil {
		resp.Diagnostics.AddError("Cloud Control API connection error", err.Error())
		return
	}

	// Provide synchronization
	var endpoint string = client.Endpoint()
	var resource_name string = "resource-user"
	mutexPool.Lock(ctx, endpoint, resource_name)
	defer mutexPool.Unlock(ctx, endpoint, resource_name)

	msg, err := client.RemoveUser(ctx, state.Username.ValueString())
	if err != nil {
		resp.Diagnostics.AddError("Failed to remove the user", err.Error())
		return
	}
	if len(msg) > 0 {
		tflog.Info(ctx, msg)
	}

	resp.State.RemoveResource(ctx)

	tflog.Info(ctx, "resource-user: delete ends")
}

func (r *UserResource) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	tflog.Info(ctx, "resource-user: import starts")

	var config userImportConfig

	err := json.Unmarshal([]byte(req.ID), &config)
	if err != nil {
		resp.Diagnostics.AddError("Error while unmarshalling id", err.Error())
	}

	auth := models.AuthCredentials{
		Username:   types.StringValue(config.Username),
		Password:   types.StringValue(config.Password),
		API:        types.StringValue(config.API),
		APIVersion: types.StringValue(config.APIVersion),
	}

	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("username"), config.User)...)
	if len(config.Region) > 0 {
		resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("region"), config.Region)...)
	}
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("auth"), []models.AuthCredentials{auth})...)

	tflog.Info(ctx, "resource-user: import ends")
}

func stringOrNull(value string) types.String {
	if len(value) == 0 {
		return types.StringNull()
	}
	return types.StringValue(value)
}

// rolesEqual compares two role lists as sets.
func rolesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
