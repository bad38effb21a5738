package models

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

type UsersDataSourceModel struct {
	Auth             []AuthCredentials `tfsdk:"auth"`
	Region           types.String      `tfsdk:"region"`
	MyUser           types.Bool        `tfsdk:"my_user"`
	Username         types.String      `tfsdk:"username"`
	Firstname        types.String      `tfsdk:"firstname"`
	Lastname         types.String      `tfsdk:"lastname"`
	Email            types.String      `tfsdk:"email"`
	PhoneCountryCode types.String      `tfsdk:"phone_country_code"`
	Phone            types.String      `tfsdk:"phone"`
	State            types.String      `tfsdk:"state"`
	Department       types.String      `tfsdk:"department"`
	Count            types.Int64       `tfsdk:"count"`
	Users            []UserData        `tfsdk:"users"`
}

type UserData struct {
	Username         types.String `tfsdk:"username"`
	Fullname         types.String `tfsdk:"fullname"`
	Firstname        types.String `tfsdk:"firstname"`
	Lastname         types.String `tfsdk:"lastname"`
	State            types.String `tfsdk:"state"`
	Email            types.String `tfsdk:"email"`
	PhoneCountryCode types.String `tfsdk:"phone_country_code"`
	Phone            types.String `tfsdk:"phone"`
	Department       types.String `tfsdk:"department"`
	Custom1          types.String `tfsdk:"custom_1"`
	Custom2          types.String `tfsdk:"custom_2"`
	OrganizationID   types.String `tfsdk:"organization_id"`
	OrganizationName types.String `tfsdk:"organization_name"`
	HomeGeoID        types.String `tfsdk:"home_geo_id"`
	HomeGeoName      types.String `tfsdk:"home_geo_name"`
	HomeGeoAPIHost   types.String `tfsdk:"home_geo_api_host"`
	Roles            types.List   `tfsdk:"roles"`
}
