package models

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

type CredentialsDataSourceModel struct {
	Auth        []AuthCredentials `tfsdk:"auth"`
	UserID      types.String      `tfsdk:"user_id"`
	Password    types.String      `tfsdk:"password"`
	APIEndpoint types.String      `tfsdk:"api_endpoint"`
	APIVersion  types.String      `tfsdk:"api_version"`
}
