package models

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

type AuthCredentials struct {
	Username   types.String `tfsdk:"username"`
	Password   types.String `tfsdk:"password"`
	API        types.String `tfsdk:"api"`
	APIVersion types.String `tfsdk:"api_version"`
}
