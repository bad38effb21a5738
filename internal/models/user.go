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

type UserResourceModel struct {
	ID               types.String      `tfsdk:"id"`
	Auth             []AuthCredentials `tfsdk:"auth"`
	Region           types.String      `tfsdk:"region"`
	Username         types.String      `tfsdk:"username"`
	Password         types.String      `tfsdk:"password"`
	NewPassword      types.String      `tfsdk:"new_password"`
	Firstname        types.String      `tfsdk:"firstname"`
	Lastname         types.String      `tfsdk:"lastname"`
	Fullname         types.String      `tfsdk:"fullname"`
	Email            types.String      `tfsdk:"email"`
	PhoneCountryCode types.String      `tfsdk:"phone_country_code"`
	Phone            types.String      `tfsdk:"phone"`
	RemovePhone      types.Bool        `tfsdk:"remove_phone"`
	Department       types.String      `tfsdk:"department"`
	Custom1          types.String      `tfsdk:"custom_1"`
	Custom2          types.String      `tfsdk:"custom_2"`
	Roles            types.List        `tfsdk:"roles"`
	State            types.String      `tfsdk:"state"`
}
