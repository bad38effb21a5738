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

package validators

import (
	"context"
	"fmt"
	"strings"

	"terraform-provider-nttmcp/internal/nttmcp"

	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
)

type RegionValidator struct{}

func (v RegionValidator) Description(ctx context.Context) string {
	return fmt.Sprintf("Ensures the value is one of the Cloud Control regions: %s.", strings.Join(nttmcp.Regions(), ", "))
}

func (v RegionValidator) MarkdownDescription(ctx context.Context) string {
	return fmt.Sprintf("Ensures the value is one of the Cloud Control regions: **%s**.", strings.Join(nttmcp.Regions(), ", "))
}

func (v RegionValidator) ValidateString(ctx context.Context, req validator.StringRequest, resp *validator.StringResponse) {
	if req.ConfigValue.IsNull() || req.ConfigValue.IsUnknown() {
		return
	}

	// An empty region falls back to the default downstream.
	if len(req.ConfigValue.ValueString()) == 0 {
		return
	}

	if _, err := nttmcp.EndpointForRegion(req.ConfigValue.ValueString()); err != nil {
		resp.Diagnostics.AddError(
			"Invalid Region",
			fmt.Sprintf("Field '%s': invalid region '%s'. Regions must be one of %s.",
				req.Path.String(), req.ConfigValue.ValueString(), strings.Join(nttmcp.Regions(), ", ")),
		)
	}
}

func IsValidRegion() validator.String {
	return RegionValidator{}
}
