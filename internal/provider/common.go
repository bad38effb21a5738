package provider

import (
	"context"
	"fmt"

	"terraform-provider-nttmcp/internal/models"
	"terraform-provider-nttmcp/internal/nttmcp"

	"github.com/hashicorp/terraform-plugin-framework-validators/listvalidator"
	datasourceSchema "github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	resourceSchema "github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

const (
	authBlockMD string = "Cloud Control API credentials taking precedence over the provider configuration, the ~/.nttmcp credentials file and the NTTMCP_* environment variables"

	credentialsName string = "credentials"
	geoName         string = "geo"
	userName        string = "user"
	usersName       string = "users"
	vipFunctionName string = "vip_function"
)

// AuthDatasourceSchema to construct schema of the auth block
func AuthDatasourceSchema() map[string]datasourceSchema.Attribute {
	return map[string]datasourceSchema.Attribute{
		"username": datasourceSchema.StringAttribute{
			Optional:    true,
			Description: "The Cloud Control API username",
		},
		"password": datasourceSchema.StringAttribute{
			Optional:    true,
			Description: "The Cloud Control API user password",
			Sensitive:   true,
		},
		"api": datasourceSchema.StringAttribute{
			Optional:    true,
			Description: "The Cloud Control API endpoint e.g. api-na.mcp-services.net",
		},
		"api_version": datasourceSchema.StringAttribute{
			Optional:    true,
			Description: "The Cloud Control API version e.g. 2.11",
		},
	}
}

func AuthSchema() map[string]resourceSchema.Attribute {
	return map[string]resourceSchema.Attribute{
		"username": resourceSchema.StringAttribute{
			Optional:    true,
			Description: "The Cloud Control API username",
		},
		"password": resourceSchema.StringAttribute{
			Optional:    true,
			Description: "The Cloud Control API user password",
			Sensitive:   true,
		},
		"api": resourceSchema.StringAttribute{
			Optional:    true,
			Description: "The Cloud Control API endpoint e.g. api-na.mcp-services.net",
		},
		"api_version": resourceSchema.StringAttribute{
			Optional:    true,
			Description: "The Cloud Control API version e.g. 2.11",
		},
	}
}

// AuthDatasourceBlockMap to construct common auth block map for data sources
func AuthDatasourceBlockMap() map[string]datasourceSchema.Block {
	return map[string]datasourceSchema.Block{
		"auth": datasourceSchema.ListNestedBlock{
			MarkdownDescription: authBlockMD,
			Description:         authBlockMD,
			Validators: []validator.List{
				listvalidator.SizeAtMost(1),
			},
			NestedObject: datasourceSchema.NestedBlockObject{
				Attributes: AuthDatasourceSchema(),
			},
		},
	}
}

func AuthResourceBlockMap() map[string]resourceSchema.Block {
	return map[string]resourceSchema.Block{
		"auth": resourceSchema.ListNestedBlock{
			MarkdownDescription: authBlockMD,
			Description:         authBlockMD,
			Validators: []validator.List{
				listvalidator.SizeAtMost(1),
			},
			NestedObject: resourceSchema.NestedBlockObject{
				Attributes: AuthSchema(),
			},
		},
	}
}

// authConfig merges an auth block with the provider level configuration.
// Block values win, unset fields fall back to the provider attributes. The
// file and environment sources are walked later by the resolver.
func authConfig(pconfig *NttmcpProvider, auth *[]models.AuthCredentials) *nttmcp.AuthConfig {
	config := &nttmcp.AuthConfig{
		Username:   pconfig.Username,
		Password:   pconfig.Password,
		API:        pconfig.API,
		APIVersion: pconfig.APIVersion,
	}

	if auth != nil && len(*auth) > 0 {
		block := (*auth)[0]
		if len(block.Username.ValueString()) > 0 {
			config.Username = block.Username.ValueString()
		}
		if len(block.Password.ValueString()) > 0 {
			config.Password = block.Password.ValueString()
		}
		if len(block.API.ValueString()) > 0 {
			config.API = block.API.ValueString()
		}
		if len(block.APIVersion.ValueString()) > 0 {
			config.APIVersion = block.APIVersion.ValueString()
		}
	}
	return config
}

// NewClientFromConfig resolves the full credential chain and connects to
// the Cloud Control API. Every resource and data source operation goes
// through here, so an incomplete credential record fails before any API
// call is made.
func NewClientFromConfig(ctx context.Context, pconfig *NttmcpProvider, auth *[]models.AuthCredentials, region string) (*nttmcp.Client, error) {
	creds, err := nttmcp.ResolveCredentials(authConfig(pconfig, auth))
	if err != nil {
		return nil, err
	}

	if len(region) == 0 {
		region = pconfig.Region
	}

	client, err := nttmcp.Connect(ctx, nttmcp.ClientConfig{
		Credentials: creds,
		Region:      region,
		Insecure:    pconfig.Insecure,
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to the Cloud Control API: %w", err)
	}

	tflog.Info(ctx, fmt.Sprintf("Connection with the Cloud Control endpoint %v was successful", client.Endpoint()))
	return client, nil
}
