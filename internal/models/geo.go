package models

import (
	"github.com/hashicorp/terraform-plugin-framework/types"
)

type GeoDataSourceModel struct {
	Auth   []AuthCredentials `tfsdk:"auth"`
	Region types.String      `tfsdk:"region"`
	ID     types.String      `tfsdk:"id"`
	Name   types.String      `tfsdk:"name"`
	IsHome types.Bool        `tfsdk:"is_home"`
	Count  types.Int64       `tfsdk:"count"`
	Geos   []GeoData         `tfsdk:"geos"`
}

type GeoData struct {
	ID            types.String `tfsdk:"id"`
	Name          types.String `tfsdk:"name"`
	State         types.String `tfsdk:"state"`
	CloudAPIHost  types.String `tfsdk:"cloud_api_host"`
	CloudUIURL    types.String `tfsdk:"cloud_ui_url"`
	FtpsHost      types.String `tfsdk:"ftps_host"`
	MonitoringURL types.String `tfsdk:"monitoring_url"`
	IsHome        types.Bool   `tfsdk:"is_home"`
	Timezone      types.String `tfsdk:"timezone"`
}
