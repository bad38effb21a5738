// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"fmt"
	"os"
	"testing"

	"terraform-provider-nttmcp/internal/nttmcp"

	"github.com/hashicorp/terraform-plugin-framework/providerserver"
	"github.com/hashicorp/terraform-plugin-go/tfprotov6"
	"github.com/joho/godotenv"
)

var (
	creds TestingCredentials
)

type TestingCredentials struct {
	Username      string
	Password      string
	API           string
	APIVersion    string
	Region        string
	Datacenter    string
	NetworkDomain string
}

// testAccProtoV6ProviderFactories are used to instantiate a provider during
// acceptance testing. The factory function will be invoked for every Terraform
// CLI command executed to create a provider server to which the CLI can
// reattach.
var testAccProtoV6ProviderFactories = map[string]func() (tfprotov6.ProviderServer, error){
	"nttmcp": providerserver.NewProtocol6WithError(New("test")()),
}

func testAccPreCheck(t *testing.T) {
	// You can add code here to run prior to any test case execution, for example assertions
	// about the appropriate environment variables being set are common to see in a pre-check
	// function.
}

// testAccConnect builds a raw Cloud Control client from the testing
// credentials, used by tests to verify state outside of Terraform.
func testAccConnect(ctx context.Context) (*nttmcp.Client, error) {
	return nttmcp.Connect(ctx, nttmcp.ClientConfig{
		Credentials: nttmcp.Credentials{
			UserID:      creds.Username,
			Password:    creds.Password,
			APIEndpoint: creds.API,
			APIVersion:  creds.APIVersion,
		},
		Region: creds.Region,
	})
}

func init() {
	err := godotenv.Load("nttmcp_test.env")
	if err != nil {
		fmt.Println(err.Error())
	}

	creds = TestingCredentials{
		Username:      os.Getenv("TF_TESTING_NTTMCP_USERNAME"),
		Password:      os.Getenv("TF_TESTING_NTTMCP_PASSWORD"),
		API:           os.Getenv("TF_TESTING_NTTMCP_API"),
		APIVersion:    os.Getenv("TF_TESTING_NTTMCP_API_VERSION"),
		Region:        os.Getenv("TF_TESTING_NTTMCP_REGION"),
		Datacenter:    os.Getenv("TF_TESTING_NTTMCP_DATACENTER"),
		NetworkDomain: os.Getenv("TF_TESTING_NTTMCP_NETWORK_DOMAIN"),
	}
}
