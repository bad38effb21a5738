package provider

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
)

func TestAccNttmcpCredentials_fetch(t *testing.T) {
	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: testAccNttmcpDatasourceCredentialsConfig(creds),
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr("data.nttmcp_credentials.me", "user_id", creds.Username),
					resource.TestCheckResourceAttrSet("data.nttmcp_credentials.me", "api_endpoint"),
					resource.TestCheckResourceAttrSet("data.nttmcp_credentials.me", "api_version"),
				),
			},
		},
	})
}

func TestAccNttmcpCredentials_incomplete(t *testing.T) {
	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: fmt.Sprintf(`
	data "nttmcp_credentials" "me" {
		auth {
			username = "%s"
		}
	}
	`, creds.Username),
				ExpectError: regexp.MustCompile("Could not load the user credentials"),
			},
		},
	})
}

func testAccNttmcpDatasourceCredentialsConfig(testingInfo TestingCredentials) string {
	return fmt.Sprintf(`
	data "nttmcp_credentials" "me" {

		auth {
			username    = "%s"
			password    = "%s"
			api         = "%s"
			api_version = "%s"
		}
	}

	output "credentials" {
		value = data.nttmcp_credentials.me
		sensitive = true
	}
	`,
		testingInfo.Username,
		testingInfo.Password,
		testingInfo.API,
		testingInfo.APIVersion,
	)
}
