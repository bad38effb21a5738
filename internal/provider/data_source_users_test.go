package provider

import (
	"fmt"
	"testing"

	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
)

func TestAccNttmcpUsers_myUser(t *testing.T) {
	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: testAccNttmcpDatasourceUsersConfig(creds, "my_user = true"),
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr("data.nttmcp_users.u", "count", "1"),
					resource.TestCheckResourceAttr("data.nttmcp_users.u", "users.0.username", creds.Username),
					resource.TestCheckResourceAttrSet("data.nttmcp_users.u", "users.0.organization_id"),
				),
			},
		},
	})
}

func TestAccNttmcpUsers_byUsername(t *testing.T) {
	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: testAccNttmcpDatasourceUsersConfig(creds,
					fmt.Sprintf(`username = "%s"`, creds.Username)),
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr("data.nttmcp_users.u", "count", "1"),
					resource.TestCheckResourceAttr("data.nttmcp_users.u", "users.0.username", creds.Username),
				),
			},
		},
	})
}

func TestAccNttmcpUsers_list(t *testing.T) {
	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: testAccNttmcpDatasourceUsersConfig(creds, ""),
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttrSet("data.nttmcp_users.u", "count"),
				),
			},
		},
	})
}

func testAccNttmcpDatasourceUsersConfig(testingInfo TestingCredentials, selector string) string {
	return fmt.Sprintf(`
	data "nttmcp_users" "u" {

		auth {
			username    = "%s"
			password    = "%s"
			api         = "%s"
			api_version = "%s"
		}
		region = "%s"
		%s
	}

	output "users" {
		value = data.nttmcp_users.u
		sensitive = true
	}
	`,
		testingInfo.Username,
		testingInfo.Password,
		testingInfo.API,
		testingInfo.APIVersion,
		testingInfo.Region,
		selector,
	)
}
