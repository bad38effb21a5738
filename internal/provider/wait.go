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

package provider

import (
	"context"
	"fmt"
	"time"

	"terraform-provider-nttmcp/internal/nttmcp"

	"github.com/hashicorp/terraform-plugin-log/tflog"
)

const (
	userSettleTimeout  int64 = 30
	userSettleInterval       = 3 * time.Second
)

// WaitForUser checks in loop until a user becomes visible in list results
// or the operation times out (maximum time pointed by timeout_s). The API
// acknowledges a user mutation before administration/user reflects it.
func WaitForUser(ctx context.Context, client *nttmcp.Client, username string, timeout_s int64) (*nttmcp.User, error) {
	start_time := time.Now().Unix()
	for {
		user, err := client.GetUser(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("Error during user %s retrieval %s", username, err.Error())
		}

		if user != nil {
			return user, nil
		}

		tflog.Trace(ctx, "User not visible yet", map[string]interface{}{
			"username": username,
		})

		if time.Now().Unix()-start_time > timeout_s {
			return nil, fmt.Errorf("User %s has not appeared within given timeout %d", username, timeout_s)
		}

		time.Sleep(userSettleInterval)
	}
}
