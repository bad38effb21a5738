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

package nttmcp

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

const clientRetryMax = 4

// ClientConfig collects everything needed to talk to Cloud Control.
type ClientConfig struct {
	Credentials Credentials
	Region      string
	Insecure    bool

	// HTTPClient overrides the transport, primarily for tests.
	HTTPClient *http.Client
}

// Client is a Cloud Control API client bound to a single organization.
// Requests use HTTP basic authentication and transient failures are
// retried by the underlying transport.
type Client struct {
	creds      Credentials
	host       string
	apiVersion string
	orgID      string
	http       *retryablehttp.Client
}

// Connect builds a client from cfg and authenticates against Cloud
// Control by resolving the caller's organization. The credential username
// and password must be set; the endpoint host falls back to the region's
// well-known host and the API version to DefaultAPIVersion when unset.
func Connect(ctx context.Context, cfg ClientConfig) (*Client, error) {
	if cfg.Credentials.UserID == "" || cfg.Credentials.Password == "" {
		return nil, fmt.Errorf("could not load the user credentials: missing username or password")
	}

	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}

	host := cfg.Credentials.APIEndpoint
	if host == "" {
		var err error
		if host, err = EndpointForRegion(region); err != nil {
			return nil, err
		}
	}

	version := cfg.Credentials.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}

	retry := retryablehttp.NewClient()
	retry.RetryMax = clientRetryMax
	retry.Logger = nil
	if cfg.HTTPClient != nil {
		retry.HTTPClient = cfg.HTTPClient
	} else if cfg.Insecure {
		retry.HTTPClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	client := &Client{
		creds:      cfg.Credentials,
		host:       host,
		apiVersion: version,
		http:       retry,
	}

	me, err := client.GetMyUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving the caller organization: %w", err)
	}
	if me.Organization.ID == "" {
		return nil, fmt.Errorf("the API returned no organization id for user %s", cfg.Credentials.UserID)
	}
	client.orgID = me.Organization.ID
	return client, nil
}

// OrgID returns the id of the organization the client authenticated
// against.
func (c *Client) OrgID() string { return c.orgID }

// Endpoint returns the API host the client talks to.
func (c *Client) Endpoint() string { return c.host }

// APIVersion returns the Cloud Control API version the client targets.
func (c *Client) APIVersion() string { return c.apiVersion }

// baseURL accepts either a bare host or a full URL in c.host.
func (c *Client) baseURL() string {
	if strings.Contains(c.host, "://") {
		return fmt.Sprintf("%s/caas/%s", strings.TrimSuffix(c.host, "/"), c.apiVersion)
	}
	return fmt.Sprintf("https://%s/caas/%s", c.host, c.apiVersion)
}

func (c *Client) rootURL(parts ...string) string {
	return c.baseURL() + "/" + strings.Join(parts, "/")
}

func (c *Client) orgURL(parts ...string) string {
	return c.baseURL() + "/" + c.orgID + "/" + strings.Join(parts, "/")
}

func (c *Client) get(ctx context.Context, rawURL string, query url.Values, out any) error {
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, rawURL, nil, out)
}

func (c *Client) post(ctx context.Context, rawURL string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, rawURL, body, out)
}

func (c *Client) do(ctx context.Context, method, rawURL string, body []byte, out any) error {
	var req *retryablehttp.Request
	var err error
	if body != nil {
		req, err = retryablehttp.NewRequestWithContext(ctx, method, rawURL, bytes.NewReader(body))
	} else {
		req, err = retryablehttp.NewRequestWithContext(ctx, method, rawURL, nil)
	}
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.creds.UserID, c.creds.Password)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, rawURL, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var status Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err == nil {
		apiErr.Operation = status.Operation
		apiErr.ResponseCode = status.ResponseCode
		apiErr.Message = status.Message
		apiErr.RequestID = status.RequestID
	}
	return apiErr
}
