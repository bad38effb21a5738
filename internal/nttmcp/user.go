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
	"context"
	"fmt"
	"net/url"
)

// User mirrors the Cloud Control user object.
type User struct {
	UserName       string       `json:"userName"`
	FullName       string       `json:"fullName,omitempty"`
	FirstName      string       `json:"firstName,omitempty"`
	LastName       string       `json:"lastName,omitempty"`
	State          string       `json:"state,omitempty"`
	EmailAddress   string       `json:"emailAddress,omitempty"`
	Organization   Organization `json:"organization,omitempty"`
	Phone          *Phone       `json:"phone,omitempty"`
	Department     string       `json:"department,omitempty"`
	CustomDefined1 string       `json:"customDefined1,omitempty"`
	CustomDefined2 string       `json:"customDefined2,omitempty"`
	Role           []string     `json:"role,omitempty"`
}

// Phone is a user's phone number split into country code and number.
type Phone struct {
	CountryCode string `json:"countryCode"`
	Number      string `json:"number"`
}

// Organization identifies the tenant a user belongs to.
type Organization struct {
	ID             string `json:"id"`
	Name           string `json:"name,omitempty"`
	HomeGeoID      string `json:"homeGeoId,omitempty"`
	HomeGeoName    string `json:"homeGeoName,omitempty"`
	HomeGeoAPIHost string `json:"homeGeoApiHost,omitempty"`
}

type userList struct {
	TotalCount int    `json:"totalCount"`
	Users      []User `json:"user"`
}

// UserFilter narrows a ListUsers call. Empty fields are not sent. The
// API applies wildcard matching for values containing '*'.
type UserFilter struct {
	UserName         string
	FirstName        string
	LastName         string
	EmailAddress     string
	PhoneCountryCode string
	PhoneNumber      string
	State            string
	Department       string
}

func (f UserFilter) query() url.Values {
	query := url.Values{}
	set := func(key, value string) {
		if value != "" {
			query.Set(key, value)
		}
	}
	set("userName", f.UserName)
	set("firstName", f.FirstName)
	set("lastName", f.LastName)
	set("emailAddress", f.EmailAddress)
	set("phoneCountryCode", f.PhoneCountryCode)
	set("phoneNumber", f.PhoneNumber)
	set("state", f.State)
	set("department", f.Department)
	return query
}

// GetMyUser returns the user record of the authenticated caller. This is
// the only operation that works before an organization id is known.
func (c *Client) GetMyUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, c.rootURL("user", "myUser"), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser looks up a single user by username. It returns (nil, nil) when
// no user with that name exists.
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	users, err := c.ListUsers(ctx, UserFilter{UserName: username})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// ListUsers returns the organization's users matching the filter.
func (c *Client) ListUsers(ctx context.Context, filter UserFilter) ([]User, error) {
	var list userList
	if err := c.get(ctx, c.orgURL("administration", "user"), filter.query(), &list); err != nil {
		return nil, err
	}
	return list.Users, nil
}

// CreateUserRequest is the payload for CreateUser. UserName, Password,
// FullName, FirstName, LastName and EmailAddress are mandatory.
type CreateUserRequest struct {
	UserName       string   `json:"userName"`
	Password       string   `json:"password"`
	FullName       string   `json:"fullName"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	EmailAddress   string   `json:"emailAddress"`
	Phone          *Phone   `json:"phone,omitempty"`
	Department     string   `json:"department,omitempty"`
	CustomDefined1 string   `json:"customDefined1,omitempty"`
	CustomDefined2 string   `json:"customDefined2,omitempty"`
	Role           []string `json:"role,omitempty"`
}

// CreateUser adds a user to the organization.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) error {
	var status Status
	if err := c.post(ctx, c.rootURL("administration", "addUser"), req, &status); err != nil {
		return fmt.Errorf("creating user %s: %w", req.UserName, err)
	}
	return nil
}

// UpdateUserRequest is the payload for UpdateUser. Phone is always
// serialized; sending null clears a previously set phone number.
type UpdateUserRequest struct {
	UserName       string `json:"userName"`
	FullName       string `json:"fullName,omitempty"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	EmailAddress   string `json:"emailAddress,omitempty"`
	Phone          *Phone `json:"phone"`
	Department     string `json:"department,omitempty"`
	CustomDefined1 string `json:"customDefined1,omitempty"`
	CustomDefined2 string `json:"customDefined2,omitempty"`
}

// UpdateUser edits the attributes of an existing user.
func (c *Client) UpdateUser(ctx context.Context, req UpdateUserRequest) error {
	var status Status
	if err := c.post(ctx, c.rootURL("administration", "editUser"), req, &status); err != nil {
		return fmt.Errorf("updating user %s: %w", req.UserName, err)
	}
	return nil
}

type setUserRolesRequest struct {
	UserName string   `json:"userName"`
	Role     []string `json:"role"`
}

// SetUserRoles replaces the full role list of a user.
func (c *Client) SetUserRoles(ctx context.Context, username string, roles []string) error {
	req := setUserRolesRequest{UserName: username, Role: roles}
	var status Status
	if err := c.post(ctx, c.rootURL("administration", "setUserRoles"), req, &status); err != nil {
		return fmt.Errorf("setting roles for user %s: %w", username, err)
	}
	return nil
}

type changeUserPasswordRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// ChangeUserPassword sets a new password for a user.
func (c *Client) ChangeUserPassword(ctx context.Context, username, password string) error {
	req := changeUserPasswordRequest{UserName: username, Password: password}
	var status Status
	if err := c.post(ctx, c.rootURL("administration", "changeUserPassword"), req, &status); err != nil {
		return fmt.Errorf("changing password for user %s: %w", username, err)
	}
	return nil
}

type removeUserRequest struct {
	UserName string `json:"userName"`
}

// RemoveUser deletes a user and returns the API's status message.
func (c *Client) RemoveUser(ctx context.Context, username string) (string, error) {
	req := removeUserRequest{UserName: username}
	var status Status
	if err := c.post(ctx, c.rootURL("administration", "deleteUser"), req, &status); err != nil {
		return "", fmt.Errorf("removing user %s: %w", username, err)
	}
	return status.Message, nil
}
