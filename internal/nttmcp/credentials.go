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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// Credential lookup keys. The same names are used for the [nttmcp] section
// of the credentials file and for the environment variables.
const (
	EnvAPI        = "NTTMCP_API"
	EnvAPIVersion = "NTTMCP_API_VERSION"
	EnvPassword   = "NTTMCP_PASSWORD"
	EnvUser       = "NTTMCP_USER"
)

const (
	credentialsFileName = ".nttmcp"
	credentialsSection  = "nttmcp"
)

// Credentials is a resolved Cloud Control credential record. APIEndpoint is
// a bare host name ("api-na.mcp-services.net") or a full base URL.
type Credentials struct {
	UserID      string
	Password    string
	APIEndpoint string
	APIVersion  string
}

// AuthConfig carries credentials passed as explicit arguments. Explicit
// arguments take precedence over every other source.
type AuthConfig struct {
	Username   string
	Password   string
	API        string
	APIVersion string
}

// ResolveCredentials assembles a credential record from, in order of
// precedence, the explicit arguments in auth, the ~/.nttmcp credentials
// file, and the NTTMCP_* environment variables. Later sources only fill
// fields the earlier ones left empty. The returned record is guaranteed
// complete; an error names every field that could not be resolved.
func ResolveCredentials(auth *AuthConfig) (Credentials, error) {
	path := ""
	if home, err := os.UserHomeDir(); err == nil {
		path = filepath.Join(home, credentialsFileName)
	}
	return resolveCredentials(auth, path, os.Getenv)
}

func resolveCredentials(auth *AuthConfig, path string, getenv func(string) string) (Credentials, error) {
	var creds Credentials
	if auth != nil {
		creds = Credentials{
			UserID:      auth.Username,
			Password:    auth.Password,
			APIEndpoint: auth.API,
			APIVersion:  auth.APIVersion,
		}
	}

	if !creds.complete() && path != "" {
		fromFile, err := readCredentialsFile(path)
		if err != nil {
			return Credentials{}, err
		}
		creds.fillFrom(fromFile)
	}

	if !creds.complete() && getenv != nil {
		creds.fillFrom(Credentials{
			UserID:      getenv(EnvUser),
			Password:    getenv(EnvPassword),
			APIEndpoint: getenv(EnvAPI),
			APIVersion:  getenv(EnvAPIVersion),
		})
	}

	if err := creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// Validate reports an error naming every field the resolution chain left
// empty. A nil return means the record is safe to hand to Connect.
func (c Credentials) Validate() error {
	var missing []string
	if c.UserID == "" {
		missing = append(missing, "username")
	}
	if c.Password == "" {
		missing = append(missing, "password")
	}
	if c.APIEndpoint == "" {
		missing = append(missing, "api")
	}
	if c.APIVersion == "" {
		missing = append(missing, "api_version")
	}
	if len(missing) > 0 {
		return fmt.Errorf("could not load the user credentials: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c Credentials) complete() bool {
	return c.UserID != "" && c.Password != "" && c.APIEndpoint != "" && c.APIVersion != ""
}

func (c *Credentials) fillFrom(other Credentials) {
	if c.UserID == "" {
		c.UserID = other.UserID
	}
	if c.Password == "" {
		c.Password = other.Password
	}
	if c.APIEndpoint == "" {
		c.APIEndpoint = other.APIEndpoint
	}
	if c.APIVersion == "" {
		c.APIVersion = other.APIVersion
	}
}

// readCredentialsFile loads the [nttmcp] section of an INI-style
// credentials file. A missing file or missing section is not an error,
// only an unparseable file is.
func readCredentialsFile(path string) (Credentials, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Credentials{}, nil
		}
		return Credentials{}, fmt.Errorf("reading credentials file %s: %w", path, err)
	}

	file, err := ini.Load(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("parsing credentials file %s: %w", path, err)
	}

	section, err := file.GetSection(credentialsSection)
	if err != nil {
		return Credentials{}, nil
	}
	return Credentials{
		UserID:      section.Key(EnvUser).String(),
		Password:    section.Key(EnvPassword).String(),
		APIEndpoint: section.Key(EnvAPI).String(),
		APIVersion:  section.Key(EnvAPIVersion).String(),
	}, nil
}
