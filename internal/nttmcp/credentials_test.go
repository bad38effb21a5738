package nttmcp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCredentialsFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), credentialsFileName)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing credentials file: %v", err)
	}
	return path
}

func mapGetenv(env map[string]string) func(string) string {
	return func(key string) string { return env[key] }
}

func TestResolveCredentialsPrecedence(t *testing.T) {
	path := writeCredentialsFile(t, `[nttmcp]
NTTMCP_USER = fileuser
NTTMCP_PASSWORD = filepass
NTTMCP_API = api-eu.mcp-services.net
NTTMCP_API_VERSION = 2.10
`)
	getenv := mapGetenv(map[string]string{
		EnvUser:       "envuser",
		EnvPassword:   "envpass",
		EnvAPI:        "api-na.mcp-services.net",
		EnvAPIVersion: "2.9",
	})

	auth := &AuthConfig{Username: "arguser", Password: "argpass"}
	creds, err := resolveCredentials(auth, path, getenv)
	if err != nil {
		t.Fatalf("resolveCredentials: %v", err)
	}

	if creds.UserID != "arguser" || creds.Password != "argpass" {
		t.Errorf("explicit arguments should win, got %q/%q", creds.UserID, creds.Password)
	}
	if creds.APIEndpoint != "api-eu.mcp-services.net" {
		t.Errorf("file should win over environment for api, got %q", creds.APIEndpoint)
	}
	if creds.APIVersion != "2.10" {
		t.Errorf("file should win over environment for api_version, got %q", creds.APIVersion)
	}
}

func TestResolveCredentialsEnvFallback(t *testing.T) {
	missing := filepath.Join(t.TempDir(), credentialsFileName)
	getenv := mapGetenv(map[string]string{
		EnvUser:       "envuser",
		EnvPassword:   "envpass",
		EnvAPI:        "api-au.mcp-services.net",
		EnvAPIVersion: "2.11",
	})

	creds, err := resolveCredentials(nil, missing, getenv)
	if err != nil {
		t.Fatalf("resolveCredentials: %v", err)
	}
	want := Credentials{
		UserID:      "envuser",
		Password:    "envpass",
		APIEndpoint: "api-au.mcp-services.net",
		APIVersion:  "2.11",
	}
	if creds != want {
		t.Errorf("got %+v, want %+v", creds, want)
	}
}

func TestResolveCredentialsIgnoresOtherSections(t *testing.T) {
	path := writeCredentialsFile(t, `[default]
NTTMCP_USER = wronguser
`)
	getenv := mapGetenv(map[string]string{
		EnvUser:       "envuser",
		EnvPassword:   "envpass",
		EnvAPI:        "api-na.mcp-services.net",
		EnvAPIVersion: "2.11",
	})

	creds, err := resolveCredentials(nil, path, getenv)
	if err != nil {
		t.Fatalf("resolveCredentials: %v", err)
	}
	if creds.UserID != "envuser" {
		t.Errorf("section other than [nttmcp] must be ignored, got user %q", creds.UserID)
	}
}

func TestResolveCredentialsMalformedFile(t *testing.T) {
	path := writeCredentialsFile(t, "[nttmcp\nNTTMCP_USER = broken\n")

	_, err := resolveCredentials(nil, path, mapGetenv(nil))
	if err == nil {
		t.Fatal("expected an error for a malformed credentials file")
	}
	if !strings.Contains(err.Error(), "credentials file") {
		t.Errorf("error should point at the credentials file, got %q", err)
	}
}

func TestResolveCredentialsIncomplete(t *testing.T) {
	missing := filepath.Join(t.TempDir(), credentialsFileName)
	getenv := mapGetenv(map[string]string{EnvUser: "envuser"})

	_, err := resolveCredentials(nil, missing, getenv)
	if err == nil {
		t.Fatal("expected an error for incomplete credentials")
	}
	for _, field := range []string{"password", "api", "api_version"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error should name missing field %q, got %q", field, err)
		}
	}
	if strings.Contains(err.Error(), "username") {
		t.Errorf("error should not name resolved field username, got %q", err)
	}
}

func TestValidate(t *testing.T) {
	complete := Credentials{
		UserID:      "admin",
		Password:    "secret",
		APIEndpoint: "api-na.mcp-services.net",
		APIVersion:  "2.11",
	}
	if err := complete.Validate(); err != nil {
		t.Errorf("complete credentials should validate, got %v", err)
	}

	if err := (Credentials{}).Validate(); err == nil {
		t.Error("empty credentials should not validate")
	}
}
