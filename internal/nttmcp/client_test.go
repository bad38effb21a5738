package nttmcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testOrgID = "68812dcb-8251-4f09-a27a-9f5d6891b3ec"

// newTestClient connects a client against an httptest server whose
// handler serves everything except the user/myUser authentication probe,
// which is answered here.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "admin" || pass != "secret" {
			t.Errorf("missing or wrong basic auth on %s", r.URL.Path)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path == "/caas/2.11/user/myUser" {
			json.NewEncoder(w).Encode(User{
				UserName:     "admin",
				Organization: Organization{ID: testOrgID},
			})
			return
		}
		if handler == nil {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := Connect(context.Background(), ClientConfig{
		Credentials: Credentials{
			UserID:      "admin",
			Password:    "secret",
			APIEndpoint: server.URL,
			APIVersion:  "2.11",
		},
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	return client
}

func TestConnectResolvesOrganization(t *testing.T) {
	client := newTestClient(t, nil)
	if client.OrgID() != testOrgID {
		t.Errorf("OrgID() = %q, want %q", client.OrgID(), testOrgID)
	}
	if client.APIVersion() != "2.11" {
		t.Errorf("APIVersion() = %q", client.APIVersion())
	}
}

func TestConnectRequiresUsernameAndPassword(t *testing.T) {
	_, err := Connect(context.Background(), ClientConfig{
		Credentials: Credentials{APIEndpoint: "api-na.mcp-services.net"},
	})
	if err == nil {
		t.Fatal("expected an error for missing username and password")
	}
	if !strings.Contains(err.Error(), "username or password") {
		t.Errorf("unexpected error %q", err)
	}
}

func TestConnectUsesRegionHost(t *testing.T) {
	_, err := Connect(context.Background(), ClientConfig{
		Credentials: Credentials{UserID: "admin", Password: "secret"},
		Region:      "xx",
	})
	if err == nil {
		t.Fatal("expected an error for an unknown region")
	}
	if !strings.Contains(err.Error(), "invalid region") {
		t.Errorf("unexpected error %q", err)
	}
}

func TestGetUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/caas/2.11/"+testOrgID+"/administration/user" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("userName"); got != "jdoe" {
			t.Errorf("userName query = %q", got)
		}
		json.NewEncoder(w).Encode(userList{
			TotalCount: 1,
			Users: []User{{
				UserName:     "jdoe",
				FullName:     "John Doe",
				State:        "NORMAL",
				EmailAddress: "jdoe@example.com",
				Role:         []string{"network", "server"},
			}},
		})
	})

	user, err := client.GetUser(context.Background(), "jdoe")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user == nil || user.UserName != "jdoe" {
		t.Fatalf("GetUser returned %+v", user)
	}
	if len(user.Role) != 2 {
		t.Errorf("roles = %v", user.Role)
	}
}

func TestGetUserNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(userList{TotalCount: 0})
	})

	user, err := client.GetUser(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil for an absent user, got %+v", user)
	}
}

func TestListUsersFilter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if got := query.Get("department"); got != "DevOps" {
			t.Errorf("department query = %q", got)
		}
		if got := query.Get("firstName"); got != "J*" {
			t.Errorf("firstName query = %q", got)
		}
		if query.Has("state") {
			t.Error("empty filter fields must not be sent")
		}
		json.NewEncoder(w).Encode(userList{
			TotalCount: 2,
			Users:      []User{{UserName: "jdoe"}, {UserName: "jroe"}},
		})
	})

	users, err := client.ListUsers(context.Background(), UserFilter{
		Department: "DevOps",
		FirstName:  "J*",
	})
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("got %d users", len(users))
	}
}

func TestCreateUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/caas/2.11/administration/addUser" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.UserName != "jdoe" || req.Password != "Password123!" {
			t.Errorf("unexpected payload %+v", req)
		}
		if req.Phone == nil || req.Phone.CountryCode != "31" {
			t.Errorf("phone not carried, got %+v", req.Phone)
		}
		json.NewEncoder(w).Encode(Status{
			Operation:    "ADD_USER",
			ResponseCode: ResponseCodeOK,
			Message:      "Request complete",
		})
	})

	err := client.CreateUser(context.Background(), CreateUserRequest{
		UserName:     "jdoe",
		Password:     "Password123!",
		FullName:     "John Doe",
		FirstName:    "John",
		LastName:     "Doe",
		EmailAddress: "jdoe@example.com",
		Phone:        &Phone{CountryCode: "31", Number: "612345678"},
		Role:         []string{"network"},
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
}

func TestUpdateUserSerializesNullPhone(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		phone, ok := raw["phone"]
		if !ok {
			t.Fatal("phone field must always be present")
		}
		if string(phone) != "null" {
			t.Errorf("phone = %s, want null", phone)
		}
		json.NewEncoder(w).Encode(Status{ResponseCode: ResponseCodeOK})
	})

	err := client.UpdateUser(context.Background(), UpdateUserRequest{
		UserName: "jdoe",
		Phone:    nil,
	})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
}

func TestRemoveUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/caas/2.11/administration/deleteUser" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(Status{
			Operation:    "DELETE_USER",
			ResponseCode: ResponseCodeOK,
			Message:      "User deleted",
		})
	})

	msg, err := client.RemoveUser(context.Background(), "jdoe")
	if err != nil {
		t.Fatalf("RemoveUser: %v", err)
	}
	if msg != "User deleted" {
		t.Errorf("message = %q", msg)
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(Status{
			Operation:    "ADD_USER",
			ResponseCode: "INVALID_INPUT_DATA",
			Message:      "Password does not meet complexity requirements",
			RequestID:    "na/2026-08-25/abc123",
		})
	})

	err := client.CreateUser(context.Background(), CreateUserRequest{UserName: "jdoe"})
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.ResponseCode != "INVALID_INPUT_DATA" {
		t.Errorf("unexpected APIError %+v", apiErr)
	}
	if !strings.Contains(err.Error(), "complexity") {
		t.Errorf("error should carry the API message, got %q", err)
	}
	if IsNotFound(err) {
		t.Error("INVALID_INPUT_DATA must not be reported as not found")
	}
}

func TestIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(Status{
			ResponseCode: ResponseCodeNotFound,
			Message:      "Resource not found",
		})
	})

	_, err := client.ListGeos(context.Background(), GeoFilter{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !IsNotFound(err) {
		t.Errorf("expected IsNotFound for %v", err)
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("plain errors are not not-found")
	}
}

func TestListGeosQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/caas/2.11/"+testOrgID+"/infrastructure/geographicRegion" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("isHome"); got != "true" {
			t.Errorf("isHome query = %q", got)
		}
		json.NewEncoder(w).Encode(geoList{
			TotalCount: 1,
			Geos: []Geo{{
				ID:     "northamerica",
				Name:   "North America",
				IsHome: true,
			}},
		})
	})

	geos, err := client.ListGeos(context.Background(), GeoFilter{IsHome: true})
	if err != nil {
		t.Fatalf("ListGeos: %v", err)
	}
	if len(geos) != 1 || geos[0].ID != "northamerica" {
		t.Errorf("got %+v", geos)
	}
}

func TestGetNetworkDomainByName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("name") != "myCND" || query.Get("datacenterId") != "NA9" {
			t.Errorf("unexpected query %v", query)
		}
		json.NewEncoder(w).Encode(networkDomainList{
			TotalCount:     1,
			NetworkDomains: []NetworkDomain{{ID: "nd-1", Name: "myCND", DatacenterID: "NA9"}},
		})
	})

	domain, err := client.GetNetworkDomainByName(context.Background(), "myCND", "NA9")
	if err != nil {
		t.Fatalf("GetNetworkDomainByName: %v", err)
	}
	if domain == nil || domain.ID != "nd-1" {
		t.Fatalf("got %+v", domain)
	}
}

func TestListVIPFunctions(t *testing.T) {
	tests := []struct {
		functionType VIPFunctionType
		endpoint     string
		collection   string
	}{
		{VIPFunctionHealthMonitor, "defaultHealthMonitor", "defaultHealthMonitor"},
		{VIPFunctionPersistenceProfile, "defaultPersistenceProfile", "defaultPersistenceProfile"},
		{VIPFunctionIRule, "defaultIrule", "defaultIrule"},
	}
	for _, tt := range tests {
		t.Run(string(tt.functionType), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				want := "/caas/2.11/" + testOrgID + "/networkDomainVip/" + tt.endpoint
				if r.URL.Path != want {
					t.Errorf("path = %s, want %s", r.URL.Path, want)
				}
				if got := r.URL.Query().Get("networkDomainId"); got != "nd-1" {
					t.Errorf("networkDomainId query = %q", got)
				}
				json.NewEncoder(w).Encode(map[string]any{
					"totalCount":  1,
					tt.collection: []VIPFunction{{ID: "fn-1", Name: "CCDEFAULT." + tt.endpoint}},
				})
			})

			functions, err := client.ListVIPFunctions(context.Background(), "nd-1", tt.functionType)
			if err != nil {
				t.Fatalf("ListVIPFunctions: %v", err)
			}
			if len(functions) != 1 || functions[0].ID != "fn-1" {
				t.Errorf("got %+v", functions)
			}
		})
	}

	if _, err := (&Client{}).ListVIPFunctions(context.Background(), "nd-1", "bogus"); err == nil {
		t.Error("expected an error for an invalid function type")
	}
}
