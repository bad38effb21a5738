package nttmcp

import (
	"errors"
	"fmt"
	"net/http"
)

// Response codes seen in the Cloud Control status envelope.
const (
	ResponseCodeOK         = "OK"
	ResponseCodeInProgress = "IN_PROGRESS"
	ResponseCodeNotFound   = "RESOURCE_NOT_FOUND"
)

// Status is the envelope Cloud Control returns for mutating operations.
type Status struct {
	Operation    string      `json:"operation"`
	ResponseCode string      `json:"responseCode"`
	Message      string      `json:"message"`
	Info         []NameValue `json:"info,omitempty"`
	RequestID    string      `json:"requestId"`
}

// NameValue is a generic name/value pair used in status info elements.
type NameValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// APIError is returned for any Cloud Control response outside the 2xx
// range. The envelope fields are filled when the body carried one.
type APIError struct {
	StatusCode   int
	Operation    string
	ResponseCode string
	Message      string
	RequestID    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.ResponseCode)
	}
	return fmt.Sprintf("API request failed with status %d", e.StatusCode)
}

// IsNotFound reports whether err represents a missing Cloud Control
// resource.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound || apiErr.ResponseCode == ResponseCodeNotFound
	}
	return false
}
