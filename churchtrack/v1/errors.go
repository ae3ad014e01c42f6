package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnauthenticated means the backend rejected the session token. By the
// time a caller sees this error the session has already been torn down and
// the redirect callback fired; callers should navigate to login, never
// retry.
var ErrUnauthenticated = errors.New("session rejected by backend")

// RequestFailedError carries any other non-success response. It is surfaced
// to the initiating view as-is; the transport never retries.
type RequestFailedError struct {
	Status  int
	Message string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

// messageFrom pulls the backend's JSON error message out of a failure body,
// falling back to the raw body when it isn't the usual envelope.
func messageFrom(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(body))
}
