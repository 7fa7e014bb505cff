package githubapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindUnauthorized  ErrorKind = "unauthorized"
	KindForbidden     ErrorKind = "forbidden"
	KindNotFound      ErrorKind = "not_found"
	KindUnprocessable ErrorKind = "unprocessable"
	KindRateLimit     ErrorKind = "rate_limit"
	KindServer        ErrorKind = "server"
	KindTransport     ErrorKind = "transport"
)

// APIError is an unrecoverable remote-API condition, classified into a
// user-facing message. Transport and rate-limit kinds are produced only
// after the retry budget is exhausted.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (x *APIError) Error() string {
	return x.Message
}

// classify parses a structured error body and maps the status into a
// human-readable message. Falls back to "<status>: <status text>" when the
// body is unparseable.
func classify(status int, statusText string, body []byte) *APIError {
	var parsed struct {
		Message string `json:"message"`
	}
	raw := fmt.Sprintf("%d: %s", status, statusText)
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		raw = parsed.Message
	}

	switch status {
	case http.StatusUnauthorized:
		return &APIError{Kind: KindUnauthorized, Status: status, Message: "authentication failed, re-authorization required: " + raw}
	case http.StatusForbidden:
		return &APIError{Kind: KindForbidden, Status: status, Message: "permission denied: " + raw}
	case http.StatusNotFound:
		return &APIError{Kind: KindNotFound, Status: status, Message: "resource not found: " + raw}
	case http.StatusUnprocessableEntity:
		return &APIError{Kind: KindUnprocessable, Status: status, Message: "invalid request: " + raw}
	case http.StatusTooManyRequests:
		return &APIError{Kind: KindRateLimit, Status: status, Message: "rate limit exceeded: " + raw}
	default:
		return &APIError{Kind: KindServer, Status: status, Message: raw}
	}
}
