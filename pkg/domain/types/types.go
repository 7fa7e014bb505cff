package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	ScanJobID     string
	IntegrationID string
	RunID         string
	RequestID     string

	GitHubToken   string
	WebhookSecret string

	ScanStatus string
	RunStatus  string
)

const (
	ScanStatusPending   ScanStatus = "pending"
	ScanStatusRunning   ScanStatus = "running"
	ScanStatusCompleted ScanStatus = "completed"
	ScanStatusFailed    ScanStatus = "failed"
)

// Terminal returns true when no further transition is allowed.
func (x ScanStatus) Terminal() bool {
	return x == ScanStatusCompleted || x == ScanStatusFailed
}

const (
	RunStatusPending RunStatus = "pending"
	RunStatusRunning RunStatus = "running"
	RunStatusSuccess RunStatus = "success"
	RunStatusFailed  RunStatus = "failed"

	// RunStatusCancelled is declared for API compatibility. No code path in
	// this service produces it; cancellation of an accepted run is not
	// supported.
	RunStatusCancelled RunStatus = "cancelled"
)

func (x RunStatus) Terminal() bool {
	return x == RunStatusSuccess || x == RunStatusFailed || x == RunStatusCancelled
}

func NewScanJobID() ScanJobID {
	return ScanJobID(uuid.NewString())
}

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x ScanJobID) String() string     { return string(x) }
func (x IntegrationID) String() string { return string(x) }
func (x RunID) String() string         { return string(x) }

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x WebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x WebhookSecret) String() string {
	return "***********"
}
