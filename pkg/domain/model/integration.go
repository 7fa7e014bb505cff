package model

import (
	"time"

	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Integration is a configured CI/CD hookup for one repository. Secret is
// used to verify inbound webhook signatures when the sender provides one.
type Integration struct {
	ID            types.IntegrationID `json:"id" firestore:"ID"`
	OwnerID       string              `json:"owner_id" firestore:"OwnerID"`
	Name          string              `json:"name" firestore:"Name"`
	RepositoryRef string              `json:"repository_ref" firestore:"RepositoryRef"`
	Branch        string              `json:"branch" firestore:"Branch"`
	Events        []string            `json:"events" firestore:"Events"`
	Secret        types.WebhookSecret `json:"-" firestore:"Secret" masq:"secret"`
	FailOnIssues  bool                `json:"fail_on_issues" firestore:"FailOnIssues"`
	MaxIssues     int                 `json:"max_issues" firestore:"MaxIssues"`
	Channels      []NotifyChannel     `json:"channels" firestore:"Channels"`
	Active        bool                `json:"active" firestore:"Active"`
	TotalRuns     int                 `json:"total_runs" firestore:"TotalRuns"`
	SuccessRate   float64             `json:"success_rate" firestore:"SuccessRate"`
	CreatedAt     time.Time           `json:"created_at" firestore:"CreatedAt"`
	UpdatedAt     time.Time           `json:"updated_at" firestore:"UpdatedAt"`
}

// AcceptsEvent reports whether the integration is configured to process the
// given webhook event type.
func (x *Integration) AcceptsEvent(event string) bool {
	for _, e := range x.Events {
		if e == event {
			return true
		}
	}
	return false
}

// NotifyChannel is one outbound chat destination.
type NotifyChannel struct {
	Type       string `json:"type" firestore:"Type"` // "slack" or "teams"
	WebhookURL string `json:"webhook_url" firestore:"WebhookURL" masq:"secret"`
}

// IntegrationRun is one webhook-triggered analysis execution. LogLines is
// the append-only audit trail of the run, each line timestamp-prefixed.
type IntegrationRun struct {
	ID             types.RunID         `json:"id" firestore:"ID"`
	IntegrationID  types.IntegrationID `json:"integration_id" firestore:"IntegrationID"`
	CommitSHA      string              `json:"commit_sha" firestore:"CommitSHA"`
	Branch         string              `json:"branch" firestore:"Branch"`
	Author         string              `json:"author" firestore:"Author"`
	Status         types.RunStatus     `json:"status" firestore:"Status"`
	StartedAt      time.Time           `json:"started_at" firestore:"StartedAt"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty" firestore:"CompletedAt"`
	DurationMs     int64               `json:"duration_ms" firestore:"DurationMs"`
	FilesAnalyzed  int                 `json:"files_analyzed" firestore:"FilesAnalyzed"`
	IssuesFound    int                 `json:"issues_found" firestore:"IssuesFound"`
	QualityScore   int                 `json:"quality_score_pct" firestore:"QualityScore"`
	FileResults    []FileResult        `json:"file_results" firestore:"FileResults"`
	LogLines       []string            `json:"log_lines" firestore:"LogLines"`
	PullRequestURL string              `json:"pull_request_url,omitempty" firestore:"PullRequestURL"`
}

// IntegrationRunUpdate is a partial update; nil fields are left unchanged.
type IntegrationRunUpdate struct {
	Status        *types.RunStatus
	CompletedAt   *time.Time
	DurationMs    *int64
	FilesAnalyzed *int
	IssuesFound   *int
	QualityScore  *int
}

// IntegrationUpdate is a partial update; nil fields are left unchanged.
// The run counter is deliberately absent: concurrent webhook accepts all
// write the integration record, so TotalRuns only moves through
// JobRepository.IncrementTotalRuns.
type IntegrationUpdate struct {
	SuccessRate *float64
}

func (x *Integration) Validate() error {
	if x.ID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "integration ID is empty")
	}
	if x.RepositoryRef == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository ref is empty")
	}
	return nil
}
