package model

import (
	"time"

	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ScanJob is a full-repository analysis job. Only the owning runner mutates
// a job after creation; status moves forward only and completed/failed are
// terminal.
type ScanJob struct {
	ID            types.ScanJobID  `json:"id" firestore:"ID"`
	OwnerID       string           `json:"owner_id" firestore:"OwnerID"`
	RepositoryRef string           `json:"repository_ref" firestore:"RepositoryRef"`
	Branch        string           `json:"branch" firestore:"Branch"`
	Status        types.ScanStatus `json:"status" firestore:"Status"`
	Progress      ScanProgress     `json:"progress" firestore:"Progress"`
	FileResults   []FileResult     `json:"file_results" firestore:"FileResults"`
	Summary       *ScanSummary     `json:"summary,omitempty" firestore:"Summary"`
	Error         string           `json:"error,omitempty" firestore:"Error"`
	CreatedAt     time.Time        `json:"created_at" firestore:"CreatedAt"`
	UpdatedAt     time.Time        `json:"updated_at" firestore:"UpdatedAt"`
}

// ScanProgress is overwritten, never appended, on every file boundary.
type ScanProgress struct {
	Current          int    `json:"current" firestore:"Current"`
	Total            int    `json:"total" firestore:"Total"`
	Percentage       int    `json:"percentage" firestore:"Percentage"`
	CurrentFilePath  string `json:"current_file_path" firestore:"CurrentFilePath"`
	EstimatedSecLeft int64  `json:"estimated_seconds_remaining" firestore:"EstimatedSecLeft"`
}

// FileResult records the outcome of one file within a job. Entries are
// append-only and kept in discovery order.
type FileResult struct {
	Path         string  `json:"path" firestore:"Path"`
	Success      bool    `json:"success" firestore:"Success"`
	Issues       []Issue `json:"issues,omitempty" firestore:"Issues"`
	ErrorMessage string  `json:"error_message,omitempty" firestore:"ErrorMessage"`
	ElapsedMs    int64   `json:"elapsed_ms" firestore:"ElapsedMs"`
}

// ScanSummary is written exactly once, at job completion.
type ScanSummary struct {
	TotalFiles        int            `json:"total_files" firestore:"TotalFiles"`
	AnalyzedFiles     int            `json:"analyzed_files" firestore:"AnalyzedFiles"`
	FailedFiles       int            `json:"failed_files" firestore:"FailedFiles"`
	TotalIssues       int            `json:"total_issues" firestore:"TotalIssues"`
	SeverityBreakdown map[string]int `json:"severity_breakdown" firestore:"SeverityBreakdown"`
	DebtScore         int            `json:"debt_score" firestore:"DebtScore"`
	EstimatedFixHours float64        `json:"estimated_fix_hours" firestore:"EstimatedFixHours"`
}

// ScanJobUpdate is a partial update; nil fields are left unchanged so
// progress can be written without re-serializing result history.
type ScanJobUpdate struct {
	Status   *types.ScanStatus
	Progress *ScanProgress
	Summary  *ScanSummary
	Error    *string
}

func (x *ScanJob) Validate() error {
	if x.ID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "scan job ID is empty")
	}
	if x.RepositoryRef == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository ref is empty")
	}
	if x.Branch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "branch is empty")
	}
	return nil
}

// ScanExportRecord is the flattened row appended to the analytics table when
// a scan completes.
type ScanExportRecord struct {
	JobID         string
	OwnerID       string
	RepositoryRef string
	Branch        string
	Summary       ScanSummary
	Timestamp     int64
}
