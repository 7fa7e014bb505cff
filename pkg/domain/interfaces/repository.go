package interfaces

import (
	"context"

	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/domain/types"
)

//go:generate moq -out ../mock/job_repository_mock.go -pkg mock . JobRepository

// JobRepository persists scan jobs, integrations and integration runs.
// Updates are partial per record: nil fields of the update structs are left
// untouched, so a progress write never re-serializes result history.
// Individual record updates are atomic. Jobs and runs have a single writer
// after creation; the integration record does not — concurrent webhook
// accepts all touch it, so its run counter is incremented in the store
// rather than written as an absolute value.
type JobRepository interface {
	// Scan job operations
	CreateScanJob(ctx context.Context, job *model.ScanJob) error
	GetScanJob(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error)
	UpdateScanJob(ctx context.Context, id types.ScanJobID, update *model.ScanJobUpdate) error
	AppendFileResult(ctx context.Context, id types.ScanJobID, result *model.FileResult) error

	// Integration operations
	CreateIntegration(ctx context.Context, integration *model.Integration) error
	GetIntegration(ctx context.Context, id types.IntegrationID) (*model.Integration, error)
	UpdateIntegration(ctx context.Context, id types.IntegrationID, update *model.IntegrationUpdate) error
	IncrementTotalRuns(ctx context.Context, id types.IntegrationID) error

	// Integration run operations
	CreateRun(ctx context.Context, run *model.IntegrationRun) error
	GetRun(ctx context.Context, id types.RunID) (*model.IntegrationRun, error)
	UpdateRun(ctx context.Context, id types.RunID, update *model.IntegrationRunUpdate) error
	AppendRunFileResult(ctx context.Context, id types.RunID, result *model.FileResult) error
	AppendRunLog(ctx context.Context, id types.RunID, line string) error
	ListRuns(ctx context.Context, integrationID types.IntegrationID) ([]*model.IntegrationRun, error)
}
