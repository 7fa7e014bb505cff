package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . Analyzer CodeHost Notifier BigQuery

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/legacylift/legacylift/pkg/domain/model"
)

// Analyzer is the external code analysis capability. A per-call failure is
// caught by the owning runner and recorded as a file-level error; it never
// escalates to a job-level fault.
type Analyzer interface {
	Analyze(ctx context.Context, content []byte, path string, opts *model.AnalyzeOptions) (*model.AnalysisOutcome, error)
}

// CodeHost is the remote code-hosting platform. All remote data access must
// pass through this interface so that the shared rate-limit budget has a
// single arbiter.
type CodeHost interface {
	ListDirectory(ctx context.Context, repoRef, ref, dirPath string) ([]*model.RepoEntry, *model.RateLimitInfo, error)
	Download(ctx context.Context, downloadRef string) ([]byte, error)
}

// Notifier delivers run results to configured chat channels. Best-effort:
// implementations log delivery failures and never return them.
type Notifier interface {
	Notify(ctx context.Context, integration *model.Integration, run *model.IntegrationRun)
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}
