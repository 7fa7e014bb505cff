package usecase_test

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/legacylift/legacylift/pkg/domain/interfaces"
	"github.com/legacylift/legacylift/pkg/domain/mock"
	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/legacylift/legacylift/pkg/infra"
	"github.com/legacylift/legacylift/pkg/repository/memory"
	"github.com/legacylift/legacylift/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func scanTestTree() map[string][]*model.RepoEntry {
	return map[string][]*model.RepoEntry{
		"": {
			fileEntry("main.py", 100),
			fileEntry("broken.py", 100),
			fileEntry("util.py", 100),
		},
	}
}

func TestStartScan(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending job with the discovered file count", func(t *testing.T) {
		memRepo := memory.New()
		uc := usecase.New(infra.New(
			infra.WithCodeHost(treeHost(scanTestTree())),
			infra.WithJobRepository(memRepo),
		))

		out := gt.R1(uc.StartScan(ctx, &model.StartScanInput{
			OwnerID:       "owner-1",
			RepositoryRef: "acme/legacy-app",
			Branch:        "main",
		})).NoError(t)

		gt.A(t, out.Files).Length(3)
		gt.V(t, out.Job.Status).Equal(types.ScanStatusPending)
		gt.V(t, out.Job.Progress.Total).Equal(3)

		stored := gt.R1(uc.GetScanJob(ctx, out.Job.ID)).NoError(t)
		gt.V(t, stored.Status).Equal(types.ScanStatusPending)
		gt.V(t, stored.RepositoryRef).Equal("acme/legacy-app")
	})

	t.Run("rejects input without a repository ref", func(t *testing.T) {
		uc := usecase.New(infra.New())

		_, err := uc.StartScan(ctx, &model.StartScanInput{Branch: "main"})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("surfaces discovery failure without creating a job", func(t *testing.T) {
		repoMock := &mock.JobRepositoryMock{
			CreateScanJobFunc: func(ctx context.Context, job *model.ScanJob) error {
				return nil
			},
		}
		uc := usecase.New(infra.New(
			infra.WithCodeHost(treeHost(map[string][]*model.RepoEntry{})),
			infra.WithJobRepository(repoMock),
		))

		_, err := uc.StartScan(ctx, &model.StartScanInput{
			RepositoryRef: "acme/legacy-app",
			Branch:        "main",
		})
		gt.Error(t, err)
		gt.A(t, repoMock.CreateScanJobCalls()).Length(0)
	})
}

func TestExecuteScan(t *testing.T) {
	ctx := context.Background()

	newScanUseCase := func(repo interfaces.JobRepository, opts ...infra.Option) *usecase.UseCase {
		analyzer := &mock.AnalyzerMock{
			AnalyzeFunc: func(ctx context.Context, content []byte, path string, opts *model.AnalyzeOptions) (*model.AnalysisOutcome, error) {
				if path == "broken.py" {
					return nil, goerr.New("analyzer exploded")
				}
				return &model.AnalysisOutcome{
					Issues: []model.Issue{
						{RuleID: "modern-001", Severity: model.SeverityHigh, Message: "deprecated API", Line: 3},
					},
					Confidence: 0.9,
				}, nil
			},
		}
		host := treeHost(scanTestTree())
		host.DownloadFunc = func(ctx context.Context, downloadRef string) ([]byte, error) {
			return []byte("print('hello')"), nil
		}

		base := []infra.Option{
			infra.WithCodeHost(host),
			infra.WithAnalyzer(analyzer),
			infra.WithJobRepository(repo),
		}
		return usecase.New(infra.New(append(base, opts...)...))
	}

	t.Run("one failed file does not fail the job", func(t *testing.T) {
		memRepo := memory.New()
		uc := newScanUseCase(memRepo)

		out := gt.R1(uc.StartScan(ctx, &model.StartScanInput{
			OwnerID:       "owner-1",
			RepositoryRef: "acme/legacy-app",
			Branch:        "main",
		})).NoError(t)

		gt.NoError(t, uc.ExecuteScan(ctx, out.Job.ID, out.Files))

		job := gt.R1(uc.GetScanJob(ctx, out.Job.ID)).NoError(t)
		gt.V(t, job.Status).Equal(types.ScanStatusCompleted)
		gt.A(t, job.FileResults).Length(3)

		var failed int
		for _, r := range job.FileResults {
			if !r.Success {
				failed++
				gt.V(t, r.Path).Equal("broken.py")
				gt.V(t, r.ErrorMessage).Equal("analyzer exploded")
			}
		}
		gt.V(t, failed).Equal(1)

		gt.V(t, job.Summary.TotalFiles).Equal(3)
		gt.V(t, job.Summary.AnalyzedFiles).Equal(2)
		gt.V(t, job.Summary.FailedFiles).Equal(1)
		gt.V(t, job.Summary.TotalIssues).Equal(2)
		gt.V(t, job.Summary.SeverityBreakdown[model.SeverityHigh]).Equal(2)

		gt.V(t, job.Progress.Current).Equal(3)
		gt.V(t, job.Progress.Percentage).Equal(100)
	})

	t.Run("download failure is contained as a file result", func(t *testing.T) {
		memRepo := memory.New()
		host := treeHost(scanTestTree())
		host.DownloadFunc = func(ctx context.Context, downloadRef string) ([]byte, error) {
			return nil, goerr.New("connection reset")
		}
		uc := usecase.New(infra.New(
			infra.WithCodeHost(host),
			infra.WithAnalyzer(&mock.AnalyzerMock{}),
			infra.WithJobRepository(memRepo),
		))

		out := gt.R1(uc.StartScan(ctx, &model.StartScanInput{
			RepositoryRef: "acme/legacy-app",
			Branch:        "main",
		})).NoError(t)
		gt.NoError(t, uc.ExecuteScan(ctx, out.Job.ID, out.Files))

		job := gt.R1(uc.GetScanJob(ctx, out.Job.ID)).NoError(t)
		gt.V(t, job.Status).Equal(types.ScanStatusCompleted)
		gt.V(t, job.Summary.AnalyzedFiles).Equal(0)
		gt.V(t, job.Summary.FailedFiles).Equal(3)
	})

	t.Run("store failure moves the job to failed", func(t *testing.T) {
		memRepo := memory.New()
		repoMock := &mock.JobRepositoryMock{
			CreateScanJobFunc: memRepo.CreateScanJob,
			GetScanJobFunc:    memRepo.GetScanJob,
			AppendFileResultFunc: func(ctx context.Context, id types.ScanJobID, result *model.FileResult) error {
				return goerr.New("datastore unavailable")
			},
			UpdateScanJobFunc: memRepo.UpdateScanJob,
		}

		host := treeHost(scanTestTree())
		host.DownloadFunc = func(ctx context.Context, downloadRef string) ([]byte, error) {
			return []byte("x = 1"), nil
		}
		uc := usecase.New(infra.New(
			infra.WithCodeHost(host),
			infra.WithAnalyzer(&mock.AnalyzerMock{
				AnalyzeFunc: func(ctx context.Context, content []byte, path string, opts *model.AnalyzeOptions) (*model.AnalysisOutcome, error) {
					return &model.AnalysisOutcome{Confidence: 1}, nil
				},
			}),
			infra.WithJobRepository(repoMock),
		))

		out := gt.R1(uc.StartScan(ctx, &model.StartScanInput{
			RepositoryRef: "acme/legacy-app",
			Branch:        "main",
		})).NoError(t)
		gt.Error(t, uc.ExecuteScan(ctx, out.Job.ID, out.Files))

		job := gt.R1(memRepo.GetScanJob(ctx, out.Job.ID)).NoError(t)
		gt.V(t, job.Status).Equal(types.ScanStatusFailed)
		gt.V(t, job.Error).Equal("datastore unavailable")
	})

	t.Run("completed scan is exported to BigQuery", func(t *testing.T) {
		memRepo := memory.New()
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return nil, nil
			},
			CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error {
				return nil
			},
			InsertFunc: func(ctx context.Context, schema bigquery.Schema, data any) error {
				return nil
			},
		}
		uc := newScanUseCase(memRepo, infra.WithBigQuery(mockBQ))

		out := gt.R1(uc.StartScan(ctx, &model.StartScanInput{
			OwnerID:       "owner-1",
			RepositoryRef: "acme/legacy-app",
			Branch:        "main",
		})).NoError(t)
		gt.NoError(t, uc.ExecuteScan(ctx, out.Job.ID, out.Files))

		gt.A(t, mockBQ.CreateTableCalls()).Length(1)
		inserts := mockBQ.InsertCalls()
		gt.A(t, inserts).Length(1)

		record, ok := inserts[0].Data.(*model.ScanExportRecord)
		gt.True(t, ok)
		gt.V(t, record.JobID).Equal(string(out.Job.ID))
		gt.V(t, record.OwnerID).Equal("owner-1")
		gt.V(t, record.Summary.AnalyzedFiles).Equal(2)
	})
}

func TestEstimateSecondsLeft(t *testing.T) {
	gt.V(t, usecase.EstimateSecondsLeftForTest(2000, 2, 10)).Equal(int64(8))
	gt.V(t, usecase.EstimateSecondsLeftForTest(0, 0, 10)).Equal(int64(0))
	gt.V(t, usecase.EstimateSecondsLeftForTest(5000, 10, 10)).Equal(int64(0))
}
