package usecase

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/legacylift/legacylift/pkg/utils/errutil"
	"github.com/legacylift/legacylift/pkg/utils/logging"
	"github.com/legacylift/legacylift/pkg/utils/telemetry"
	"github.com/m-mizutani/goerr/v2"
)

// StartScan discovers eligible files and persists a pending scan job. The
// caller is expected to hand the returned job and file list to ExecuteScan
// on a detached context; StartScan itself does no analysis.
func (x *UseCase) StartScan(ctx context.Context, input *model.StartScanInput) (*model.StartScanOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	files, err := x.DiscoverFiles(ctx, input.RepositoryRef, input.Branch)
	if err != nil {
		return nil, goerr.Wrap(err, "file discovery failed",
			goerr.V("repo", input.RepositoryRef),
			goerr.V("branch", input.Branch),
		)
	}

	now := logging.CtxTime(ctx)
	job := &model.ScanJob{
		ID:            types.NewScanJobID(),
		OwnerID:       input.OwnerID,
		RepositoryRef: input.RepositoryRef,
		Branch:        input.Branch,
		Status:        types.ScanStatusPending,
		Progress: model.ScanProgress{
			Total: len(files),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := x.clients.JobRepository().CreateScanJob(ctx, job); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("scan job created",
		slog.String("job_id", job.ID.String()),
		slog.String("repo", input.RepositoryRef),
		slog.Int("files", len(files)),
	)

	return &model.StartScanOutput{Job: job, Files: files}, nil
}

// ExecuteScan drives the job through running to a terminal state. Files are
// processed strictly sequentially; the shared rate-limit budget is managed
// by the code host client and is not designed for concurrent callers within
// one job. A single file's failure never aborts the job: it is recorded as
// a file-level result and the loop continues. Only faults outside the
// per-file loop move the job to failed.
func (x *UseCase) ExecuteScan(ctx context.Context, jobID types.ScanJobID, files []*model.FileDescriptor) error {
	repo := x.clients.JobRepository()

	running := types.ScanStatusRunning
	if err := repo.UpdateScanJob(ctx, jobID, &model.ScanJobUpdate{Status: &running}); err != nil {
		return x.failScan(ctx, jobID, err)
	}
	telemetry.ScanJobsStarted.Inc()

	total := len(files)
	startedAt := time.Now()
	results := make([]model.FileResult, 0, total)

	for i, file := range files {
		elapsedMs := time.Since(startedAt).Milliseconds()
		progress := &model.ScanProgress{
			Current:          i + 1,
			Total:            total,
			Percentage:       int(math.Round(100 * float64(i+1) / float64(total))),
			CurrentFilePath:  file.Path,
			EstimatedSecLeft: estimateSecondsLeft(elapsedMs, i+1, total),
		}
		if err := repo.UpdateScanJob(ctx, jobID, &model.ScanJobUpdate{Progress: progress}); err != nil {
			return x.failScan(ctx, jobID, err)
		}

		result := x.analyzeFile(ctx, file)
		results = append(results, *result)

		if err := repo.AppendFileResult(ctx, jobID, result); err != nil {
			return x.failScan(ctx, jobID, err)
		}
	}

	summary := buildScanSummary(total, results)
	completed := types.ScanStatusCompleted
	if err := repo.UpdateScanJob(ctx, jobID, &model.ScanJobUpdate{
		Status:  &completed,
		Summary: summary,
	}); err != nil {
		return x.failScan(ctx, jobID, err)
	}
	telemetry.ScanJobsCompleted.Inc()

	logging.From(ctx).Info("scan job completed",
		slog.String("job_id", jobID.String()),
		slog.Int("analyzed", summary.AnalyzedFiles),
		slog.Int("failed", summary.FailedFiles),
		slog.Int("issues", summary.TotalIssues),
	)

	// Analytics export is post-processing: a failure here is reported but
	// never changes the job's outcome.
	if err := x.exportScanSummary(ctx, jobID, summary); err != nil {
		errutil.HandleError(ctx, "failed to export scan summary", err)
	}

	return nil
}

// analyzeFile fetches one file and runs the analyzer. Errors are contained
// into the returned result.
func (x *UseCase) analyzeFile(ctx context.Context, file *model.FileDescriptor) *model.FileResult {
	fileStart := time.Now()

	content, err := x.clients.CodeHost().Download(ctx, file.DownloadRef)
	if err != nil {
		logging.From(ctx).Warn("failed to fetch file content",
			slog.String("path", file.Path),
			slog.Any("error", err),
		)
		return &model.FileResult{
			Path:         file.Path,
			Success:      false,
			ErrorMessage: err.Error(),
			ElapsedMs:    time.Since(fileStart).Milliseconds(),
		}
	}

	outcome, err := x.clients.Analyzer().Analyze(ctx, content, file.Path, &model.AnalyzeOptions{
		Language: file.Language,
	})
	telemetry.FilesAnalyzed.Inc()
	if err != nil {
		logging.From(ctx).Warn("analyzer failed for file",
			slog.String("path", file.Path),
			slog.Any("error", err),
		)
		return &model.FileResult{
			Path:         file.Path,
			Success:      false,
			ErrorMessage: err.Error(),
			ElapsedMs:    time.Since(fileStart).Milliseconds(),
		}
	}

	return &model.FileResult{
		Path:      file.Path,
		Success:   true,
		Issues:    outcome.Issues,
		ElapsedMs: time.Since(fileStart).Milliseconds(),
	}
}

func (x *UseCase) failScan(ctx context.Context, jobID types.ScanJobID, cause error) error {
	telemetry.ScanJobsFailed.Inc()
	errutil.HandleError(ctx, "scan job failed", cause)

	failed := types.ScanStatusFailed
	msg := cause.Error()
	if err := x.clients.JobRepository().UpdateScanJob(ctx, jobID, &model.ScanJobUpdate{
		Status: &failed,
		Error:  &msg,
	}); err != nil {
		errutil.HandleError(ctx, "failed to mark scan job as failed", err)
	}

	return cause
}

func (x *UseCase) GetScanJob(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error) {
	return x.clients.JobRepository().GetScanJob(ctx, id)
}

func estimateSecondsLeft(elapsedMs int64, done, total int) int64 {
	if done == 0 {
		return 0
	}
	perFileMs := float64(elapsedMs) / float64(done)
	return int64(math.Round(perFileMs * float64(total-done) / 1000))
}
