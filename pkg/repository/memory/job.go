package memory

import (
	"context"
	"sync"
	"time"

	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/legacylift/legacylift/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

type jobRepository struct {
	mu           sync.RWMutex
	scanJobs     map[string]*model.ScanJob
	integrations map[string]*model.Integration
	runs         map[string]*model.IntegrationRun
}

// Scan job operations

func (r *jobRepository) CreateScanJob(ctx context.Context, job *model.ScanJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.scanJobs[string(job.ID)]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "scan job already exists",
			goerr.V("jobID", job.ID),
		)
	}

	r.scanJobs[string(job.ID)] = copyScanJob(job)

	return nil
}

func (r *jobRepository) GetScanJob(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, exists := r.scanJobs[string(id)]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "scan job not found",
			goerr.V("jobID", id),
		)
	}

	return copyScanJob(job), nil
}

func (r *jobRepository) UpdateScanJob(ctx context.Context, id types.ScanJobID, update *model.ScanJobUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, exists := r.scanJobs[string(id)]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "scan job not found",
			goerr.V("jobID", id),
		)
	}

	if update.Status != nil {
		job.Status = *update.Status
	}
	if update.Progress != nil {
		job.Progress = *update.Progress
	}
	if update.Summary != nil {
		summary := *update.Summary
		job.Summary = &summary
	}
	if update.Error != nil {
		job.Error = *update.Error
	}
	job.UpdatedAt = time.Now()

	return nil
}

func (r *jobRepository) AppendFileResult(ctx context.Context, id types.ScanJobID, result *model.FileResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, exists := r.scanJobs[string(id)]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "scan job not found",
			goerr.V("jobID", id),
		)
	}

	job.FileResults = append(job.FileResults, *copyFileResult(result))
	job.UpdatedAt = time.Now()

	return nil
}

// Integration operations

func (r *jobRepository) CreateIntegration(ctx context.Context, integration *model.Integration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.integrations[string(integration.ID)]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "integration already exists",
			goerr.V("integrationID", integration.ID),
		)
	}

	r.integrations[string(integration.ID)] = copyIntegration(integration)

	return nil
}

func (r *jobRepository) GetIntegration(ctx context.Context, id types.IntegrationID) (*model.Integration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	integration, exists := r.integrations[string(id)]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "integration not found",
			goerr.V("integrationID", id),
		)
	}

	return copyIntegration(integration), nil
}

func (r *jobRepository) UpdateIntegration(ctx context.Context, id types.IntegrationID, update *model.IntegrationUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	integration, exists := r.integrations[string(id)]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "integration not found",
			goerr.V("integrationID", id),
		)
	}

	if update.SuccessRate != nil {
		integration.SuccessRate = *update.SuccessRate
	}
	integration.UpdatedAt = time.Now()

	return nil
}

func (r *jobRepository) IncrementTotalRuns(ctx context.Context, id types.IntegrationID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	integration, exists := r.integrations[string(id)]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "integration not found",
			goerr.V("integrationID", id),
		)
	}

	integration.TotalRuns++
	integration.UpdatedAt = time.Now()

	return nil
}

// Integration run operations

func (r *jobRepository) CreateRun(ctx context.Context, run *model.IntegrationRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[string(run.ID)]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "run already exists",
			goerr.V("runID", run.ID),
		)
	}

	r.runs[string(run.ID)] = copyRun(run)

	return nil
}

func (r *jobRepository) GetRun(ctx context.Context, id types.RunID) (*model.IntegrationRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, exists := r.runs[string(id)]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "run not found",
			goerr.V("runID", id),
		)
	}

	return copyRun(run), nil
}

func (r *jobRepository) UpdateRun(ctx context.Context, id types.RunID, update *model.IntegrationRunUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	run, exists := r.runs[string(id)]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "run not found",
			goerr.V("runID", id),
		)
	}

	if update.Status != nil {
		run.Status = *update.Status
	}
	if update.CompletedAt != nil {
		completedAt := *update.CompletedAt
		run.CompletedAt = &completedAt
	}
	if update.DurationMs != nil {
		run.DurationMs = *update.DurationMs
	}
	if update.FilesAnalyzed != nil {
		run.FilesAnalyzed = *update.FilesAnalyzed
	}
	if update.IssuesFound != nil {
		run.IssuesFound = *update.IssuesFound
	}
	if update.QualityScore != nil {
		run.QualityScore = *update.QualityScore
	}

	return nil
}

func (r *jobRepository) AppendRunFileResult(ctx context.Context, id types.RunID, result *model.FileResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	run, exists := r.runs[string(id)]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "run not found",
			goerr.V("runID", id),
		)
	}

	run.FileResults = append(run.FileResults, *copyFileResult(result))

	return nil
}

func (r *jobRepository) AppendRunLog(ctx context.Context, id types.RunID, line string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	run, exists := r.runs[string(id)]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "run not found",
			goerr.V("runID", id),
		)
	}

	run.LogLines = append(run.LogLines, line)

	return nil
}

func (r *jobRepository) ListRuns(ctx context.Context, integrationID types.IntegrationID) ([]*model.IntegrationRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var runs []*model.IntegrationRun
	for _, run := range r.runs {
		if run.IntegrationID == integrationID {
			runs = append(runs, copyRun(run))
		}
	}

	return runs, nil
}

// Helper functions for deep copy

func copyScanJob(job *model.ScanJob) *model.ScanJob {
	if job == nil {
		return nil
	}
	cpy := *job

	if job.FileResults != nil {
		cpy.FileResults = make([]model.FileResult, len(job.FileResults))
		for i := range job.FileResults {
			cpy.FileResults[i] = *copyFileResult(&job.FileResults[i])
		}
	}

	if job.Summary != nil {
		summary := *job.Summary
		if job.Summary.SeverityBreakdown != nil {
			summary.SeverityBreakdown = make(map[string]int, len(job.Summary.SeverityBreakdown))
			for k, v := range job.Summary.SeverityBreakdown {
				summary.SeverityBreakdown[k] = v
			}
		}
		cpy.Summary = &summary
	}

	return &cpy
}

func copyFileResult(result *model.FileResult) *model.FileResult {
	if result == nil {
		return nil
	}
	cpy := *result

	if result.Issues != nil {
		cpy.Issues = make([]model.Issue, len(result.Issues))
		copy(cpy.Issues, result.Issues)
	}

	return &cpy
}

func copyIntegration(integration *model.Integration) *model.Integration {
	if integration == nil {
		return nil
	}
	cpy := *integration

	if integration.Events != nil {
		cpy.Events = make([]string, len(integration.Events))
		copy(cpy.Events, integration.Events)
	}

	if integration.Channels != nil {
		cpy.Channels = make([]model.NotifyChannel, len(integration.Channels))
		copy(cpy.Channels, integration.Channels)
	}

	return &cpy
}

func copyRun(run *model.IntegrationRun) *model.IntegrationRun {
	if run == nil {
		return nil
	}
	cpy := *run

	if run.CompletedAt != nil {
		completedAt := *run.CompletedAt
		cpy.CompletedAt = &completedAt
	}

	if run.FileResults != nil {
		cpy.FileResults = make([]model.FileResult, len(run.FileResults))
		for i := range run.FileResults {
			cpy.FileResults[i] = *copyFileResult(&run.FileResults[i])
		}
	}

	if run.LogLines != nil {
		cpy.LogLines = make([]string, len(run.LogLines))
		copy(cpy.LogLines, run.LogLines)
	}

	return &cpy
}
