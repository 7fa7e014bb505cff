package testhelper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/legacylift/legacylift/pkg/domain/interfaces"
	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/legacylift/legacylift/pkg/repository"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for JobRepository
// This is the main entry point for testing any JobRepository implementation
func TestAll(t *testing.T, repo interfaces.JobRepository) {
	t.Run("ScanJobCRUD", func(t *testing.T) {
		TestScanJobCRUD(t, repo)
	})
	t.Run("ScanJobPartialUpdate", func(t *testing.T) {
		TestScanJobPartialUpdate(t, repo)
	})
	t.Run("ScanJobFileResults", func(t *testing.T) {
		TestScanJobFileResults(t, repo)
	})
	t.Run("IntegrationCRUD", func(t *testing.T) {
		TestIntegrationCRUD(t, repo)
	})
	t.Run("RunCounterConcurrent", func(t *testing.T) {
		TestRunCounterConcurrent(t, repo)
	})
	t.Run("RunCRUD", func(t *testing.T) {
		TestRunCRUD(t, repo)
	})
	t.Run("RunLogAppend", func(t *testing.T) {
		TestRunLogAppend(t, repo)
	})
	t.Run("ListRuns", func(t *testing.T) {
		TestListRuns(t, repo)
	})
}

func newTestScanJob() *model.ScanJob {
	now := time.Now()
	return &model.ScanJob{
		ID:            types.NewScanJobID(),
		OwnerID:       fmt.Sprintf("owner-%s", uuid.NewString()[:8]),
		RepositoryRef: "acme/legacy-app",
		Branch:        "main",
		Status:        types.ScanStatusPending,
		Progress:      model.ScanProgress{Total: 3},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func newTestIntegration() *model.Integration {
	now := time.Now()
	return &model.Integration{
		ID:            types.IntegrationID(uuid.NewString()),
		OwnerID:       fmt.Sprintf("owner-%s", uuid.NewString()[:8]),
		Name:          "ci-check",
		RepositoryRef: "acme/legacy-app",
		Branch:        "main",
		Events:        []string{"push"},
		Secret:        "test-secret",
		FailOnIssues:  true,
		MaxIssues:     5,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func newTestRun(integrationID types.IntegrationID) *model.IntegrationRun {
	return &model.IntegrationRun{
		ID:            types.NewRunID(),
		IntegrationID: integrationID,
		CommitSHA:     "0123456789abcdef",
		Branch:        "main",
		Author:        "dev",
		Status:        types.RunStatusPending,
		StartedAt:     time.Now(),
	}
}

// TestScanJobCRUD tests basic create/get operations for scan jobs
func TestScanJobCRUD(t *testing.T, repo interfaces.JobRepository) {
	ctx := context.Background()

	job := newTestScanJob()
	gt.NoError(t, repo.CreateScanJob(ctx, job))

	got := gt.R1(repo.GetScanJob(ctx, job.ID)).NoError(t)
	gt.V(t, got.ID).Equal(job.ID)
	gt.V(t, got.RepositoryRef).Equal(job.RepositoryRef)
	gt.V(t, got.Status).Equal(types.ScanStatusPending)
	gt.V(t, got.Progress.Total).Equal(3)

	// Duplicate create is rejected
	gt.Error(t, repo.CreateScanJob(ctx, job))

	// Unknown ID maps to ErrNotFound
	_, err := repo.GetScanJob(ctx, types.ScanJobID(uuid.NewString()))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestScanJobPartialUpdate tests that nil fields of an update are left untouched
func TestScanJobPartialUpdate(t *testing.T, repo interfaces.JobRepository) {
	ctx := context.Background()

	job := newTestScanJob()
	gt.NoError(t, repo.CreateScanJob(ctx, job))

	running := types.ScanStatusRunning
	gt.NoError(t, repo.UpdateScanJob(ctx, job.ID, &model.ScanJobUpdate{
		Status: &running,
		Progress: &model.ScanProgress{
			Current:         1,
			Total:           3,
			Percentage:      33,
			CurrentFilePath: "src/main.go",
		},
	}))

	got := gt.R1(repo.GetScanJob(ctx, job.ID)).NoError(t)
	gt.V(t, got.Status).Equal(types.ScanStatusRunning)
	gt.V(t, got.Progress.Current).Equal(1)
	gt.V(t, got.Progress.CurrentFilePath).Equal("src/main.go")
	gt.V(t, got.Summary).Equal(nil)

	// Progress-only update must not touch status
	gt.NoError(t, repo.UpdateScanJob(ctx, job.ID, &model.ScanJobUpdate{
		Progress: &model.ScanProgress{Current: 2, Total: 3, Percentage: 67},
	}))

	got = gt.R1(repo.GetScanJob(ctx, job.ID)).NoError(t)
	gt.V(t, got.Status).Equal(types.ScanStatusRunning)
	gt.V(t, got.Progress.Current).Equal(2)

	// Summary write
	completed := types.ScanStatusCompleted
	gt.NoError(t, repo.UpdateScanJob(ctx, job.ID, &model.ScanJobUpdate{
		Status: &completed,
		Summary: &model.ScanSummary{
			TotalFiles:    3,
			AnalyzedFiles: 2,
			FailedFiles:   1,
			TotalIssues:   4,
		},
	}))

	got = gt.R1(repo.GetScanJob(ctx, job.ID)).NoError(t)
	gt.V(t, got.Status).Equal(types.ScanStatusCompleted)
	gt.V(t, got.Summary.AnalyzedFiles).Equal(2)
}

// TestScanJobFileResults tests append-only file results in order
func TestScanJobFileResults(t *testing.T, repo interfaces.JobRepository) {
	ctx := context.Background()

	job := newTestScanJob()
	gt.NoError(t, repo.CreateScanJob(ctx, job))

	gt.NoError(t, repo.AppendFileResult(ctx, job.ID, &model.FileResult{
		Path:    "src/a.go",
		Success: true,
		Issues:  []model.Issue{{Severity: model.SeverityHigh, Message: "deprecated API"}},
	}))
	gt.NoError(t, repo.AppendFileResult(ctx, job.ID, &model.FileResult{
		Path:         "src/b.go",
		Success:      false,
		ErrorMessage: "analyzer timeout",
	}))

	got := gt.R1(repo.GetScanJob(ctx, job.ID)).NoError(t)
	gt.A(t, got.FileResults).Length(2)
	gt.V(t, got.FileResults[0].Path).Equal("src/a.go")
	gt.V(t, got.FileResults[1].Success).Equal(false)

	// Mutating the returned record must not leak into the store
	got.FileResults[0].Path = "mutated"
	again := gt.R1(repo.GetScanJob(ctx, job.ID)).NoError(t)
	gt.V(t, again.FileResults[0].Path).Equal("src/a.go")

	// Identical results must both survive; history is append-only, not a set
	dup := &model.FileResult{Path: "src/c.go", Success: true}
	gt.NoError(t, repo.AppendFileResult(ctx, job.ID, dup))
	gt.NoError(t, repo.AppendFileResult(ctx, job.ID, dup))

	again = gt.R1(repo.GetScanJob(ctx, job.ID)).NoError(t)
	gt.A(t, again.FileResults).Length(4)
}

// TestIntegrationCRUD tests create/get/update for integrations
func TestIntegrationCRUD(t *testing.T, repo interfaces.JobRepository) {
	ctx := context.Background()

	integration := newTestIntegration()
	gt.NoError(t, repo.CreateIntegration(ctx, integration))

	got := gt.R1(repo.GetIntegration(ctx, integration.ID)).NoError(t)
	gt.V(t, got.Name).Equal("ci-check")
	gt.V(t, got.MaxIssues).Equal(5)

	successRate := 75.0
	gt.NoError(t, repo.UpdateIntegration(ctx, integration.ID, &model.IntegrationUpdate{
		SuccessRate: &successRate,
	}))

	for i := 0; i < 4; i++ {
		gt.NoError(t, repo.IncrementTotalRuns(ctx, integration.ID))
	}

	got = gt.R1(repo.GetIntegration(ctx, integration.ID)).NoError(t)
	gt.V(t, got.TotalRuns).Equal(4)
	gt.V(t, got.SuccessRate).Equal(75.0)

	_, err := repo.GetIntegration(ctx, types.IntegrationID(uuid.NewString()))
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	err = repo.IncrementTotalRuns(ctx, types.IntegrationID(uuid.NewString()))
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestRunCounterConcurrent tests that parallel counter increments are not
// lost to a read-modify-write race
func TestRunCounterConcurrent(t *testing.T, repo interfaces.JobRepository) {
	ctx := context.Background()

	integration := newTestIntegration()
	gt.NoError(t, repo.CreateIntegration(ctx, integration))

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_ = repo.IncrementTotalRuns(ctx, integration.ID)
		}()
	}
	close(start)
	wg.Wait()

	got := gt.R1(repo.GetIntegration(ctx, integration.ID)).NoError(t)
	gt.V(t, got.TotalRuns).Equal(workers)
}

// TestRunCRUD tests create/get/update for integration runs
func TestRunCRUD(t *testing.T, repo interfaces.JobRepository) {
	ctx := context.Background()

	integration := newTestIntegration()
	gt.NoError(t, repo.CreateIntegration(ctx, integration))

	run := newTestRun(integration.ID)
	gt.NoError(t, repo.CreateRun(ctx, run))

	got := gt.R1(repo.GetRun(ctx, run.ID)).NoError(t)
	gt.V(t, got.Status).Equal(types.RunStatusPending)
	gt.V(t, got.CompletedAt).Equal(nil)

	status := types.RunStatusSuccess
	completedAt := time.Now()
	durationMs := int64(1234)
	filesAnalyzed := 2
	issuesFound := 3
	qualityScore := 88
	gt.NoError(t, repo.UpdateRun(ctx, run.ID, &model.IntegrationRunUpdate{
		Status:        &status,
		CompletedAt:   &completedAt,
		DurationMs:    &durationMs,
		FilesAnalyzed: &filesAnalyzed,
		IssuesFound:   &issuesFound,
		QualityScore:  &qualityScore,
	}))

	got = gt.R1(repo.GetRun(ctx, run.ID)).NoError(t)
	gt.V(t, got.Status).Equal(types.RunStatusSuccess)
	gt.V(t, got.DurationMs).Equal(int64(1234))
	gt.V(t, got.QualityScore).Equal(88)
	gt.True(t, got.CompletedAt != nil)
}

// TestRunLogAppend tests the append-only audit trail
func TestRunLogAppend(t *testing.T, repo interfaces.JobRepository) {
	ctx := context.Background()

	integration := newTestIntegration()
	gt.NoError(t, repo.CreateIntegration(ctx, integration))

	run := newTestRun(integration.ID)
	gt.NoError(t, repo.CreateRun(ctx, run))

	gt.NoError(t, repo.AppendRunLog(ctx, run.ID, "[2026-01-01T00:00:00Z] webhook received"))
	gt.NoError(t, repo.AppendRunLog(ctx, run.ID, "[2026-01-01T00:00:01Z] analyzing 2 files"))

	got := gt.R1(repo.GetRun(ctx, run.ID)).NoError(t)
	gt.A(t, got.LogLines).Length(2)
	gt.V(t, got.LogLines[0]).Equal("[2026-01-01T00:00:00Z] webhook received")

	// Two identical files within the same second produce identical lines;
	// both must be kept
	line := "[2026-01-01T00:00:02Z] util.py: 0 issues"
	gt.NoError(t, repo.AppendRunLog(ctx, run.ID, line))
	gt.NoError(t, repo.AppendRunLog(ctx, run.ID, line))

	got = gt.R1(repo.GetRun(ctx, run.ID)).NoError(t)
	gt.A(t, got.LogLines).Length(4)
	gt.V(t, got.LogLines[2]).Equal(line)
	gt.V(t, got.LogLines[3]).Equal(line)

	// Same for run file results carrying no distinguishing timing fields
	dup := &model.FileResult{Path: "util.py", Success: true}
	gt.NoError(t, repo.AppendRunFileResult(ctx, run.ID, dup))
	gt.NoError(t, repo.AppendRunFileResult(ctx, run.ID, dup))

	got = gt.R1(repo.GetRun(ctx, run.ID)).NoError(t)
	gt.A(t, got.FileResults).Length(2)
}

// TestListRuns tests listing runs scoped by integration
func TestListRuns(t *testing.T, repo interfaces.JobRepository) {
	ctx := context.Background()

	integration := newTestIntegration()
	other := newTestIntegration()
	gt.NoError(t, repo.CreateIntegration(ctx, integration))
	gt.NoError(t, repo.CreateIntegration(ctx, other))

	for i := 0; i < 3; i++ {
		gt.NoError(t, repo.CreateRun(ctx, newTestRun(integration.ID)))
	}
	gt.NoError(t, repo.CreateRun(ctx, newTestRun(other.ID)))

	runs := gt.R1(repo.ListRuns(ctx, integration.ID)).NoError(t)
	gt.A(t, runs).Length(3)
	for _, run := range runs {
		gt.V(t, run.IntegrationID).Equal(integration.ID)
	}
}
