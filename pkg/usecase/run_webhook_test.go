package usecase_test

import (
	"context"
	"sync"
	"testing"

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

func testIntegration() *model.Integration {
	return &model.Integration{
		ID:            types.IntegrationID("itg-1"),
		OwnerID:       "owner-1",
		Name:          "legacy-app CI",
		RepositoryRef: "acme/legacy-app",
		Branch:        "main",
		Events:        []string{"push"},
		FailOnIssues:  true,
		MaxIssues:     5,
		Active:        true,
	}
}

func pushPayload(files ...model.WebhookFile) *model.WebhookPayload {
	payload := &model.WebhookPayload{
		Event: "push",
		Files: files,
	}
	payload.Repository.Name = "acme/legacy-app"
	payload.Repository.Branch = "main"
	payload.Commit.ID = "deadbeefcafe0123"
	payload.Commit.Author = "dev@example.com"
	return payload
}

func issueAnalyzer(perFile int, confidence float64) *mock.AnalyzerMock {
	return &mock.AnalyzerMock{
		AnalyzeFunc: func(ctx context.Context, content []byte, path string, opts *model.AnalyzeOptions) (*model.AnalysisOutcome, error) {
			issues := make([]model.Issue, perFile)
			for i := range issues {
				issues[i] = model.Issue{RuleID: "modern-001", Severity: model.SeverityMedium, Message: "legacy construct"}
			}
			return &model.AnalysisOutcome{Issues: issues, Confidence: confidence}, nil
		},
	}
}

func newWebhookUseCase(repo interfaces.JobRepository, analyzer interfaces.Analyzer, opts ...infra.Option) *usecase.UseCase {
	base := []infra.Option{
		infra.WithJobRepository(repo),
		infra.WithAnalyzer(analyzer),
	}
	return usecase.New(infra.New(append(base, opts...)...))
}

func TestAcceptWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted push creates a pending run", func(t *testing.T) {
		memRepo := memory.New()
		integration := testIntegration()
		gt.NoError(t, memRepo.CreateIntegration(ctx, integration))
		uc := newWebhookUseCase(memRepo, issueAnalyzer(0, 1))

		accept := gt.R1(uc.AcceptWebhook(ctx, integration.ID, pushPayload())).NoError(t)
		gt.True(t, accept.Success)
		gt.True(t, accept.RunID != "")

		run := gt.R1(uc.GetRun(ctx, accept.RunID)).NoError(t)
		gt.V(t, run.Status).Equal(types.RunStatusPending)
		gt.V(t, run.CommitSHA).Equal("deadbeefcafe0123")
		gt.V(t, run.Branch).Equal("main")
		gt.A(t, run.LogLines).Longer(0)

		updated := gt.R1(uc.GetIntegration(ctx, integration.ID)).NoError(t)
		gt.V(t, updated.TotalRuns).Equal(1)
	})

	t.Run("concurrent accepts keep every counter increment", func(t *testing.T) {
		memRepo := memory.New()
		integration := testIntegration()
		gt.NoError(t, memRepo.CreateIntegration(ctx, integration))
		uc := newWebhookUseCase(memRepo, issueAnalyzer(0, 1))

		const accepts = 50
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < accepts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				accept := gt.R1(uc.AcceptWebhook(ctx, integration.ID, pushPayload())).NoError(t)
				gt.True(t, accept.RunID != "")
			}()
		}
		close(start)
		wg.Wait()

		runs := gt.R1(memRepo.ListRuns(ctx, integration.ID)).NoError(t)
		gt.A(t, runs).Length(accepts)

		updated := gt.R1(uc.GetIntegration(ctx, integration.ID)).NoError(t)
		gt.V(t, updated.TotalRuns).Equal(accepts)
	})

	t.Run("unconfigured event is filtered without a run", func(t *testing.T) {
		memRepo := memory.New()
		integration := testIntegration()
		gt.NoError(t, memRepo.CreateIntegration(ctx, integration))
		uc := newWebhookUseCase(memRepo, issueAnalyzer(0, 1))

		payload := pushPayload()
		payload.Event = "pull_request"

		accept := gt.R1(uc.AcceptWebhook(ctx, integration.ID, payload)).NoError(t)
		gt.V(t, accept.RunID).Equal(types.RunID(""))

		runs := gt.R1(memRepo.ListRuns(ctx, integration.ID)).NoError(t)
		gt.A(t, runs).Length(0)
	})

	t.Run("unwatched branch is filtered without a run", func(t *testing.T) {
		memRepo := memory.New()
		integration := testIntegration()
		gt.NoError(t, memRepo.CreateIntegration(ctx, integration))
		uc := newWebhookUseCase(memRepo, issueAnalyzer(0, 1))

		payload := pushPayload()
		payload.Repository.Branch = "develop"

		accept := gt.R1(uc.AcceptWebhook(ctx, integration.ID, payload)).NoError(t)
		gt.V(t, accept.RunID).Equal(types.RunID(""))
	})

	t.Run("disabled integration ignores the webhook", func(t *testing.T) {
		memRepo := memory.New()
		integration := testIntegration()
		integration.Active = false
		gt.NoError(t, memRepo.CreateIntegration(ctx, integration))
		uc := newWebhookUseCase(memRepo, issueAnalyzer(0, 1))

		accept := gt.R1(uc.AcceptWebhook(ctx, integration.ID, pushPayload())).NoError(t)
		gt.V(t, accept.RunID).Equal(types.RunID(""))
	})

	t.Run("unknown integration is an error", func(t *testing.T) {
		uc := newWebhookUseCase(memory.New(), issueAnalyzer(0, 1))

		_, err := uc.AcceptWebhook(ctx, types.IntegrationID("nope"), pushPayload())
		gt.Error(t, err)
	})
}

func TestExecuteRun(t *testing.T) {
	ctx := context.Background()

	acceptRun := func(t *testing.T, uc *usecase.UseCase, integrationID types.IntegrationID, payload *model.WebhookPayload) types.RunID {
		accept := gt.R1(uc.AcceptWebhook(ctx, integrationID, payload)).NoError(t)
		gt.True(t, accept.RunID != "")
		return accept.RunID
	}

	t.Run("run under the issue threshold succeeds", func(t *testing.T) {
		memRepo := memory.New()
		integration := testIntegration()
		gt.NoError(t, memRepo.CreateIntegration(ctx, integration))
		uc := newWebhookUseCase(memRepo, issueAnalyzer(2, 0.9))

		payload := pushPayload(
			model.WebhookFile{Filename: "app.py", Content: "print('x')", Status: "modified"},
			model.WebhookFile{Filename: "util.py", Content: "x = 1", Status: "added"},
		)
		runID := acceptRun(t, uc, integration.ID, payload)
		gt.NoError(t, uc.ExecuteRun(ctx, runID, payload))

		run := gt.R1(uc.GetRun(ctx, runID)).NoError(t)
		gt.V(t, run.Status).Equal(types.RunStatusSuccess)
		gt.V(t, run.FilesAnalyzed).Equal(2)
		gt.V(t, run.IssuesFound).Equal(4)
		gt.V(t, run.QualityScore).Equal(90)
		gt.True(t, run.CompletedAt != nil)
		gt.True(t, run.DurationMs >= 0)
		gt.A(t, run.FileResults).Length(2)

		updated := gt.R1(uc.GetIntegration(ctx, integration.ID)).NoError(t)
		gt.V(t, updated.SuccessRate).Equal(100.0)
	})

	t.Run("run over the issue threshold fails", func(t *testing.T) {
		memRepo := memory.New()
		integration := testIntegration()
		gt.NoError(t, memRepo.CreateIntegration(ctx, integration))
		uc := newWebhookUseCase(memRepo, issueAnalyzer(3, 0.8))

		payload := pushPayload(
			model.WebhookFile{Filename: "app.py", Content: "print('x')", Status: "modified"},
			model.WebhookFile{Filename: "util.py", Content: "x = 1", Status: "added"},
		)
		runID := acceptRun(t, uc, integration.ID, payload)
		gt.NoError(t, uc.ExecuteRun(ctx, runID, payload))

		run := gt.R1(uc.GetRun(ctx, runID)).NoError(t)
		gt.V(t, run.Status).Equal(types.RunStatusFailed)
		gt.V(t, run.IssuesFound).Equal(6)
	})

	t.Run("removed and non-code files are skipped", func(t *testing.T) {
		memRepo := memory.New()
		integration := testIntegration()
		gt.NoError(t, memRepo.CreateIntegration(ctx, integration))

		analyzer := issueAnalyzer(1, 0.5)
		uc := newWebhookUseCase(memRepo, analyzer)

		payload := pushPayload(
			model.WebhookFile{Filename: "gone.py", Content: "", Status: "removed"},
			model.WebhookFile{Filename: "README.md", Content: "# hi", Status: "modified"},
			model.WebhookFile{Filename: "app.py", Content: "x", Status: "modified"},
		)
		runID := acceptRun(t, uc, integration.ID, payload)
		gt.NoError(t, uc.ExecuteRun(ctx, runID, payload))

		gt.A(t, analyzer.AnalyzeCalls()).Length(1)
		run := gt.R1(uc.GetRun(ctx, runID)).NoError(t)
		gt.V(t, run.FilesAnalyzed).Equal(1)
	})

	t.Run("push with no analyzable files succeeds at full quality", func(t *testing.T) {
		memRepo := memory.New()
		integration := testIntegration()
		gt.NoError(t, memRepo.CreateIntegration(ctx, integration))
		uc := newWebhookUseCase(memRepo, issueAnalyzer(0, 1))

		payload := pushPayload(
			model.WebhookFile{Filename: "docs/guide.md", Content: "# hi", Status: "modified"},
		)
		runID := acceptRun(t, uc, integration.ID, payload)
		gt.NoError(t, uc.ExecuteRun(ctx, runID, payload))

		run := gt.R1(uc.GetRun(ctx, runID)).NoError(t)
		gt.V(t, run.Status).Equal(types.RunStatusSuccess)
		gt.V(t, run.FilesAnalyzed).Equal(0)
		gt.V(t, run.QualityScore).Equal(100)
	})

	t.Run("per-file analyzer failure is recorded, run still finishes", func(t *testing.T) {
		memRepo := memory.New()
		integration := testIntegration()
		gt.NoError(t, memRepo.CreateIntegration(ctx, integration))

		analyzer := &mock.AnalyzerMock{
			AnalyzeFunc: func(ctx context.Context, content []byte, path string, opts *model.AnalyzeOptions) (*model.AnalysisOutcome, error) {
				if path == "bad.py" {
					return nil, goerr.New("parse failure")
				}
				return &model.AnalysisOutcome{Confidence: 1}, nil
			},
		}
		uc := newWebhookUseCase(memRepo, analyzer)

		payload := pushPayload(
			model.WebhookFile{Filename: "bad.py", Content: "(", Status: "modified"},
			model.WebhookFile{Filename: "good.py", Content: "x", Status: "modified"},
		)
		runID := acceptRun(t, uc, integration.ID, payload)
		gt.NoError(t, uc.ExecuteRun(ctx, runID, payload))

		run := gt.R1(uc.GetRun(ctx, runID)).NoError(t)
		gt.V(t, run.Status).Equal(types.RunStatusSuccess)
		gt.A(t, run.FileResults).Length(2)

		var failed int
		for _, r := range run.FileResults {
			if !r.Success {
				failed++
				gt.V(t, r.Path).Equal("bad.py")
			}
		}
		gt.V(t, failed).Equal(1)
	})

	t.Run("success rate rolls over terminal runs", func(t *testing.T) {
		memRepo := memory.New()
		integration := testIntegration()
		gt.NoError(t, memRepo.CreateIntegration(ctx, integration))

		passing := pushPayload(model.WebhookFile{Filename: "a.py", Content: "x", Status: "modified"})
		failing := pushPayload(model.WebhookFile{Filename: "a.py", Content: "x", Status: "modified"})

		passUC := newWebhookUseCase(memRepo, issueAnalyzer(0, 1))
		runID := acceptRun(t, passUC, integration.ID, passing)
		gt.NoError(t, passUC.ExecuteRun(ctx, runID, passing))

		failUC := newWebhookUseCase(memRepo, issueAnalyzer(6, 0.5))
		runID = acceptRun(t, failUC, integration.ID, failing)
		gt.NoError(t, failUC.ExecuteRun(ctx, runID, failing))

		updated := gt.R1(memRepo.GetIntegration(ctx, integration.ID)).NoError(t)
		gt.V(t, updated.SuccessRate).Equal(50.0)
		gt.V(t, updated.TotalRuns).Equal(2)
	})

	t.Run("finished run is handed to the notifier", func(t *testing.T) {
		memRepo := memory.New()
		integration := testIntegration()
		integration.Channels = []model.NotifyChannel{{Type: "slack", WebhookURL: "https://hooks.example.com/x"}}
		gt.NoError(t, memRepo.CreateIntegration(ctx, integration))

		notifier := &mock.NotifierMock{
			NotifyFunc: func(ctx context.Context, integration *model.Integration, run *model.IntegrationRun) {},
		}
		uc := newWebhookUseCase(memRepo, issueAnalyzer(1, 0.7), infra.WithNotifier(notifier))

		payload := pushPayload(model.WebhookFile{Filename: "a.py", Content: "x", Status: "modified"})
		runID := acceptRun(t, uc, integration.ID, payload)
		gt.NoError(t, uc.ExecuteRun(ctx, runID, payload))

		calls := notifier.NotifyCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Run.ID).Equal(runID)
		gt.V(t, calls[0].Run.Status).Equal(types.RunStatusSuccess)
	})
}
