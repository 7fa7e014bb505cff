package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/legacylift/legacylift/pkg/utils/errutil"
	"github.com/legacylift/legacylift/pkg/utils/logging"
	"github.com/legacylift/legacylift/pkg/utils/telemetry"
)

// AcceptWebhook applies the event and branch filters and, when the payload
// is actionable, persists a pending run and bumps the integration's run
// counter. Filtered-out events are accepted as "nothing to do", not errors:
// the returned accept carries no run ID. Signature verification happens at
// the HTTP layer before this point, since it needs the raw request body.
func (x *UseCase) AcceptWebhook(ctx context.Context, integrationID types.IntegrationID, payload *model.WebhookPayload) (*model.WebhookAccept, error) {
	integration, err := x.clients.JobRepository().GetIntegration(ctx, integrationID)
	if err != nil {
		return nil, err
	}

	if !integration.Active {
		logging.From(ctx).Debug("integration is disabled, ignoring webhook",
			slog.String("integration_id", integrationID.String()),
		)
		return &model.WebhookAccept{Success: true, Message: "integration is disabled"}, nil
	}

	if !integration.AcceptsEvent(payload.Event) {
		logging.From(ctx).Debug("webhook event not configured, ignoring",
			slog.String("integration_id", integrationID.String()),
			slog.String("event", payload.Event),
		)
		return &model.WebhookAccept{Success: true, Message: fmt.Sprintf("event %q not configured", payload.Event)}, nil
	}

	if payload.Repository.Branch != integration.Branch {
		logging.From(ctx).Debug("webhook branch does not match, ignoring",
			slog.String("integration_id", integrationID.String()),
			slog.String("branch", payload.Repository.Branch),
		)
		return &model.WebhookAccept{Success: true, Message: fmt.Sprintf("branch %q not watched", payload.Repository.Branch)}, nil
	}

	now := logging.CtxTime(ctx)
	run := &model.IntegrationRun{
		ID:            types.NewRunID(),
		IntegrationID: integration.ID,
		CommitSHA:     payload.Commit.ID,
		Branch:        payload.Repository.Branch,
		Author:        payload.Commit.Author,
		Status:        types.RunStatusPending,
		StartedAt:     now,
		LogLines: []string{
			logLine(now, fmt.Sprintf("webhook %q received for commit %s", payload.Event, payload.Commit.ID)),
		},
	}
	if payload.PullRequest != nil {
		run.PullRequestURL = payload.PullRequest.URL
	}

	if err := x.clients.JobRepository().CreateRun(ctx, run); err != nil {
		return nil, err
	}

	// Accepts for one integration can race; the counter moves in the store.
	if err := x.clients.JobRepository().IncrementTotalRuns(ctx, integration.ID); err != nil {
		errutil.HandleError(ctx, "failed to bump integration run counter", err)
	}

	return &model.WebhookAccept{
		Success: true,
		RunID:   run.ID,
		Message: "analysis run accepted",
	}, nil
}

// ExecuteRun processes an accepted webhook run to a terminal state. Files
// arrive inline in the payload; a per-file analyzer error is logged and
// recorded but never aborts the run.
func (x *UseCase) ExecuteRun(ctx context.Context, runID types.RunID, payload *model.WebhookPayload) error {
	repo := x.clients.JobRepository()

	run, err := repo.GetRun(ctx, runID)
	if err != nil {
		return err
	}
	integration, err := repo.GetIntegration(ctx, run.IntegrationID)
	if err != nil {
		return err
	}

	running := types.RunStatusRunning
	if err := repo.UpdateRun(ctx, runID, &model.IntegrationRunUpdate{Status: &running}); err != nil {
		return err
	}

	files := x.filterWebhookFiles(payload.Files)
	x.appendRunLog(ctx, runID, fmt.Sprintf("analyzing %d files", len(files)))

	var issuesFound int
	var confidences []float64

	for _, file := range files {
		outcome, err := x.clients.Analyzer().Analyze(ctx, []byte(file.Content), file.Filename, &model.AnalyzeOptions{
			Language: x.policy.LanguageOf(file.Filename),
		})
		telemetry.FilesAnalyzed.Inc()
		if err != nil {
			x.appendRunLog(ctx, runID, fmt.Sprintf("analysis of %s failed: %v", file.Filename, err))
			if appendErr := repo.AppendRunFileResult(ctx, runID, &model.FileResult{
				Path:         file.Filename,
				Success:      false,
				ErrorMessage: err.Error(),
			}); appendErr != nil {
				errutil.HandleError(ctx, "failed to record run file result", appendErr)
			}
			continue
		}

		issuesFound += len(outcome.Issues)
		confidences = append(confidences, outcome.Confidence)
		x.appendRunLog(ctx, runID, fmt.Sprintf("%s: %d issues", file.Filename, len(outcome.Issues)))

		if err := repo.AppendRunFileResult(ctx, runID, &model.FileResult{
			Path:    file.Filename,
			Success: true,
			Issues:  outcome.Issues,
		}); err != nil {
			errutil.HandleError(ctx, "failed to record run file result", err)
		}
	}

	qualityScore := 100
	if len(confidences) > 0 {
		var sum float64
		for _, c := range confidences {
			sum += c
		}
		qualityScore = int(math.Round(sum / float64(len(confidences)) * 100))
	} else if len(files) > 0 {
		// Every analysis failed; nothing to base a score on.
		qualityScore = 0
	}

	status := types.RunStatusSuccess
	if integration.FailOnIssues && issuesFound > integration.MaxIssues {
		status = types.RunStatusFailed
	}

	now := logging.CtxTime(ctx)
	durationMs := now.Sub(run.StartedAt).Milliseconds()
	filesAnalyzed := len(files)
	if err := repo.UpdateRun(ctx, runID, &model.IntegrationRunUpdate{
		Status:        &status,
		CompletedAt:   &now,
		DurationMs:    &durationMs,
		FilesAnalyzed: &filesAnalyzed,
		IssuesFound:   &issuesFound,
		QualityScore:  &qualityScore,
	}); err != nil {
		return err
	}
	x.appendRunLog(ctx, runID, fmt.Sprintf("run finished with status %s (%d issues, quality %d%%)", status, issuesFound, qualityScore))
	telemetry.WebhookRuns.WithLabelValues(string(status)).Inc()

	// Post-processing is best-effort: neither a success-rate write nor a
	// notification failure ever changes the run's recorded outcome.
	if err := x.updateSuccessRate(ctx, integration.ID); err != nil {
		errutil.HandleError(ctx, "failed to update integration success rate", err)
	}

	if notifier := x.clients.Notifier(); notifier != nil {
		if finished, err := repo.GetRun(ctx, runID); err == nil {
			notifier.Notify(ctx, integration, finished)
		} else {
			errutil.HandleError(ctx, "failed to load run for notification", err)
		}
	}

	return nil
}

func (x *UseCase) GetRun(ctx context.Context, id types.RunID) (*model.IntegrationRun, error) {
	return x.clients.JobRepository().GetRun(ctx, id)
}

func (x *UseCase) GetIntegration(ctx context.Context, id types.IntegrationID) (*model.Integration, error) {
	return x.clients.JobRepository().GetIntegration(ctx, id)
}

// filterWebhookFiles keeps non-removed files with a recognized source-code
// extension.
func (x *UseCase) filterWebhookFiles(files []model.WebhookFile) []model.WebhookFile {
	var filtered []model.WebhookFile
	for _, f := range files {
		if f.Status == "removed" {
			continue
		}
		if x.policy.LanguageOf(f.Filename) == "" {
			continue
		}
		filtered = append(filtered, f)
	}
	return filtered
}

// updateSuccessRate recomputes the integration's rolling success rate over
// all of its terminal runs. Two runs finishing at once can interleave the
// list and the write; the value written last is still a full recomputation
// over every terminal run it saw, and the next terminal run converges it.
func (x *UseCase) updateSuccessRate(ctx context.Context, integrationID types.IntegrationID) error {
	runs, err := x.clients.JobRepository().ListRuns(ctx, integrationID)
	if err != nil {
		return err
	}

	var completed, successful int
	for _, r := range runs {
		if !r.Status.Terminal() {
			continue
		}
		completed++
		if r.Status == types.RunStatusSuccess {
			successful++
		}
	}
	if completed == 0 {
		return nil
	}

	rate := float64(successful) / float64(completed) * 100
	return x.clients.JobRepository().UpdateIntegration(ctx, integrationID, &model.IntegrationUpdate{
		SuccessRate: &rate,
	})
}

func (x *UseCase) appendRunLog(ctx context.Context, runID types.RunID, msg string) {
	line := logLine(logging.CtxTime(ctx), msg)
	if err := x.clients.JobRepository().AppendRunLog(ctx, runID, line); err != nil {
		errutil.HandleError(ctx, "failed to append run log", err)
	}
}

func logLine(t time.Time, msg string) string {
	return fmt.Sprintf("[%s] %s", t.UTC().Format(time.RFC3339), msg)
}
