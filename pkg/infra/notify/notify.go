package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/legacylift/legacylift/pkg/domain/interfaces"
	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/legacylift/legacylift/pkg/utils/logging"
	"github.com/legacylift/legacylift/pkg/utils/safe"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client posts run results to chat webhooks. Delivery is at-most-once and
// best-effort: the run's outcome is already durably recorded, so a failed
// channel is logged and skipped, and one channel's failure does not block
// another.
type Client struct {
	httpClient HTTPClient
}

var _ interfaces.Notifier = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(c HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = c
	}
}

func New(options ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func (x *Client) Notify(ctx context.Context, integration *model.Integration, run *model.IntegrationRun) {
	for _, ch := range integration.Channels {
		var payload any
		switch ch.Type {
		case "teams":
			payload = buildTeamsCard(integration, run)
		default:
			payload = buildSlackMessage(integration, run)
		}

		if err := x.post(ctx, ch.WebhookURL, payload); err != nil {
			logging.From(ctx).Warn("failed to deliver notification",
				slog.String("channel_type", ch.Type),
				slog.String("run_id", run.ID.String()),
				slog.Any("error", err),
			)
		}
	}
}

func (x *Client) post(ctx context.Context, webhookURL string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer safe.Close(resp.Body)
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
	}

	return nil
}

func commitPrefix(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}

func statusColor(status types.RunStatus) string {
	if status == types.RunStatusSuccess {
		return "#36a64f"
	}
	return "#d00000"
}

type slackMessage struct {
	Text        string            `json:"text"`
	Attachments []slackAttachment `json:"attachments"`
}

type slackAttachment struct {
	Color  string       `json:"color"`
	Fields []slackField `json:"fields"`
}

type slackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

func buildSlackMessage(integration *model.Integration, run *model.IntegrationRun) *slackMessage {
	return &slackMessage{
		Text: fmt.Sprintf("Analysis run %s for %s", run.Status, integration.RepositoryRef),
		Attachments: []slackAttachment{
			{
				Color: statusColor(run.Status),
				Fields: []slackField{
					{Title: "Repository", Value: integration.RepositoryRef, Short: true},
					{Title: "Branch", Value: run.Branch, Short: true},
					{Title: "Commit", Value: commitPrefix(run.CommitSHA), Short: true},
					{Title: "Files", Value: fmt.Sprintf("%d", run.FilesAnalyzed), Short: true},
					{Title: "Issues", Value: fmt.Sprintf("%d", run.IssuesFound), Short: true},
					{Title: "Quality", Value: fmt.Sprintf("%d%%", run.QualityScore), Short: true},
				},
			},
		},
	}
}

type teamsCard struct {
	Type       string         `json:"@type"`
	Context    string         `json:"@context"`
	ThemeColor string         `json:"themeColor"`
	Summary    string         `json:"summary"`
	Sections   []teamsSection `json:"sections"`
}

type teamsSection struct {
	ActivityTitle string      `json:"activityTitle"`
	Facts         []teamsFact `json:"facts"`
}

type teamsFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func buildTeamsCard(integration *model.Integration, run *model.IntegrationRun) *teamsCard {
	return &teamsCard{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		ThemeColor: statusColor(run.Status),
		Summary:    fmt.Sprintf("Analysis run %s", run.Status),
		Sections: []teamsSection{
			{
				ActivityTitle: fmt.Sprintf("Analysis run %s for %s", run.Status, integration.RepositoryRef),
				Facts: []teamsFact{
					{Name: "Repository", Value: integration.RepositoryRef},
					{Name: "Branch", Value: run.Branch},
					{Name: "Commit", Value: commitPrefix(run.CommitSHA)},
					{Name: "Files", Value: fmt.Sprintf("%d", run.FilesAnalyzed)},
					{Name: "Issues", Value: fmt.Sprintf("%d", run.IssuesFound)},
					{Name: "Quality", Value: fmt.Sprintf("%d%%", run.QualityScore)},
				},
			},
		},
	}
}
