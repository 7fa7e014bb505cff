package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/legacylift/legacylift/pkg/domain/interfaces"
	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/legacylift/legacylift/pkg/utils/logging"
	"github.com/legacylift/legacylift/pkg/utils/telemetry"
	"github.com/m-mizutani/goerr/v2"
)

const (
	defaultBaseURL    = "https://api.github.com"
	userAgent         = "legacylift-analyzer"
	defaultMaxRetries = 3
	requestTimeout    = 30 * time.Second
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the single point through which all remote-API calls pass. It
// owns retry/backoff and rate-limit compliance; no other component calls
// the code host directly.
type Client struct {
	baseURL    string
	token      types.GitHubToken
	httpClient HTTPClient
	budget     *Budget
	maxRetries int

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

var _ interfaces.CodeHost = (*Client)(nil)

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithHTTPClient(c HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = c
	}
}

// WithBudget installs a shared token bucket acquired before every attempt.
func WithBudget(b *Budget) Option {
	return func(x *Client) {
		x.budget = b
	}
}

// WithClock replaces the wall clock and sleeper. Tests use this to verify
// the mandated rate-limit waits without real delays.
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(x *Client) {
		x.now = now
		x.sleep = sleep
	}
}

func New(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "github token is empty")
	}

	client := &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
		maxRetries: defaultMaxRetries,
		now:        time.Now,
		sleep: func(ctx context.Context, d time.Duration) error {
			t := time.NewTimer(d)
			defer t.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
				return nil
			}
		},
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// do issues one authenticated request with the full retry policy:
//   - primary rate limit (403 + zero remaining): wait until the reset
//     boundary, consume one retry
//   - secondary rate limit (429): wait Retry-After seconds, consume one retry
//   - other non-2xx: classified APIError, never retried
//   - transport failure: linear backoff, consume one retry
func (x *Client) do(ctx context.Context, method, rawURL string, accept string) ([]byte, *model.RateLimitInfo, error) {
	retriesLeft := x.maxRetries

	for {
		if x.budget != nil {
			if err := x.budget.Wait(ctx); err != nil {
				return nil, nil, goerr.Wrap(err, "request budget wait interrupted")
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to build request", goerr.V("url", rawURL))
		}
		req.Header.Set("Authorization", "Bearer "+string(x.token))
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", accept)

		resp, err := x.httpClient.Do(req)
		if err != nil {
			retriesLeft--
			if retriesLeft < 0 {
				return nil, nil, &APIError{Kind: KindTransport, Message: err.Error()}
			}
			wait := time.Duration(x.maxRetries-retriesLeft) * time.Second
			logging.From(ctx).Warn("transport failure, retrying",
				slog.String("url", rawURL),
				slog.Duration("wait", wait),
				slog.Int("retries_left", retriesLeft),
				slog.Any("error", err),
			)
			if err := x.sleep(ctx, wait); err != nil {
				return nil, nil, goerr.Wrap(err, "backoff interrupted")
			}
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			return nil, nil, goerr.Wrap(readErr, "failed to read response body", goerr.V("url", rawURL))
		}

		rateInfo := parseRateLimit(resp.Header)

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return body, rateInfo, nil
		}

		if wait, retryable := retryWait(resp, rateInfo, x.now()); retryable {
			retriesLeft--
			if retriesLeft < 0 {
				apiErr := classify(resp.StatusCode, resp.Status, body)
				apiErr.Kind = KindRateLimit
				return nil, rateInfo, apiErr
			}
			telemetry.RateLimitWaits.Inc()
			logging.From(ctx).Info("rate limited, waiting for reset",
				slog.String("url", rawURL),
				slog.Duration("wait", wait),
				slog.Int("retries_left", retriesLeft),
			)
			if err := x.sleep(ctx, wait); err != nil {
				return nil, rateInfo, goerr.Wrap(err, "rate limit wait interrupted")
			}
			continue
		}

		// Terminal client/server error. Not retried.
		return nil, rateInfo, classify(resp.StatusCode, resp.Status, body)
	}
}

// retryWait returns the mandated wait before retrying, and whether the
// response is a rate-limit condition at all.
func retryWait(resp *http.Response, info *model.RateLimitInfo, now time.Time) (time.Duration, bool) {
	if resp.StatusCode == http.StatusForbidden && info != nil && info.Remaining == 0 && info.ResetAtMs > 0 {
		wait := time.Duration(info.ResetAtMs-now.UnixMilli()) * time.Millisecond
		if wait < 0 {
			wait = 0
		}
		return wait, true
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		sec, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return time.Duration(sec) * time.Second, true
	}

	return 0, false
}

func parseRateLimit(h http.Header) *model.RateLimitInfo {
	info := &model.RateLimitInfo{}
	info.Limit, _ = strconv.Atoi(h.Get("X-RateLimit-Limit"))
	info.Remaining, _ = strconv.Atoi(h.Get("X-RateLimit-Remaining"))
	info.Used, _ = strconv.Atoi(h.Get("X-RateLimit-Used"))
	if sec, err := strconv.ParseInt(h.Get("X-RateLimit-Reset"), 10, 64); err == nil {
		info.ResetAtMs = sec * 1000
	}
	return info
}

// Request issues a JSON API call and decodes the response into out when out
// is not nil.
func (x *Client) Request(ctx context.Context, method, endpoint string, out any) (*model.RateLimitInfo, error) {
	body, info, err := x.do(ctx, method, x.baseURL+endpoint, "application/vnd.github+json")
	if err != nil {
		return info, err
	}

	if out != nil && len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return info, goerr.Wrap(err, "failed to decode API response", goerr.V("endpoint", endpoint))
		}
	}

	return info, nil
}

// ListDirectory lists one directory of the repository tree via the contents
// API. repoRef is "owner/name".
func (x *Client) ListDirectory(ctx context.Context, repoRef, ref, dirPath string) ([]*model.RepoEntry, *model.RateLimitInfo, error) {
	endpoint := fmt.Sprintf("/repos/%s/contents/%s?ref=%s", repoRef, escapePath(dirPath), url.QueryEscape(ref))

	var entries []*model.RepoEntry
	info, err := x.Request(ctx, http.MethodGet, endpoint, &entries)
	if err != nil {
		return nil, info, err
	}

	return entries, info, nil
}

// Download fetches raw file content by its download reference.
func (x *Client) Download(ctx context.Context, downloadRef string) ([]byte, error) {
	body, _, err := x.do(ctx, http.MethodGet, downloadRef, "application/octet-stream")
	return body, err
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
