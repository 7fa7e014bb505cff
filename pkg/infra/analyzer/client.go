package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/legacylift/legacylift/pkg/domain/interfaces"
	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Client calls the remote modernization-analysis service over HTTP. One
// request analyzes one file.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

var _ interfaces.Analyzer = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient replaces the HTTP client, mainly for testing.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

func New(endpoint string, options ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "analyzer endpoint is empty")
	}

	client := &Client{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

type analyzeRequest struct {
	Path        string `json:"path"`
	Content     string `json:"content"`
	Language    string `json:"language,omitempty"`
	TargetLevel string `json:"target_level,omitempty"`
}

func (x *Client) Analyze(ctx context.Context, content []byte, path string, opts *model.AnalyzeOptions) (*model.AnalysisOutcome, error) {
	reqBody := &analyzeRequest{
		Path:    path,
		Content: string(content),
	}
	if opts != nil {
		reqBody.Language = opts.Language
		reqBody.TargetLevel = opts.TargetLevel
	}

	raw, err := json.Marshal(reqBody)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal analyze request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.endpoint, bytes.NewReader(raw))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build analyze request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call analyzer", goerr.V("path", path))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read analyzer response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("analyzer returned non-OK status",
			goerr.V("status", resp.StatusCode),
			goerr.V("path", path),
			goerr.V("body", string(body)),
		)
	}

	var outcome model.AnalysisOutcome
	if err := json.Unmarshal(body, &outcome); err != nil {
		return nil, goerr.Wrap(err, "failed to decode analyzer response")
	}

	return &outcome, nil
}
