package model

// WebhookPayload is the inbound CI/CD event body. Files are carried inline
// by the sender; there is no follow-up fetch for webhook runs.
type WebhookPayload struct {
	Event       string              `json:"event"`
	Repository  WebhookRepository   `json:"repository"`
	Commit      WebhookCommit       `json:"commit"`
	Files       []WebhookFile       `json:"files,omitempty"`
	PullRequest *WebhookPullRequest `json:"pullRequest,omitempty"`
}

type WebhookRepository struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Branch string `json:"branch"`
}

type WebhookCommit struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Author    string `json:"author"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
}

type WebhookFile struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Status   string `json:"status"` // "added", "modified", "removed"
}

type WebhookPullRequest struct {
	URL string `json:"url"`
}
