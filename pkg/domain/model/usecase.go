package model

import (
	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// StartScanInput is the "start scan" action.
type StartScanInput struct {
	OwnerID       string `json:"owner_id"`
	RepositoryRef string `json:"repository_ref"`
	Branch        string `json:"branch"`
}

func (x *StartScanInput) Validate() error {
	if x.RepositoryRef == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository ref is empty")
	}
	if x.Branch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "branch is empty")
	}
	return nil
}

// StartScanOutput carries the created job and the discovered file list the
// detached execution phase consumes.
type StartScanOutput struct {
	Job   *ScanJob
	Files []*FileDescriptor
}

// WebhookAccept is the synchronous answer to a webhook POST. Success means
// the event was received and handled; a filtered-out event (wrong event
// type, branch, or a disabled integration) is still a success, it just
// carries no run ID and no run record exists.
type WebhookAccept struct {
	Success bool        `json:"success"`
	RunID   types.RunID `json:"runId,omitempty"`
	Message string      `json:"message"`
}
