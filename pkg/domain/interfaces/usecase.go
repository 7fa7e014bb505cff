package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/domain/types"
)

type UseCase interface {
	DiscoverFiles(ctx context.Context, repoRef, branch string) ([]*model.FileDescriptor, error)
	StartScan(ctx context.Context, input *model.StartScanInput) (*model.StartScanOutput, error)
	ExecuteScan(ctx context.Context, jobID types.ScanJobID, files []*model.FileDescriptor) error
	GetScanJob(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error)

	AcceptWebhook(ctx context.Context, integrationID types.IntegrationID, payload *model.WebhookPayload) (*model.WebhookAccept, error)
	ExecuteRun(ctx context.Context, runID types.RunID, payload *model.WebhookPayload) error
	GetRun(ctx context.Context, id types.RunID) (*model.IntegrationRun, error)
	GetIntegration(ctx context.Context, id types.IntegrationID) (*model.Integration, error)
}
