package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/legacylift/legacylift/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionScanJob     = "scan_job"
	collectionIntegration = "integration"
	collectionRun         = "integration_run"
)

type jobRepository struct {
	client *firestore.Client
}

// Scan job operations

func (r *jobRepository) CreateScanJob(ctx context.Context, job *model.ScanJob) error {
	docRef := r.client.Collection(collectionScanJob).Doc(string(job.ID))

	if _, err := docRef.Create(ctx, job); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "scan job already exists",
				goerr.V("jobID", job.ID),
			)
		}
		return goerr.Wrap(err, "failed to create scan job",
			goerr.V("jobID", job.ID),
		)
	}

	return nil
}

func (r *jobRepository) GetScanJob(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error) {
	snap, err := r.client.Collection(collectionScanJob).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "scan job not found",
				goerr.V("jobID", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get scan job",
			goerr.V("jobID", id),
		)
	}

	var job model.ScanJob
	if err := snap.DataTo(&job); err != nil {
		return nil, goerr.Wrap(err, "failed to decode scan job",
			goerr.V("jobID", id),
		)
	}

	return &job, nil
}

func (r *jobRepository) UpdateScanJob(ctx context.Context, id types.ScanJobID, update *model.ScanJobUpdate) error {
	updates := []firestore.Update{
		{Path: "UpdatedAt", Value: time.Now()},
	}
	if update.Status != nil {
		updates = append(updates, firestore.Update{Path: "Status", Value: *update.Status})
	}
	if update.Progress != nil {
		updates = append(updates, firestore.Update{Path: "Progress", Value: *update.Progress})
	}
	if update.Summary != nil {
		updates = append(updates, firestore.Update{Path: "Summary", Value: *update.Summary})
	}
	if update.Error != nil {
		updates = append(updates, firestore.Update{Path: "Error", Value: *update.Error})
	}

	docRef := r.client.Collection(collectionScanJob).Doc(string(id))
	if _, err := docRef.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "scan job not found",
				goerr.V("jobID", id),
			)
		}
		return goerr.Wrap(err, "failed to update scan job",
			goerr.V("jobID", id),
		)
	}

	return nil
}

func (r *jobRepository) AppendFileResult(ctx context.Context, id types.ScanJobID, result *model.FileResult) error {
	// ArrayUnion would silently drop a result identical to a stored one, so
	// the append goes through a transaction to keep the history faithful.
	docRef := r.client.Collection(collectionScanJob).Doc(string(id))
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		if err != nil {
			return err
		}
		var job model.ScanJob
		if err := snap.DataTo(&job); err != nil {
			return err
		}
		return tx.Update(docRef, []firestore.Update{
			{Path: "FileResults", Value: append(job.FileResults, *result)},
			{Path: "UpdatedAt", Value: time.Now()},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "scan job not found",
				goerr.V("jobID", id),
			)
		}
		return goerr.Wrap(err, "failed to append file result",
			goerr.V("jobID", id),
		)
	}

	return nil
}

// Integration operations

func (r *jobRepository) CreateIntegration(ctx context.Context, integration *model.Integration) error {
	docRef := r.client.Collection(collectionIntegration).Doc(string(integration.ID))

	if _, err := docRef.Create(ctx, integration); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "integration already exists",
				goerr.V("integrationID", integration.ID),
			)
		}
		return goerr.Wrap(err, "failed to create integration",
			goerr.V("integrationID", integration.ID),
		)
	}

	return nil
}

func (r *jobRepository) GetIntegration(ctx context.Context, id types.IntegrationID) (*model.Integration, error) {
	snap, err := r.client.Collection(collectionIntegration).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "integration not found",
				goerr.V("integrationID", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get integration",
			goerr.V("integrationID", id),
		)
	}

	var integration model.Integration
	if err := snap.DataTo(&integration); err != nil {
		return nil, goerr.Wrap(err, "failed to decode integration",
			goerr.V("integrationID", id),
		)
	}

	return &integration, nil
}

func (r *jobRepository) UpdateIntegration(ctx context.Context, id types.IntegrationID, update *model.IntegrationUpdate) error {
	updates := []firestore.Update{
		{Path: "UpdatedAt", Value: time.Now()},
	}
	if update.SuccessRate != nil {
		updates = append(updates, firestore.Update{Path: "SuccessRate", Value: *update.SuccessRate})
	}

	docRef := r.client.Collection(collectionIntegration).Doc(string(id))
	if _, err := docRef.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "integration not found",
				goerr.V("integrationID", id),
			)
		}
		return goerr.Wrap(err, "failed to update integration",
			goerr.V("integrationID", id),
		)
	}

	return nil
}

func (r *jobRepository) IncrementTotalRuns(ctx context.Context, id types.IntegrationID) error {
	docRef := r.client.Collection(collectionIntegration).Doc(string(id))
	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "TotalRuns", Value: firestore.Increment(1)},
		{Path: "UpdatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "integration not found",
				goerr.V("integrationID", id),
			)
		}
		return goerr.Wrap(err, "failed to increment run counter",
			goerr.V("integrationID", id),
		)
	}

	return nil
}

// Integration run operations

func (r *jobRepository) CreateRun(ctx context.Context, run *model.IntegrationRun) error {
	docRef := r.client.Collection(collectionRun).Doc(string(run.ID))

	if _, err := docRef.Create(ctx, run); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "run already exists",
				goerr.V("runID", run.ID),
			)
		}
		return goerr.Wrap(err, "failed to create run",
			goerr.V("runID", run.ID),
		)
	}

	return nil
}

func (r *jobRepository) GetRun(ctx context.Context, id types.RunID) (*model.IntegrationRun, error) {
	snap, err := r.client.Collection(collectionRun).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "run not found",
				goerr.V("runID", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get run",
			goerr.V("runID", id),
		)
	}

	var run model.IntegrationRun
	if err := snap.DataTo(&run); err != nil {
		return nil, goerr.Wrap(err, "failed to decode run",
			goerr.V("runID", id),
		)
	}

	return &run, nil
}

func (r *jobRepository) UpdateRun(ctx context.Context, id types.RunID, update *model.IntegrationRunUpdate) error {
	var updates []firestore.Update
	if update.Status != nil {
		updates = append(updates, firestore.Update{Path: "Status", Value: *update.Status})
	}
	if update.CompletedAt != nil {
		updates = append(updates, firestore.Update{Path: "CompletedAt", Value: *update.CompletedAt})
	}
	if update.DurationMs != nil {
		updates = append(updates, firestore.Update{Path: "DurationMs", Value: *update.DurationMs})
	}
	if update.FilesAnalyzed != nil {
		updates = append(updates, firestore.Update{Path: "FilesAnalyzed", Value: *update.FilesAnalyzed})
	}
	if update.IssuesFound != nil {
		updates = append(updates, firestore.Update{Path: "IssuesFound", Value: *update.IssuesFound})
	}
	if update.QualityScore != nil {
		updates = append(updates, firestore.Update{Path: "QualityScore", Value: *update.QualityScore})
	}
	if len(updates) == 0 {
		return nil
	}

	docRef := r.client.Collection(collectionRun).Doc(string(id))
	if _, err := docRef.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "run not found",
				goerr.V("runID", id),
			)
		}
		return goerr.Wrap(err, "failed to update run",
			goerr.V("runID", id),
		)
	}

	return nil
}

func (r *jobRepository) AppendRunFileResult(ctx context.Context, id types.RunID, result *model.FileResult) error {
	docRef := r.client.Collection(collectionRun).Doc(string(id))
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		if err != nil {
			return err
		}
		var run model.IntegrationRun
		if err := snap.DataTo(&run); err != nil {
			return err
		}
		return tx.Update(docRef, []firestore.Update{
			{Path: "FileResults", Value: append(run.FileResults, *result)},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "run not found",
				goerr.V("runID", id),
			)
		}
		return goerr.Wrap(err, "failed to append run file result",
			goerr.V("runID", id),
		)
	}

	return nil
}

func (r *jobRepository) AppendRunLog(ctx context.Context, id types.RunID, line string) error {
	// Identical lines within one RFC3339 second are legitimate; ArrayUnion
	// would merge them.
	docRef := r.client.Collection(collectionRun).Doc(string(id))
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		if err != nil {
			return err
		}
		var run model.IntegrationRun
		if err := snap.DataTo(&run); err != nil {
			return err
		}
		return tx.Update(docRef, []firestore.Update{
			{Path: "LogLines", Value: append(run.LogLines, line)},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "run not found",
				goerr.V("runID", id),
			)
		}
		return goerr.Wrap(err, "failed to append run log",
			goerr.V("runID", id),
		)
	}

	return nil
}

func (r *jobRepository) ListRuns(ctx context.Context, integrationID types.IntegrationID) ([]*model.IntegrationRun, error) {
	query := r.client.Collection(collectionRun).Where("IntegrationID", "==", string(integrationID))

	iter := query.Documents(ctx)
	defer iter.Stop()

	var runs []*model.IntegrationRun
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate runs",
				goerr.V("integrationID", integrationID),
			)
		}

		var run model.IntegrationRun
		if err := snap.DataTo(&run); err != nil {
			return nil, goerr.Wrap(err, "failed to decode run",
				goerr.V("integrationID", integrationID),
			)
		}
		runs = append(runs, &run)
	}

	return runs, nil
}
