package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"

	"github.com/legacylift/legacylift/pkg/domain/interfaces"
	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/legacylift/legacylift/pkg/utils/logging"
)

// exportScanSummary appends a flattened row for the completed scan to the
// analytics table. Skipped entirely when no BigQuery client is configured.
func (x *UseCase) exportScanSummary(ctx context.Context, jobID types.ScanJobID, summary *model.ScanSummary) error {
	bq := x.clients.BigQuery()
	if bq == nil {
		return nil
	}

	job, err := x.clients.JobRepository().GetScanJob(ctx, jobID)
	if err != nil {
		return goerr.Wrap(err, "failed to load scan job for export")
	}

	record := &model.ScanExportRecord{
		JobID:         string(job.ID),
		OwnerID:       job.OwnerID,
		RepositoryRef: job.RepositoryRef,
		Branch:        job.Branch,
		Summary:       *summary,
		Timestamp:     logging.CtxTime(ctx).UnixMicro(),
	}

	schema, err := createOrUpdateExportTable(ctx, bq, record)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, record); err != nil {
		return goerr.Wrap(err, "failed to insert scan record to BigQuery")
	}

	return nil
}

// createOrUpdateExportTable ensures the analytics table exists and its schema
// covers the record, merging in new fields when the record shape grows.
func createOrUpdateExportTable(ctx context.Context, bq interfaces.BigQuery, record *model.ScanExportRecord) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer export schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
