package bq_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/infra/bq"
	"github.com/legacylift/legacylift/pkg/utils/testutil"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
)

func TestInsertScanExport(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")
	tableID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_TABLE_ID")

	ctx := context.Background()
	client := gt.R1(bq.New(ctx, projectID, datasetID, tableID)).NoError(t)

	record := &model.ScanExportRecord{
		JobID:         "test-job",
		OwnerID:       "test-owner",
		RepositoryRef: "acme/legacy-app",
		Branch:        "main",
		Summary: model.ScanSummary{
			TotalFiles:    2,
			AnalyzedFiles: 2,
			TotalIssues:   1,
		},
		Timestamp: time.Now().UnixMicro(),
	}

	schema := gt.R1(bqs.Infer(record)).NoError(t)

	md := gt.R1(client.GetMetadata(ctx)).NoError(t)
	if md == nil {
		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{Schema: schema}))
	}

	gt.NoError(t, client.Insert(ctx, schema, record))
}
