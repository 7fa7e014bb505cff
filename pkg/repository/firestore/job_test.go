package firestore_test

import (
	"context"
	"os"
	"testing"

	"github.com/legacylift/legacylift/pkg/repository/firestore"
	"github.com/legacylift/legacylift/pkg/repository/testhelper"
	"github.com/legacylift/legacylift/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestFirestoreJobRepository(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_PROJECT_ID")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	repo := gt.R1(firestore.New(ctx, projectID, databaseID)).NoError(t)

	testhelper.TestAll(t, repo)
}
