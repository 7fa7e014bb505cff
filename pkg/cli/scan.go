package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/legacylift/legacylift/pkg/cli/config"
	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/usecase"
	"github.com/legacylift/legacylift/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// scanCommand runs one scan synchronously and prints the finished job as
// JSON. Useful for CI pipelines and local debugging without the server.
func scanCommand() *cli.Command {
	var (
		input model.StartScanInput

		github    config.GitHub
		analyzer  config.Analyzer
		firestore config.Firestore
		bigQuery  config.BigQuery
	)

	return &cli.Command{
		Name:    "scan",
		Aliases: []string{"sc"},
		Usage:   "Scan one repository and print the result",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "owner-id",
				Usage:       "Owning account of the scan",
				Sources:     cli.EnvVars("LEGACYLIFT_OWNER_ID"),
				Destination: &input.OwnerID,
			},
			&cli.StringFlag{
				Name:        "repo",
				Aliases:     []string{"r"},
				Usage:       "Repository reference (owner/name)",
				Required:    true,
				Destination: &input.RepositoryRef,
			},
			&cli.StringFlag{
				Name:        "branch",
				Aliases:     []string{"b"},
				Usage:       "Branch to scan",
				Value:       "main",
				Destination: &input.Branch,
			},
		},
			github.Flags(),
			analyzer.Flags(),
			firestore.Flags(),
			bigQuery.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			clients, err := buildClients(ctx, &github, &analyzer, &firestore, &bigQuery)
			if err != nil {
				return err
			}

			uc := usecase.New(clients)

			out, err := uc.StartScan(ctx, &input)
			if err != nil {
				return err
			}
			logging.From(ctx).Info("scan job created",
				slog.String("job_id", out.Job.ID.String()),
				slog.Int("files", len(out.Files)),
			)

			if err := uc.ExecuteScan(ctx, out.Job.ID, out.Files); err != nil {
				return err
			}

			job, err := uc.GetScanJob(ctx, out.Job.ID)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(job); err != nil {
				return goerr.Wrap(err, "failed to print scan result")
			}

			return nil
		},
	}
}
