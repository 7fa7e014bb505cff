package config

import (
	"log/slog"

	"github.com/legacylift/legacylift/pkg/domain/types"
	"github.com/legacylift/legacylift/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token           string
	baseURL         string
	budgetCapacity  int
	budgetPerSecond float64
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token",
			Category:    "GitHub",
			Sources:     cli.EnvVars("LEGACYLIFT_GITHUB_TOKEN"),
			Destination: &x.token,
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL (for GHES)",
			Category:    "GitHub",
			Sources:     cli.EnvVars("LEGACYLIFT_GITHUB_BASE_URL"),
			Destination: &x.baseURL,
		},
		&cli.IntFlag{
			Name:        "github-budget-capacity",
			Usage:       "Burst capacity of the API request budget",
			Category:    "GitHub",
			Value:       10,
			Sources:     cli.EnvVars("LEGACYLIFT_GITHUB_BUDGET_CAPACITY"),
			Destination: &x.budgetCapacity,
		},
		&cli.FloatFlag{
			Name:        "github-budget-per-second",
			Usage:       "Sustained API requests per second",
			Category:    "GitHub",
			Value:       2,
			Sources:     cli.EnvVars("LEGACYLIFT_GITHUB_BUDGET_PER_SECOND"),
			Destination: &x.budgetPerSecond,
		},
	}
}

func (x *GitHub) New() (*githubapi.Client, error) {
	options := []githubapi.Option{
		githubapi.WithBudget(githubapi.NewBudget(x.budgetCapacity, x.budgetPerSecond)),
	}
	if x.baseURL != "" {
		options = append(options, githubapi.WithBaseURL(x.baseURL))
	}

	return githubapi.New(types.GitHubToken(x.token), options...)
}

func (x *GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("token", types.GitHubToken(x.token)),
		slog.Any("baseURL", x.baseURL),
		slog.Int("budgetCapacity", x.budgetCapacity),
		slog.Float64("budgetPerSecond", x.budgetPerSecond),
	)
}
