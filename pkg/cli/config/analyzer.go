package config

import (
	"log/slog"

	"github.com/legacylift/legacylift/pkg/infra/analyzer"
	"github.com/urfave/cli/v3"
)

type Analyzer struct {
	endpoint string
}

func (x *Analyzer) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "analyzer-url",
			Usage:       "Endpoint of the code analysis service",
			Category:    "Analyzer",
			Sources:     cli.EnvVars("LEGACYLIFT_ANALYZER_URL"),
			Destination: &x.endpoint,
		},
	}
}

func (x *Analyzer) New() (*analyzer.Client, error) {
	return analyzer.New(x.endpoint)
}

func (x *Analyzer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("endpoint", x.endpoint),
	)
}
