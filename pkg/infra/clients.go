package infra

import (
	"github.com/legacylift/legacylift/pkg/domain/interfaces"
)

type Clients struct {
	codeHost      interfaces.CodeHost
	analyzer      interfaces.Analyzer
	notifier      interfaces.Notifier
	bqClient      interfaces.BigQuery
	jobRepository interfaces.JobRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) CodeHost() interfaces.CodeHost {
	return x.codeHost
}
func (x *Clients) Analyzer() interfaces.Analyzer {
	return x.analyzer
}
func (x *Clients) Notifier() interfaces.Notifier {
	return x.notifier
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) JobRepository() interfaces.JobRepository {
	return x.jobRepository
}

func WithCodeHost(client interfaces.CodeHost) Option {
	return func(x *Clients) {
		x.codeHost = client
	}
}

func WithAnalyzer(client interfaces.Analyzer) Option {
	return func(x *Clients) {
		x.analyzer = client
	}
}

func WithNotifier(client interfaces.Notifier) Option {
	return func(x *Clients) {
		x.notifier = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithJobRepository(repo interfaces.JobRepository) Option {
	return func(x *Clients) {
		x.jobRepository = repo
	}
}
