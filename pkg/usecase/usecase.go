package usecase

import (
	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
	policy  *model.DiscoveryPolicy
}

type Option func(*UseCase)

// WithDiscoveryPolicy overrides the default file discovery bounds.
func WithDiscoveryPolicy(policy *model.DiscoveryPolicy) Option {
	return func(x *UseCase) {
		x.policy = policy
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
		policy:  model.DefaultDiscoveryPolicy(),
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
