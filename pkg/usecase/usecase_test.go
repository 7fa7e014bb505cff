package usecase_test

import (
	"testing"

	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/infra"
	"github.com/legacylift/legacylift/pkg/usecase"
)

func TestNew(t *testing.T) {
	t.Run("create new usecase with default policy", func(t *testing.T) {
		uc := usecase.New(infra.New())

		// compile-time reachability check; behavior is covered per method
		_ = uc.DiscoverFiles
		_ = uc.StartScan
		_ = uc.AcceptWebhook
	})

	t.Run("discovery policy can be overridden", func(t *testing.T) {
		policy := model.DefaultDiscoveryPolicy()
		policy.MaxDepth = 2
		_ = usecase.New(infra.New(), usecase.WithDiscoveryPolicy(policy))
	})
}
