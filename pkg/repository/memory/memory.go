package memory

import (
	"github.com/legacylift/legacylift/pkg/domain/interfaces"
	"github.com/legacylift/legacylift/pkg/domain/model"
)

// New creates a new in-memory repository
func New() interfaces.JobRepository {
	return &jobRepository{
		scanJobs:     make(map[string]*model.ScanJob),
		integrations: make(map[string]*model.Integration),
		runs:         make(map[string]*model.IntegrationRun),
	}
}
