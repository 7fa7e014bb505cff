package usecase

import (
	"math"

	"github.com/legacylift/legacylift/pkg/domain/model"
)

var severityWeights = map[string]int{
	model.SeverityCritical: 10,
	model.SeverityHigh:     5,
	model.SeverityMedium:   2,
	model.SeverityLow:      1,
}

var severityFixMinutes = map[string]int{
	model.SeverityCritical: 60,
	model.SeverityHigh:     30,
	model.SeverityMedium:   15,
	model.SeverityLow:      5,
}

// buildScanSummary aggregates per-file results into the job summary.
// AnalyzedFiles counts successful analyses only; failed files are reported
// separately.
func buildScanSummary(totalFiles int, results []model.FileResult) *model.ScanSummary {
	summary := &model.ScanSummary{
		TotalFiles:        totalFiles,
		SeverityBreakdown: map[string]int{},
	}

	var weight, fixMinutes int
	for _, r := range results {
		if !r.Success {
			summary.FailedFiles++
			continue
		}
		summary.AnalyzedFiles++

		for _, issue := range r.Issues {
			summary.TotalIssues++
			summary.SeverityBreakdown[issue.Severity]++
			weight += severityWeights[issue.Severity]
			fixMinutes += severityFixMinutes[issue.Severity]
		}
	}

	if summary.AnalyzedFiles > 0 {
		score := math.Round(float64(weight) / float64(summary.AnalyzedFiles) * 10)
		summary.DebtScore = int(math.Min(score, 100))
	}
	summary.EstimatedFixHours = math.Round(float64(fixMinutes)/60*10) / 10

	return summary
}
