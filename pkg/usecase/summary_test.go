package usecase_test

import (
	"testing"

	"github.com/legacylift/legacylift/pkg/domain/model"
	"github.com/legacylift/legacylift/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestBuildScanSummary(t *testing.T) {
	t.Run("aggregates issues and weights by severity", func(t *testing.T) {
		results := []model.FileResult{
			{Path: "a.py", Success: true, Issues: []model.Issue{
				{RuleID: "r1", Severity: model.SeverityCritical},
				{RuleID: "r2", Severity: model.SeverityHigh},
			}},
			{Path: "b.py", Success: true, Issues: []model.Issue{
				{RuleID: "r3", Severity: model.SeverityLow},
			}},
			{Path: "c.py", Success: false, ErrorMessage: "boom"},
		}

		summary := usecase.BuildScanSummaryForTest(3, results)

		gt.V(t, summary.TotalFiles).Equal(3)
		gt.V(t, summary.AnalyzedFiles).Equal(2)
		gt.V(t, summary.FailedFiles).Equal(1)
		gt.V(t, summary.TotalIssues).Equal(3)
		gt.V(t, summary.SeverityBreakdown[model.SeverityCritical]).Equal(1)
		gt.V(t, summary.SeverityBreakdown[model.SeverityHigh]).Equal(1)
		gt.V(t, summary.SeverityBreakdown[model.SeverityLow]).Equal(1)

		// weight 10+5+1 over 2 analyzed files
		gt.V(t, summary.DebtScore).Equal(80)
		// 60+30+5 minutes rounded to a tenth of an hour
		gt.V(t, summary.EstimatedFixHours).Equal(1.6)
	})

	t.Run("debt score is capped at 100", func(t *testing.T) {
		issues := make([]model.Issue, 30)
		for i := range issues {
			issues[i] = model.Issue{RuleID: "r", Severity: model.SeverityCritical}
		}
		summary := usecase.BuildScanSummaryForTest(1, []model.FileResult{
			{Path: "a.py", Success: true, Issues: issues},
		})

		gt.V(t, summary.DebtScore).Equal(100)
	})

	t.Run("empty result set yields a zero summary", func(t *testing.T) {
		summary := usecase.BuildScanSummaryForTest(0, nil)

		gt.V(t, summary.TotalFiles).Equal(0)
		gt.V(t, summary.AnalyzedFiles).Equal(0)
		gt.V(t, summary.DebtScore).Equal(0)
		gt.V(t, summary.EstimatedFixHours).Equal(0.0)
	})

	t.Run("all files failed yields no issues", func(t *testing.T) {
		summary := usecase.BuildScanSummaryForTest(2, []model.FileResult{
			{Path: "a.py", Success: false},
			{Path: "b.py", Success: false},
		})

		gt.V(t, summary.AnalyzedFiles).Equal(0)
		gt.V(t, summary.FailedFiles).Equal(2)
		gt.V(t, summary.DebtScore).Equal(0)
	})
}
