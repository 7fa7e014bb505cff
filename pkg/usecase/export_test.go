package usecase

// Export unexported functions for testing
var (
	BuildScanSummaryForTest          = buildScanSummary
	EstimateSecondsLeftForTest       = estimateSecondsLeft
	CreateOrUpdateExportTableForTest = createOrUpdateExportTable
)
