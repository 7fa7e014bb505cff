package telemetry

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	ScanJobsStarted   = prometheus.NewCounter(prometheus.CounterOpts{Name: "legacylift_scan_jobs_started_total", Help: "Scan jobs moved to running"})
	ScanJobsCompleted = prometheus.NewCounter(prometheus.CounterOpts{Name: "legacylift_scan_jobs_completed_total", Help: "Scan jobs completed"})
	ScanJobsFailed    = prometheus.NewCounter(prometheus.CounterOpts{Name: "legacylift_scan_jobs_failed_total", Help: "Scan jobs failed outside the per-file loop"})
	WebhookRuns       = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "legacylift_webhook_runs_total", Help: "Webhook runs by terminal status"}, []string{"status"})
	RateLimitWaits    = prometheus.NewCounter(prometheus.CounterOpts{Name: "legacylift_github_rate_limit_waits_total", Help: "Requests delayed by the GitHub rate limit"})
	FilesAnalyzed     = prometheus.NewCounter(prometheus.CounterOpts{Name: "legacylift_files_analyzed_total", Help: "Files submitted to the analyzer"})
)

// Handler exposes the /metrics HTTP handler with a singleton registry.
func Handler() http.Handler {
	once.Do(func() {
		prometheus.MustRegister(
			ScanJobsStarted,
			ScanJobsCompleted,
			ScanJobsFailed,
			WebhookRuns,
			RateLimitWaits,
			FilesAnalyzed,
		)
	})
	return promhttp.Handler()
}
