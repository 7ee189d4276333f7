package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	ObserveFetchDuration(seconds float64)
	IncFetchFailures()
	IncNotificationsSent()
	IncNotificationsFailed()
	SetStartupTime(duration float64)
}
