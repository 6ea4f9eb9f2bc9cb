package ports

// MetricsRecorder is the port interface for recording verification metrics.
// Implementations are adapters (PrometheusMetricsRecorder for production,
// NoopMetricsRecorder for disabled/testing).
type MetricsRecorder interface {
	// RecordCheck records that a named check ran within a verifier.
	RecordCheck(verifier, check string)

	// RecordViolation records a violation of the given clause detected by
	// a verifier.
	RecordViolation(verifier, clause string)
}
