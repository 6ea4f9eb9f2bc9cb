package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/blen-desta/saml-conformance/internal/core/ports"
)

// PrometheusMetricsRecorder records verification metrics using Prometheus.
type PrometheusMetricsRecorder struct {
	checksTotal     *prometheus.CounterVec
	violationsTotal *prometheus.CounterVec
}

// NewPrometheusMetricsRecorder creates a new Prometheus metrics recorder
// using the default Prometheus registry.
func NewPrometheusMetricsRecorder() *PrometheusMetricsRecorder {
	return NewPrometheusMetricsRecorderWithRegistry(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsRecorderWithRegistry creates a new Prometheus metrics
// recorder with a custom registry. Use this for testing.
func NewPrometheusMetricsRecorderWithRegistry(reg prometheus.Registerer) *PrometheusMetricsRecorder {
	checksTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "saml_conformance_checks_total",
		Help: "Total conformance checks executed",
	}, []string{"verifier", "check"})

	violationsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "saml_conformance_violations_total",
		Help: "Total conformance violations detected",
	}, []string{"verifier", "clause"})

	reg.MustRegister(checksTotal, violationsTotal)

	return &PrometheusMetricsRecorder{
		checksTotal:     checksTotal,
		violationsTotal: violationsTotal,
	}
}

// RecordCheck records that a named check ran within a verifier.
func (p *PrometheusMetricsRecorder) RecordCheck(verifier, check string) {
	p.checksTotal.WithLabelValues(verifier, check).Inc()
}

// RecordViolation records a violation of the given clause.
func (p *PrometheusMetricsRecorder) RecordViolation(verifier, clause string) {
	p.violationsTotal.WithLabelValues(verifier, clause).Inc()
}

// Ensure PrometheusMetricsRecorder implements ports.MetricsRecorder
var _ ports.MetricsRecorder = (*PrometheusMetricsRecorder)(nil)
