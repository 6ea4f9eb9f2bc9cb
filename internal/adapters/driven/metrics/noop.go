package metrics

import (
	"github.com/blen-desta/saml-conformance/internal/core/ports"
)

// NoopMetricsRecorder is a no-op implementation for when metrics are disabled.
// All methods are safe to call and do nothing.
type NoopMetricsRecorder struct{}

// NewNoopMetricsRecorder creates a new no-op metrics recorder.
func NewNoopMetricsRecorder() *NoopMetricsRecorder {
	return &NoopMetricsRecorder{}
}

// RecordCheck is a no-op.
func (n *NoopMetricsRecorder) RecordCheck(verifier, check string) {}

// RecordViolation is a no-op.
func (n *NoopMetricsRecorder) RecordViolation(verifier, clause string) {}

// Ensure NoopMetricsRecorder implements ports.MetricsRecorder
var _ ports.MetricsRecorder = (*NoopMetricsRecorder)(nil)
