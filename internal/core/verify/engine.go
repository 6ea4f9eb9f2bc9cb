// Package verify implements the conformance rule engine and the Core,
// SSO-Profile and Binding verifiers that run on it.
//
// A verifier is an ordered list of named checks. Run executes them fail-fast:
// the first violated rule aborts the remaining checks, which is the contract
// reports rely on — one session, one attributable violation. RunAll executes
// every check and returns all violations, for reports that want the complete
// picture of independent failures.
package verify

import (
	"go.uber.org/zap"

	"github.com/blen-desta/saml-conformance/internal/core/domain"
	"github.com/blen-desta/saml-conformance/internal/core/ports"
)

// Check is one named conformance rule: a pure function from session state to
// an optional violation. New specification clauses are added as new list
// entries, not new dispatch logic.
type Check struct {
	Name string
	Fn   func(*domain.Session) *domain.Violation
}

// Verifier runs an ordered list of checks against a session.
type Verifier struct {
	name    string
	checks  []Check
	logger  *zap.Logger
	metrics ports.MetricsRecorder
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithLogger attaches a logger for per-check debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(v *Verifier) { v.logger = logger }
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(m ports.MetricsRecorder) Option {
	return func(v *Verifier) { v.metrics = m }
}

// New creates a verifier from an ordered check list.
func New(name string, checks []Check, opts ...Option) *Verifier {
	v := &Verifier{name: name, checks: checks}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Name returns the verifier's name.
func (v *Verifier) Name() string {
	return v.name
}

// Run executes the checks in order and returns the first violation, or nil
// when the session passes every check. Checks after the first violation do
// not run.
func (v *Verifier) Run(s *domain.Session) error {
	for _, c := range v.checks {
		if viol := v.runCheck(c, s); viol != nil {
			return viol
		}
	}
	return nil
}

// RunAll executes every check regardless of earlier failures and returns all
// violations in check order. It returns nil when the session passes.
func (v *Verifier) RunAll(s *domain.Session) domain.Violations {
	var all domain.Violations
	for _, c := range v.checks {
		if viol := v.runCheck(c, s); viol != nil {
			all = append(all, viol)
		}
	}
	return all
}

func (v *Verifier) runCheck(c Check, s *domain.Session) *domain.Violation {
	if v.metrics != nil {
		v.metrics.RecordCheck(v.name, c.Name)
	}
	viol := c.Fn(s)
	if viol == nil {
		if v.logger != nil {
			v.logger.Debug("check passed",
				zap.String("verifier", v.name),
				zap.String("check", c.Name),
			)
		}
		return nil
	}
	if v.metrics != nil {
		v.metrics.RecordViolation(v.name, viol.Clause)
	}
	if v.logger != nil {
		v.logger.Info("violation detected",
			zap.String("verifier", v.name),
			zap.String("check", c.Name),
			zap.String("clause", viol.Clause),
			zap.String("category", viol.Category.String()),
		)
	}
	return viol
}
