//go:build unit

package verify

import (
	"testing"

	"github.com/beevik/etree"

	"github.com/blen-desta/saml-conformance/internal/core/domain"
)

const (
	testIdPEntityID = "https://idp.example.org/saml"
	testRecipient   = "https://sp.example.org/acs"
	testRequestID   = "_req-1234"
	testAudience    = "https://sp.example.org/saml"
)

// parseResponse parses a test document and returns its root element.
func parseResponse(t *testing.T, xml string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("failed to parse test response: %v", err)
	}
	return doc.Root()
}

// newSession builds a session around the given response with the standard
// test expectations.
func newSession(t *testing.T, xml string) *domain.Session {
	t.Helper()
	return &domain.Session{
		Response: parseResponse(t, xml),
		IdP:      &domain.IdPMetadata{EntityID: testIdPEntityID},
		Params:   map[string]string{},
		Expected: domain.Expected{
			InResponseTo: testRequestID,
			Recipient:    testRecipient,
			Audience:     testAudience,
		},
	}
}

// wantViolation asserts that err is a Violation for the given clause.
func wantViolation(t *testing.T, err error, clause string) {
	t.Helper()
	if err == nil {
		t.Fatalf("got no violation, want clause %s", clause)
	}
	v, ok := err.(*domain.Violation)
	if !ok {
		t.Fatalf("got error %T (%v), want *domain.Violation", err, err)
	}
	if v.Clause != clause {
		t.Fatalf("got clause %s (%s), want %s", v.Clause, v.Message, clause)
	}
}

// wantPass asserts that err is nil.
func wantPass(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("got violation %v, want pass", err)
	}
}

// fakeRecorder counts metric calls for engine tests.
type fakeRecorder struct {
	checks     []string
	violations []string
}

func (f *fakeRecorder) RecordCheck(verifier, check string) {
	f.checks = append(f.checks, verifier+"/"+check)
}

func (f *fakeRecorder) RecordViolation(verifier, clause string) {
	f.violations = append(f.violations, verifier+"/"+clause)
}
