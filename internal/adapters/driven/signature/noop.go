package signature

import (
	"crypto/x509"

	"github.com/blen-desta/saml-conformance/internal/core/ports"
)

// NoopResponseVerifier is a pass-through verifier for development/testing.
// It returns the input unchanged without verification.
type NoopResponseVerifier struct{}

// NewNoopResponseVerifier creates a new NoopResponseVerifier.
func NewNoopResponseVerifier() *NoopResponseVerifier {
	return &NoopResponseVerifier{}
}

// Verify returns the input unchanged without verification.
func (v *NoopResponseVerifier) Verify(data []byte) ([]byte, error) {
	return data, nil
}

// NoopRedirectVerifier accepts every redirect signature. For tests that
// exercise binding rules other than the signature.
type NoopRedirectVerifier struct{}

// NewNoopRedirectVerifier creates a new NoopRedirectVerifier.
func NewNoopRedirectVerifier() *NoopRedirectVerifier {
	return &NoopRedirectVerifier{}
}

// Verify reports every signature as valid.
func (v *NoopRedirectVerifier) Verify(samlResponse, relayState, sigAlg, signature string, cert *x509.Certificate) (bool, error) {
	return true, nil
}

var _ ports.ResponseSignatureVerifier = (*NoopResponseVerifier)(nil)
var _ ports.RedirectSignatureVerifier = (*NoopRedirectVerifier)(nil)
