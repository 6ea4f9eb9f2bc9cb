package domain

import "crypto/x509"

// Endpoint is a protocol endpoint published in identity provider metadata.
type Endpoint struct {
	// Binding is the SAML binding URI for this endpoint.
	Binding string

	// Location is the endpoint URL.
	Location string
}

// IdPMetadata is the identity provider context shared by all verifiers in a
// session. It is constructed once, before any verification, and never mutated
// afterwards; concurrent reads are safe.
type IdPMetadata struct {
	// EntityID is the identity provider's entity identifier. Issuer values
	// asserted in responses must match it exactly.
	EntityID string

	// Certificate is the identity provider's signing certificate.
	Certificate *x509.Certificate

	// SingleLogoutServices lists the identity provider's single-logout
	// endpoints. A non-empty list makes SessionIndex mandatory on every
	// AuthnStatement.
	SingleLogoutServices []Endpoint
}

// SupportsLogout reports whether the identity provider publishes any
// single-logout endpoint.
func (m *IdPMetadata) SupportsLogout() bool {
	return len(m.SingleLogoutServices) > 0
}
