package ports

import "crypto/x509"

// RedirectSignatureVerifier verifies the detached signature carried in
// HTTP-Redirect binding query parameters.
// This is a port interface - implementations are adapters.
type RedirectSignatureVerifier interface {
	// Verify checks the signature over the literal SAMLResponse, RelayState
	// and SigAlg query fields against the identity provider's signing
	// certificate. It returns false for a well-formed signature that does
	// not verify, and an error when the input is malformed (undecodable
	// signature, unknown algorithm, unsupported key type).
	Verify(samlResponse, relayState, sigAlg, signature string, cert *x509.Certificate) (bool, error)
}

// ResponseSignatureVerifier verifies enveloped XML signatures on response
// documents, as carried by the HTTP-POST binding.
// This is a port interface - implementations are adapters.
//
// The interface returns validated bytes (not just error) following goxmldsig
// best practices to prevent signature wrapping attacks. The returned bytes
// should be used for further processing.
type ResponseSignatureVerifier interface {
	// Verify validates the XML signature on the document and returns the
	// validated XML bytes. Returns error if signature is invalid or missing.
	Verify(data []byte) ([]byte, error)
}
