// Package samlconformance verifies SAML identity provider responses against
// the normative requirements of the core element schema, the Web SSO profile
// and the HTTP-Redirect/HTTP-POST bindings.
//
// Each requirement either passes silently or fails with a Violation carrying
// a stable clause identifier that points at the exact specification sentence
// it enforces. Verification is fail-fast by default: the first violated rule
// aborts the verifier. An accumulating mode is available for reports that
// want every independent failure.
//
// The package itself never parses raw bytes beyond what a session supplies,
// never generates protocol messages, and never persists results; it consumes
// a parsed document tree, an identity provider context, and per-transaction
// expected values, and reports conformance.
package samlconformance
