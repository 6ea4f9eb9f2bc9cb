package samlconformance

import (
	"github.com/blen-desta/saml-conformance/internal/core/domain"
	"github.com/blen-desta/saml-conformance/internal/core/verify"
)

// Re-export domain types so harnesses can depend on the root package only.
type Violation = domain.Violation
type Violations = domain.Violations
type Category = domain.Category
type Session = domain.Session
type Expected = domain.Expected
type IdPMetadata = domain.IdPMetadata
type Endpoint = domain.Endpoint

// Re-export violation categories.
const (
	CategoryStructural = domain.CategoryStructural
	CategoryValue      = domain.CategoryValue
	CategoryEncoding   = domain.CategoryEncoding
	CategoryLength     = domain.CategoryLength
	CategorySignature  = domain.CategorySignature
)

// Re-export the clause registry surface.
var (
	Describe = domain.Describe
	Clauses  = domain.Clauses
)

// Re-export verifier constructors and engine types.
type Verifier = verify.Verifier
type Check = verify.Check
type Option = verify.Option

var (
	NewCoreVerifier     = verify.Core
	NewProfileVerifier  = verify.Profile
	NewRedirectVerifier = verify.Redirect
	NewPostVerifier     = verify.Post
	WithLogger          = verify.WithLogger
	WithMetrics         = verify.WithMetrics
)
