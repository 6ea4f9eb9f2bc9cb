package domain

import "github.com/beevik/etree"

// Expected holds the per-transaction values the harness supplied with the
// request under test. The engine compares asserted values against them.
type Expected struct {
	// RelayState is the value sent with the request, if any. Only consulted
	// when Session.RelayStateExpected is set.
	RelayState string `yaml:"relay_state"`

	// InResponseTo is the identifier of the request this response answers.
	InResponseTo string `yaml:"in_response_to"`

	// Recipient is the assertion-consumer endpoint URL the response was
	// delivered to.
	Recipient string `yaml:"recipient"`

	// Audience is the service provider's own entity identifier.
	Audience string `yaml:"audience"`
}

// Session groups everything one verification run operates on: the parsed
// response document, the identity provider metadata, and the binding-level
// auxiliary inputs. A Session is built per transaction and does not outlive
// one verification call chain.
type Session struct {
	// Response is the root element of the parsed response document.
	Response *etree.Element

	// IdP is the identity provider context. Read-only.
	IdP *IdPMetadata

	// Params maps query/form parameter names to their raw, still-encoded
	// wire values.
	Params map[string]string

	// RelayStateExpected indicates a RelayState value was sent with the
	// request and must be echoed back.
	RelayStateExpected bool

	// Expected holds the per-transaction comparison values.
	Expected Expected
}

// Param returns the raw value of a query/form parameter.
func (s *Session) Param(name string) (string, bool) {
	v, ok := s.Params[name]
	return v, ok
}
