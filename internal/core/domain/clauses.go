package domain

import (
	"fmt"
	"sort"
)

// Clause identifiers follow the <Document>.<Section>[_<letter>] scheme used in
// conformance reports. They are stable: a report produced today and one
// produced next year point at the same normative sentence.
const (
	// SAML Core: element schema rules.
	ClauseEncryptedIDData       = "SAMLCore.2.2.4_a"
	ClauseEncryptedIDType       = "SAMLCore.2.2.4_b"
	ClauseAssertionVersion      = "SAMLCore.2.3.3_a"
	ClauseAssertionID           = "SAMLCore.2.3.3_b"
	ClauseAssertionIssueInstant = "SAMLCore.2.3.3_c"
	ClauseAssertionIssuer       = "SAMLCore.2.3.3_d"
	ClauseStatementType         = "SAMLCore.2.3.3_e"
	ClauseAssertionSubject      = "SAMLCore.2.3.3_f"
	ClauseEncryptedAssertion    = "SAMLCore.2.3.4_a"

	// SSO Profile rules.
	ClauseIssuerCardinality  = "SAMLProfiles.4.1.4.2_a"
	ClauseIssuerValue        = "SAMLProfiles.4.1.4.2_b"
	ClauseIssuerFormat       = "SAMLProfiles.4.1.4.2_c"
	ClauseAssertionRequired  = "SAMLProfiles.4.1.4.2_d"
	ClauseSubjectRequired    = "SAMLProfiles.4.1.4.2_g"
	ClauseBearerConfirmation = "SAMLProfiles.4.1.4.2_h"
	ClauseAuthnStatement     = "SAMLProfiles.4.1.4.2_j"
	ClauseSessionIndex       = "SAMLProfiles.4.1.4.2_k"
	ClauseAudience           = "SAMLProfiles.4.1.4.2_l"

	// HTTP-Redirect binding rules.
	ClauseRelayStateEncoding = "SAMLBindings.3.4.3_a"
	ClauseRelayStateLength   = "SAMLBindings.3.4.3_b"
	ClauseRelayStateValue    = "SAMLBindings.3.4.3_c"
	ClauseRedirectSignature  = "SAMLBindings.3.4.4.1_a"

	// HTTP-POST binding rules.
	ClausePostRelayStateLength = "SAMLBindings.3.5.3_a"
	ClausePostResponseEncoding = "SAMLBindings.3.5.4_a"
	ClausePostSignature        = "SAMLBindings.3.5.4_b"
)

// clauseRegistry maps each clause identifier to the normative text it
// enforces. Registration happens once at package init; a duplicate identifier
// panics so that two rules can never share a clause.
var clauseRegistry = map[string]string{}

func registerClause(id, text string) {
	if _, dup := clauseRegistry[id]; dup {
		panic(fmt.Sprintf("clause %q registered twice", id))
	}
	clauseRegistry[id] = text
}

func mustBeRegistered(id string) {
	if _, ok := clauseRegistry[id]; !ok {
		panic(fmt.Sprintf("violation raised for unregistered clause %q", id))
	}
}

// Describe returns the normative text registered for a clause identifier.
func Describe(id string) (string, bool) {
	text, ok := clauseRegistry[id]
	return text, ok
}

// Clauses returns all registered clause identifiers in sorted order.
func Clauses() []string {
	ids := make([]string, 0, len(clauseRegistry))
	for id := range clauseRegistry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func init() {
	registerClause(ClauseEncryptedIDData, "EncryptedID must contain an EncryptedData element.")
	registerClause(ClauseEncryptedIDType, "An EncryptedData Type attribute, when present, must be "+XMLEncElementURI+".")
	registerClause(ClauseAssertionVersion, "Assertion Version must be \"2.0\".")
	registerClause(ClauseAssertionID, "Assertion must carry an ID attribute.")
	registerClause(ClauseAssertionIssueInstant, "Assertion must carry an IssueInstant attribute.")
	registerClause(ClauseAssertionIssuer, "Assertion must contain an Issuer element.")
	registerClause(ClauseStatementType, "A Statement element must carry an xsi:type discriminator.")
	registerClause(ClauseAssertionSubject, "An Assertion with no statements must contain a Subject.")
	registerClause(ClauseEncryptedAssertion, "An EncryptedAssertion EncryptedData Type attribute, when present, must be "+XMLEncElementURI+".")

	registerClause(ClauseIssuerCardinality, "Response and Assertion elements must contain exactly one Issuer.")
	registerClause(ClauseIssuerValue, "Issuer must match the identity provider's entity identifier.")
	registerClause(ClauseIssuerFormat, "Issuer Format, when present, must be "+EntityFormatURI+".")
	registerClause(ClauseAssertionRequired, "Response must contain at least one Assertion.")
	registerClause(ClauseSubjectRequired, "Assertion must contain exactly one Subject.")
	registerClause(ClauseBearerConfirmation, "Subject must contain a conforming bearer SubjectConfirmation.")
	registerClause(ClauseAuthnStatement, "Assertion must contain at least one AuthnStatement.")
	registerClause(ClauseSessionIndex, "AuthnStatement must carry SessionIndex when the identity provider supports single logout.")
	registerClause(ClauseAudience, "Conditions must contain an AudienceRestriction naming the service provider.")

	registerClause(ClauseRelayStateEncoding, "RelayState must be URL-encoded exactly once.")
	registerClause(ClauseRelayStateLength, "RelayState must not exceed 80 bytes.")
	registerClause(ClauseRelayStateValue, "RelayState must equal the value supplied with the request.")
	registerClause(ClauseRedirectSignature, "The redirect signature must verify against the identity provider's signing certificate.")

	registerClause(ClausePostRelayStateLength, "RelayState must not exceed 80 bytes.")
	registerClause(ClausePostResponseEncoding, "SAMLResponse must be base64-encoded.")
	registerClause(ClausePostSignature, "The XML signature must verify against the identity provider's signing certificate.")
}
