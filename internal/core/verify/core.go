package verify

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/blen-desta/saml-conformance/internal/core/domain"
)

// Core returns the verifier for the element-schema rules of the core
// specification. The rules are flow-independent: they hold for any document
// that carries assertions, whatever binding or profile delivered it.
func Core(opts ...Option) *Verifier {
	return New("core", []Check{
		{Name: "encrypted-id", Fn: checkEncryptedIDs},
		{Name: "assertion", Fn: checkAssertions},
		{Name: "encrypted-assertion", Fn: checkEncryptedAssertions},
	}, opts...)
}

func checkEncryptedIDs(s *domain.Session) *domain.Violation {
	ids := domain.Descendants(s.Response, "EncryptedID")
	for _, id := range ids {
		if len(domain.Children(id, "EncryptedData")) == 0 {
			return domain.StructuralViolation(domain.ClauseEncryptedIDData,
				"EncryptedID contains no EncryptedData element")
		}
	}
	return checkEncryptedDataType(ids, domain.ClauseEncryptedIDType)
}

func checkAssertions(s *domain.Session) *domain.Violation {
	for _, a := range domain.Descendants(s.Response, "Assertion") {
		if version, _ := domain.Attr(a, "Version"); version != domain.SAMLVersion {
			return domain.ValueViolation(domain.ClauseAssertionVersion,
				fmt.Sprintf("Assertion Version is %q, want %q", version, domain.SAMLVersion))
		}
		if !domain.HasAttr(a, "ID") {
			return domain.StructuralViolation(domain.ClauseAssertionID,
				"Assertion has no ID attribute")
		}
		if !domain.HasAttr(a, "IssueInstant") {
			return domain.StructuralViolation(domain.ClauseAssertionIssueInstant,
				"Assertion has no IssueInstant attribute")
		}
		if len(domain.Children(a, "Issuer")) == 0 {
			return domain.StructuralViolation(domain.ClauseAssertionIssuer,
				"Assertion has no Issuer element")
		}
		statements := domain.Children(a, "Statement")
		for _, st := range statements {
			if !domain.HasAttr(st, "type") {
				return domain.StructuralViolation(domain.ClauseStatementType,
					"Statement carries no xsi:type discriminator")
			}
		}
		// An assertion asserting no statements must still identify a
		// principal.
		if len(statements) == 0 &&
			len(domain.Children(a, "AuthnStatement")) == 0 &&
			len(domain.Children(a, "AuthzDecisionStatement")) == 0 &&
			len(domain.Children(a, "AttributeStatement")) == 0 &&
			len(domain.Children(a, "Subject")) == 0 {
			return domain.StructuralViolation(domain.ClauseAssertionSubject,
				"Assertion has no statements and no Subject")
		}
	}
	return nil
}

func checkEncryptedAssertions(s *domain.Session) *domain.Violation {
	return checkEncryptedDataType(
		domain.Descendants(s.Response, "EncryptedAssertion"),
		domain.ClauseEncryptedAssertion,
	)
}

// checkEncryptedDataType verifies that every EncryptedData child of the given
// containers either omits its Type attribute or sets it to the XML-Encryption
// element-type URI.
func checkEncryptedDataType(containers []*etree.Element, clause string) *domain.Violation {
	for _, c := range containers {
		for _, ed := range domain.Children(c, "EncryptedData") {
			typ, present := domain.Attr(ed, "Type")
			if present && typ != domain.XMLEncElementURI {
				return domain.ValueViolation(clause,
					fmt.Sprintf("EncryptedData Type is %q, want %q", typ, domain.XMLEncElementURI))
			}
		}
	}
	return nil
}
