package verify

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/blen-desta/saml-conformance/internal/core/domain"
)

// Profile returns the verifier for the Web SSO profile rules, layered on top
// of the core element rules.
func Profile(opts ...Option) *Verifier {
	return New("sso-profile", []Check{
		{Name: "response-issuer", Fn: checkResponseIssuer},
		{Name: "sso-assertions", Fn: checkSsoAssertions},
	}, opts...)
}

// checkResponseIssuer verifies the response-level Issuer, but only when the
// response or one of its assertions is signed; an unsigned response defers
// issuer identification to its assertions.
func checkResponseIssuer(s *domain.Session) *domain.Violation {
	if !responseIsSigned(s.Response) {
		return nil
	}
	return checkIssuer(s.Response, s)
}

func responseIsSigned(resp *etree.Element) bool {
	if domain.FirstChild(resp, "Signature") != nil {
		return true
	}
	for _, a := range domain.Children(resp, "Assertion") {
		if domain.FirstChild(a, "Signature") != nil {
			return true
		}
	}
	return false
}

// checkIssuer verifies the Issuer rules shared by responses and assertions:
// exactly one Issuer, matching the identity provider's entity identifier,
// with the entity name-identifier format when a Format is present.
func checkIssuer(el *etree.Element, s *domain.Session) *domain.Violation {
	issuers := domain.Children(el, "Issuer")
	if len(issuers) != 1 {
		return domain.StructuralViolation(domain.ClauseIssuerCardinality,
			fmt.Sprintf("%s contains %d Issuer elements, want exactly one", el.Tag, len(issuers)))
	}
	issuer := issuers[0]
	if got := domain.TrimmedText(issuer); got != s.IdP.EntityID {
		return domain.ValueViolation(domain.ClauseIssuerValue,
			fmt.Sprintf("Issuer is %q, want %q", got, s.IdP.EntityID))
	}
	if format, present := domain.Attr(issuer, "Format"); present && format != domain.EntityFormatURI {
		return domain.ValueViolation(domain.ClauseIssuerFormat,
			fmt.Sprintf("Issuer Format is %q, want %q", format, domain.EntityFormatURI))
	}
	return nil
}

func checkSsoAssertions(s *domain.Session) *domain.Violation {
	assertions := domain.Children(s.Response, "Assertion")
	if len(assertions) == 0 {
		return domain.StructuralViolation(domain.ClauseAssertionRequired,
			"Response contains no Assertion")
	}
	for _, a := range assertions {
		if viol := checkIssuer(a, s); viol != nil {
			return viol
		}
		subjects := domain.Children(a, "Subject")
		if len(subjects) != 1 {
			return domain.StructuralViolation(domain.ClauseSubjectRequired,
				fmt.Sprintf("Assertion contains %d Subject elements, want exactly one", len(subjects)))
		}
		if viol := checkBearerConfirmations(subjects[0], s); viol != nil {
			return viol
		}
		authnStatements := domain.Children(a, "AuthnStatement")
		if len(authnStatements) == 0 {
			return domain.StructuralViolation(domain.ClauseAuthnStatement,
				"Assertion contains no AuthnStatement")
		}
		if s.IdP.SupportsLogout() {
			for _, st := range authnStatements {
				if !domain.HasAttr(st, "SessionIndex") {
					return domain.StructuralViolation(domain.ClauseSessionIndex,
						"AuthnStatement has no SessionIndex but the identity provider supports single logout")
				}
			}
		}
		if viol := checkAudience(a, s); viol != nil {
			return viol
		}
	}
	return nil
}

// checkBearerConfirmations requires at least one bearer SubjectConfirmation,
// and a conforming bearer confirmation-data set whenever any bearer
// confirmation data misuses NotBefore.
func checkBearerConfirmations(subject *etree.Element, s *domain.Session) *domain.Violation {
	var bearers []*etree.Element
	for _, sc := range domain.Children(subject, "SubjectConfirmation") {
		if method, _ := domain.Attr(sc, "Method"); method == domain.BearerMethodURI {
			bearers = append(bearers, sc)
		}
	}
	if len(bearers) == 0 {
		return domain.StructuralViolation(domain.ClauseBearerConfirmation,
			"Subject has no bearer SubjectConfirmation")
	}

	notBefore := 0
	conforming := 0
	for _, b := range bearers {
		for _, data := range domain.Children(b, "SubjectConfirmationData") {
			if domain.HasAttr(data, "NotBefore") {
				notBefore++
			}
			recipient, _ := domain.Attr(data, "Recipient")
			inResponseTo, _ := domain.Attr(data, "InResponseTo")
			if recipient == s.Expected.Recipient &&
				inResponseTo == s.Expected.InResponseTo &&
				domain.HasAttr(data, "NotOnOrAfter") {
				conforming++
			}
		}
	}
	if notBefore > 0 && conforming == 0 {
		return domain.StructuralViolation(domain.ClauseBearerConfirmation,
			"bearer SubjectConfirmationData uses NotBefore and no conforming confirmation data exists")
	}
	return nil
}

func checkAudience(assertion *etree.Element, s *domain.Session) *domain.Violation {
	conditions := domain.FirstChild(assertion, "Conditions")
	if conditions == nil {
		return nil
	}
	restriction := domain.FirstChild(conditions, "AudienceRestriction")
	if restriction == nil {
		return domain.StructuralViolation(domain.ClauseAudience,
			"Conditions contains no AudienceRestriction")
	}
	audiences := domain.Children(restriction, "Audience")
	if len(audiences) == 0 {
		return domain.StructuralViolation(domain.ClauseAudience,
			"AudienceRestriction contains no Audience")
	}
	if got := domain.TrimmedText(audiences[0]); got != s.Expected.Audience {
		return domain.ValueViolation(domain.ClauseAudience,
			fmt.Sprintf("Audience is %q, want %q", got, s.Expected.Audience))
	}
	return nil
}
