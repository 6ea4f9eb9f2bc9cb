//go:build unit

package verify

import (
	"testing"

	"github.com/blen-desta/saml-conformance/internal/core/domain"
)

const assertionAttrs = `Version="2.0" ID="_a1" IssueInstant="2026-08-31T12:00:00Z"`

func TestCore_EncryptedID(t *testing.T) {
	testCases := []struct {
		name       string
		xml        string
		wantClause string
	}{
		{
			name: "encrypted data present",
			xml:  `<Response><Subject><EncryptedID><EncryptedData/></EncryptedID></Subject></Response>`,
		},
		{
			name:       "no encrypted data",
			xml:        `<Response><Subject><EncryptedID/></Subject></Response>`,
			wantClause: domain.ClauseEncryptedIDData,
		},
		{
			name: "type attribute correct",
			xml: `<Response><Subject><EncryptedID>
				<EncryptedData Type="http://www.w3.org/2001/04/xmlenc#Element"/>
			</EncryptedID></Subject></Response>`,
		},
		{
			name: "type attribute wrong",
			xml: `<Response><Subject><EncryptedID>
				<EncryptedData Type="http://www.w3.org/2001/04/xmlenc#Content"/>
			</EncryptedID></Subject></Response>`,
			wantClause: domain.ClauseEncryptedIDType,
		},
		{
			name: "type attribute omitted",
			xml:  `<Response><Subject><EncryptedID><EncryptedData/></EncryptedID></Subject></Response>`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Core().Run(newSession(t, tc.xml))
			if tc.wantClause == "" {
				wantPass(t, err)
				return
			}
			wantViolation(t, err, tc.wantClause)
		})
	}
}

func TestCore_Assertion(t *testing.T) {
	testCases := []struct {
		name       string
		xml        string
		wantClause string
	}{
		{
			name: "minimal conforming assertion",
			xml: `<Response><Assertion ` + assertionAttrs + `>
				<Issuer>https://idp.example.org/saml</Issuer>
				<Subject/>
			</Assertion></Response>`,
		},
		{
			name: "wrong version",
			xml: `<Response><Assertion Version="1.1" ID="_a1" IssueInstant="2026-08-31T12:00:00Z">
				<Issuer>x</Issuer><Subject/>
			</Assertion></Response>`,
			wantClause: domain.ClauseAssertionVersion,
		},
		{
			name: "missing version",
			xml: `<Response><Assertion ID="_a1" IssueInstant="2026-08-31T12:00:00Z">
				<Issuer>x</Issuer><Subject/>
			</Assertion></Response>`,
			wantClause: domain.ClauseAssertionVersion,
		},
		{
			name: "missing id",
			xml: `<Response><Assertion Version="2.0" IssueInstant="2026-08-31T12:00:00Z">
				<Issuer>x</Issuer><Subject/>
			</Assertion></Response>`,
			wantClause: domain.ClauseAssertionID,
		},
		{
			name: "missing issue instant",
			xml: `<Response><Assertion Version="2.0" ID="_a1">
				<Issuer>x</Issuer><Subject/>
			</Assertion></Response>`,
			wantClause: domain.ClauseAssertionIssueInstant,
		},
		{
			name: "missing issuer",
			xml: `<Response><Assertion ` + assertionAttrs + `>
				<Subject/>
			</Assertion></Response>`,
			wantClause: domain.ClauseAssertionIssuer,
		},
		{
			name: "statement with type discriminator",
			xml: `<Response><Assertion ` + assertionAttrs + ` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
				<Issuer>x</Issuer>
				<Statement xsi:type="saml:CustomStatementType"/>
			</Assertion></Response>`,
		},
		{
			name: "statement without type discriminator",
			xml: `<Response><Assertion ` + assertionAttrs + `>
				<Issuer>x</Issuer>
				<Statement/>
			</Assertion></Response>`,
			wantClause: domain.ClauseStatementType,
		},
		{
			name: "no statements and no subject",
			xml: `<Response><Assertion ` + assertionAttrs + `>
				<Issuer>x</Issuer>
			</Assertion></Response>`,
			wantClause: domain.ClauseAssertionSubject,
		},
		{
			name: "no statements but subject present",
			xml: `<Response><Assertion ` + assertionAttrs + `>
				<Issuer>x</Issuer><Subject/>
			</Assertion></Response>`,
		},
		{
			name: "authn statement stands in for subject",
			xml: `<Response><Assertion ` + assertionAttrs + `>
				<Issuer>x</Issuer><AuthnStatement/>
			</Assertion></Response>`,
		},
		{
			name: "attribute statement stands in for subject",
			xml: `<Response><Assertion ` + assertionAttrs + `>
				<Issuer>x</Issuer><AttributeStatement/>
			</Assertion></Response>`,
		},
		{
			name: "authz decision statement stands in for subject",
			xml: `<Response><Assertion ` + assertionAttrs + `>
				<Issuer>x</Issuer><AuthzDecisionStatement/>
			</Assertion></Response>`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Core().Run(newSession(t, tc.xml))
			if tc.wantClause == "" {
				wantPass(t, err)
				return
			}
			wantViolation(t, err, tc.wantClause)
		})
	}
}

func TestCore_EncryptedAssertion(t *testing.T) {
	testCases := []struct {
		name       string
		xml        string
		wantClause string
	}{
		{
			name: "type attribute correct",
			xml: `<Response><EncryptedAssertion>
				<EncryptedData Type="http://www.w3.org/2001/04/xmlenc#Element"/>
			</EncryptedAssertion></Response>`,
		},
		{
			name: "type attribute wrong",
			xml: `<Response><EncryptedAssertion>
				<EncryptedData Type="http://www.w3.org/2001/04/xmlenc#EncryptedKey"/>
			</EncryptedAssertion></Response>`,
			wantClause: domain.ClauseEncryptedAssertion,
		},
		{
			name: "type attribute omitted",
			xml:  `<Response><EncryptedAssertion><EncryptedData/></EncryptedAssertion></Response>`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Core().Run(newSession(t, tc.xml))
			if tc.wantClause == "" {
				wantPass(t, err)
				return
			}
			wantViolation(t, err, tc.wantClause)
		})
	}
}

// Nested assertions must be found wherever they appear, not only as direct
// response children.
func TestCore_NestedAssertion(t *testing.T) {
	xml := `<Response><EncryptedAssertionWrapper>
		<Assertion Version="1.0" ID="_a1" IssueInstant="2026-08-31T12:00:00Z"><Issuer>x</Issuer><Subject/></Assertion>
	</EncryptedAssertionWrapper></Response>`
	wantViolation(t, Core().Run(newSession(t, xml)), domain.ClauseAssertionVersion)
}
