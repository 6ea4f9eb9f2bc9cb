package domain

// URIs and values fixed by the SAML and XML-Encryption specifications.
const (
	// SAMLVersion is the only protocol version the engine accepts.
	SAMLVersion = "2.0"

	// XMLEncElementURI is the XML-Encryption element-type URI required on
	// EncryptedData elements that carry a Type attribute.
	XMLEncElementURI = "http://www.w3.org/2001/04/xmlenc#Element"

	// BearerMethodURI is the bearer subject-confirmation method.
	BearerMethodURI = "urn:oasis:names:tc:SAML:2.0:cm:bearer"

	// EntityFormatURI is the entity name-identifier format required on
	// Issuer Format attributes when one is present.
	EntityFormatURI = "urn:oasis:names:tc:SAML:2.0:nameid-format:entity"
)

// Query/form parameter names defined by the bindings.
const (
	ParamSAMLResponse = "SAMLResponse"
	ParamRelayState   = "RelayState"
	ParamSignature    = "Signature"
	ParamSigAlg       = "SigAlg"
)

// MaxRelayStateBytes is the byte limit on a decoded RelayState value.
const MaxRelayStateBytes = 80
