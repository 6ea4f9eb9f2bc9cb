package verify

import (
	"encoding/base64"
	"fmt"

	"github.com/beevik/etree"

	"github.com/blen-desta/saml-conformance/internal/core/domain"
	"github.com/blen-desta/saml-conformance/internal/core/ports"
)

// Post returns the verifier for the HTTP-POST binding rules. The RelayState
// form field travels unencoded, so only the length rule applies to it; the
// SAMLResponse field must base64-decode, and a signed document must carry a
// signature that verifies.
func Post(sig ports.ResponseSignatureVerifier, opts ...Option) *Verifier {
	return New("post-binding", []Check{
		{Name: "relay-state", Fn: checkPostRelayState},
		{Name: "saml-response", Fn: checkPostResponse(sig)},
	}, opts...)
}

func checkPostRelayState(s *domain.Session) *domain.Violation {
	raw, ok := s.Param(domain.ParamRelayState)
	if !ok {
		return nil
	}
	if len(raw) > domain.MaxRelayStateBytes {
		return domain.LengthViolation(domain.ClausePostRelayStateLength,
			fmt.Sprintf("RelayState is %d bytes, limit is %d", len(raw), domain.MaxRelayStateBytes))
	}
	return nil
}

func checkPostResponse(sig ports.ResponseSignatureVerifier) func(*domain.Session) *domain.Violation {
	return func(s *domain.Session) *domain.Violation {
		raw, ok := s.Param(domain.ParamSAMLResponse)
		if !ok {
			return nil
		}
		data, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			v := domain.EncodingViolation(domain.ClausePostResponseEncoding,
				"SAMLResponse is not valid base64")
			v.Cause = err
			return v
		}
		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(data); err != nil {
			v := domain.EncodingViolation(domain.ClausePostResponseEncoding,
				"decoded SAMLResponse is not well-formed XML")
			v.Cause = err
			return v
		}
		root := doc.Root()
		if root == nil || domain.FirstChild(root, "Signature") == nil {
			return nil
		}
		if _, err := sig.Verify(data); err != nil {
			return domain.SignatureViolation(domain.ClausePostSignature,
				"response signature does not verify against the identity provider certificate", err)
		}
		return nil
	}
}
