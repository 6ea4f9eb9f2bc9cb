package metadata

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/crewjam/saml"

	"github.com/blen-desta/saml-conformance/internal/core/domain"
)

// Parse builds the identity provider context from an EntityDescriptor
// document. The descriptor must describe an IdP and carry a signing
// certificate; single-logout endpoints are optional.
func Parse(data []byte) (*domain.IdPMetadata, error) {
	var entity saml.EntityDescriptor
	if err := xml.Unmarshal(data, &entity); err != nil {
		return nil, fmt.Errorf("parse metadata XML: %w", err)
	}
	return fromDescriptor(&entity)
}

func fromDescriptor(entity *saml.EntityDescriptor) (*domain.IdPMetadata, error) {
	if entity.EntityID == "" {
		return nil, fmt.Errorf("missing entityID attribute")
	}
	if len(entity.IDPSSODescriptors) == 0 {
		return nil, fmt.Errorf("no IDPSSODescriptor found")
	}
	idpDesc := entity.IDPSSODescriptors[0]

	cert, err := signingCertificate(&idpDesc)
	if err != nil {
		return nil, err
	}

	var slo []domain.Endpoint
	for _, ep := range idpDesc.SingleLogoutServices {
		slo = append(slo, domain.Endpoint{
			Binding:  ep.Binding,
			Location: ep.Location,
		})
	}

	return &domain.IdPMetadata{
		EntityID:             entity.EntityID,
		Certificate:          cert,
		SingleLogoutServices: slo,
	}, nil
}

// signingCertificate extracts the first usable signing certificate. Key
// descriptors with no use attribute count as signing keys.
func signingCertificate(idpDesc *saml.IDPSSODescriptor) (*x509.Certificate, error) {
	for _, kd := range idpDesc.KeyDescriptors {
		if kd.Use != "signing" && kd.Use != "" {
			continue
		}
		for _, c := range kd.KeyInfo.X509Data.X509Certificates {
			der, err := base64.StdEncoding.DecodeString(normalizeCertData(c.Data))
			if err != nil {
				return nil, fmt.Errorf("decode signing certificate: %w", err)
			}
			cert, err := x509.ParseCertificate(der)
			if err != nil {
				return nil, fmt.Errorf("parse signing certificate: %w", err)
			}
			return cert, nil
		}
	}
	return nil, fmt.Errorf("no signing certificate in metadata")
}

// normalizeCertData strips the whitespace metadata publishers wrap base64
// certificate data with.
func normalizeCertData(data string) string {
	return strings.Join(strings.Fields(data), "")
}
