//go:build unit

package metadata

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blen-desta/saml-conformance/internal/core/domain"
)

// testDescriptor renders an IdP EntityDescriptor with the given certificate
// data and optional SLO endpoint.
func testDescriptor(certData string, withSLO bool) string {
	slo := ""
	if withSLO {
		slo = `<SingleLogoutService Binding="urn:oasis:names:tc:SAML:2.0:bindings:HTTP-Redirect" Location="https://idp.example.org/slo"/>`
	}
	return fmt.Sprintf(`<EntityDescriptor xmlns="urn:oasis:names:tc:SAML:2.0:metadata" entityID="https://idp.example.org/saml">
  <IDPSSODescriptor protocolSupportEnumeration="urn:oasis:names:tc:SAML:2.0:protocol">
    <KeyDescriptor use="signing">
      <KeyInfo xmlns="http://www.w3.org/2000/09/xmldsig#">
        <X509Data><X509Certificate>%s</X509Certificate></X509Data>
      </KeyInfo>
    </KeyDescriptor>
    %s
    <SingleSignOnService Binding="urn:oasis:names:tc:SAML:2.0:bindings:HTTP-Redirect" Location="https://idp.example.org/sso"/>
  </IDPSSODescriptor>
</EntityDescriptor>`, certData, slo)
}

func testCertBase64(t *testing.T) string {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "Test IdP"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("failed to create certificate: %v", err)
	}
	return base64.StdEncoding.EncodeToString(der)
}

func TestParse(t *testing.T) {
	certData := testCertBase64(t)

	idp, err := Parse([]byte(testDescriptor(certData, true)))
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if idp.EntityID != "https://idp.example.org/saml" {
		t.Errorf("EntityID = %q, want %q", idp.EntityID, "https://idp.example.org/saml")
	}
	if idp.Certificate == nil {
		t.Fatalf("Certificate = nil, want parsed signing certificate")
	}
	if idp.Certificate.Subject.CommonName != "Test IdP" {
		t.Errorf("certificate CN = %q, want %q", idp.Certificate.Subject.CommonName, "Test IdP")
	}
	if len(idp.SingleLogoutServices) != 1 {
		t.Fatalf("SingleLogoutServices has %d entries, want 1", len(idp.SingleLogoutServices))
	}
	if got := idp.SingleLogoutServices[0].Location; got != "https://idp.example.org/slo" {
		t.Errorf("SLO location = %q, want %q", got, "https://idp.example.org/slo")
	}
	if !idp.SupportsLogout() {
		t.Errorf("SupportsLogout() = false, want true")
	}
}

func TestParse_NoSLO(t *testing.T) {
	idp, err := Parse([]byte(testDescriptor(testCertBase64(t), false)))
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if idp.SupportsLogout() {
		t.Errorf("SupportsLogout() = true, want false")
	}
}

func TestParse_WrappedCertData(t *testing.T) {
	certData := testCertBase64(t)
	wrapped := "\n        " + certData[:40] + "\n        " + certData[40:] + "\n      "
	idp, err := Parse([]byte(testDescriptor(wrapped, false)))
	if err != nil {
		t.Fatalf("Parse() rejected whitespace-wrapped certificate data: %v", err)
	}
	if idp.Certificate == nil {
		t.Errorf("Certificate = nil, want parsed certificate")
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"not xml", "not xml at all"},
		{"no descriptor", `<EntityDescriptor xmlns="urn:oasis:names:tc:SAML:2.0:metadata" entityID="https://idp.example.org/saml"/>`},
		{"no certificate", `<EntityDescriptor xmlns="urn:oasis:names:tc:SAML:2.0:metadata" entityID="https://idp.example.org/saml">
			<IDPSSODescriptor protocolSupportEnumeration="urn:oasis:names:tc:SAML:2.0:protocol"/>
		</EntityDescriptor>`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Errorf("Parse() returned no error")
			}
		})
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idp-metadata.xml")
	if err := os.WriteFile(path, []byte(testDescriptor(testCertBase64(t), true)), 0o600); err != nil {
		t.Fatalf("failed to write metadata file: %v", err)
	}

	idp, err := NewFileSource(path, nil).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if idp.EntityID != "https://idp.example.org/saml" {
		t.Errorf("EntityID = %q, want %q", idp.EntityID, "https://idp.example.org/saml")
	}
}

func TestFileSource_Missing(t *testing.T) {
	if _, err := NewFileSource(filepath.Join(t.TempDir(), "missing.xml"), nil).Load(context.Background()); err == nil {
		t.Errorf("Load() returned no error for a missing file")
	}
}

func TestInMemorySource(t *testing.T) {
	idp := &domain.IdPMetadata{EntityID: "https://idp.example.org/saml"}
	got, err := NewInMemorySource(idp).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if got != idp {
		t.Errorf("Load() returned a different context than configured")
	}

	if _, err := NewInMemorySource(nil).Load(context.Background()); err == nil {
		t.Errorf("Load() returned no error for an unconfigured source")
	}
}
