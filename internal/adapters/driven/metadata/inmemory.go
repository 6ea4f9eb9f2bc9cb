package metadata

import (
	"context"
	"fmt"

	"github.com/blen-desta/saml-conformance/internal/core/domain"
	"github.com/blen-desta/saml-conformance/internal/core/ports"
)

// InMemorySource serves a literal identity provider context. Used when the
// harness already knows the entity identifier and certificate, and in tests.
type InMemorySource struct {
	idp *domain.IdPMetadata
}

// NewInMemorySource creates a source serving the given context.
func NewInMemorySource(idp *domain.IdPMetadata) *InMemorySource {
	return &InMemorySource{idp: idp}
}

// Load returns the configured identity provider context.
func (s *InMemorySource) Load(ctx context.Context) (*domain.IdPMetadata, error) {
	if s.idp == nil {
		return nil, fmt.Errorf("no identity provider configured")
	}
	return s.idp, nil
}

var _ ports.MetadataSource = (*InMemorySource)(nil)
