package ports

import (
	"context"

	"github.com/blen-desta/saml-conformance/internal/core/domain"
)

// MetadataSource is the port interface for obtaining the identity provider
// context a verification session runs against.
type MetadataSource interface {
	// Load returns the identity provider metadata. The returned value is
	// immutable and may be shared across sessions.
	Load(ctx context.Context) (*domain.IdPMetadata, error)
}
