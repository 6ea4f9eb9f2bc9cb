package metadata

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/blen-desta/saml-conformance/internal/core/domain"
	"github.com/blen-desta/saml-conformance/internal/core/ports"
)

// FileSource loads identity provider metadata from a local EntityDescriptor
// file.
type FileSource struct {
	path   string
	logger *zap.Logger
}

// NewFileSource creates a file-based metadata source.
func NewFileSource(path string, logger *zap.Logger) *FileSource {
	return &FileSource{path: path, logger: logger}
}

// Load reads and parses the metadata file.
func (s *FileSource) Load(ctx context.Context) (*domain.IdPMetadata, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read metadata file: %w", err)
	}
	idp, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("metadata file %s: %w", s.path, err)
	}
	if s.logger != nil {
		s.logger.Info("metadata loaded",
			zap.String("path", s.path),
			zap.String("entity_id", idp.EntityID),
			zap.Int("slo_endpoints", len(idp.SingleLogoutServices)),
		)
	}
	return idp, nil
}

var _ ports.MetadataSource = (*FileSource)(nil)
