package token

import "context"

// MetadataResolver resolves external metadata for a token. This is an
// extension point; the engine itself carries no metadata.
type MetadataResolver interface {
	// ResolveURI returns the metadata URI for a token, or "" when there is none.
	ResolveURI(ctx context.Context, tokenID uint64) (string, error)
}

// NoMetadataResolver is the default resolver: every token has no metadata.
type NoMetadataResolver struct{}

func NewNoMetadataResolver() *NoMetadataResolver {
	return &NoMetadataResolver{}
}

func (NoMetadataResolver) ResolveURI(ctx context.Context, tokenID uint64) (string, error) {
	return "", nil
}
