package keys

import (
	"context"

	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
)

// KeyGenerationService generates key artifacts, writes them to a directory and
// records them in the key catalog when one is configured.
type KeyGenerationService interface {
	// Generate writes the artifacts of format into dir and returns their metadata.
	Generate(ctx context.Context, format textcrypto.SignFormat, dir string) ([]*KeyMeta, error)
}

// KeyMetadataService exposes the key catalog.
type KeyMetadataService interface {
	// List retrieves key metadata considering the query filter when set.
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)

	// GetByID retrieves the metadata of a key by its unique ID.
	GetByID(ctx context.Context, keyID string) (*KeyMeta, error)

	// DeleteByID removes the catalog entry of a key. The key file itself is left untouched.
	DeleteByID(ctx context.Context, keyID string) error
}

// KeyRepository defines the persistence operations of the key catalog
type KeyRepository interface {
	Create(ctx context.Context, key *KeyMeta) error
	// CreateBatch records all keys or none of them.
	CreateBatch(ctx context.Context, keys []*KeyMeta) error
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)
	GetByID(ctx context.Context, keyID string) (*KeyMeta, error)
	DeleteByID(ctx context.Context, keyID string) error
}
