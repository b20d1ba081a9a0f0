package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/MGTheTrain/textseal/internal/domain/keys"
	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
	"github.com/MGTheTrain/textseal/internal/pkg/logger"

	"github.com/google/uuid"
)

// keyFileMode keeps generated key files readable by their owner only
const keyFileMode = 0o600

// keyGenerationService implements the KeyGenerationService interface
type keyGenerationService struct {
	generator textcrypto.KeyGenerator
	keyRepo   keys.KeyRepository
	logger    logger.Logger
}

// NewKeyGenerationService creates a new keyGenerationService instance.
// keyRepo may be nil, in which case generated keys are only written to disk.
func NewKeyGenerationService(generator textcrypto.KeyGenerator, keyRepo keys.KeyRepository, logger logger.Logger) (keys.KeyGenerationService, error) {
	if generator == nil {
		return nil, fmt.Errorf("key generator is required")
	}
	return &keyGenerationService{
		generator: generator,
		keyRepo:   keyRepo,
		logger:    logger,
	}, nil
}

// Generate writes the artifacts of format into dir as <uuid>-<artifact> files.
// Artifacts of one call share a KeyPairID and are recorded in the catalog as one batch.
// On failure the files written so far are removed and no catalog entry is kept.
func (s *keyGenerationService) Generate(ctx context.Context, format textcrypto.SignFormat, dir string) ([]*keys.KeyMeta, error) {
	artifacts, err := s.generator.Generate(format)
	if err != nil {
		return nil, fmt.Errorf("failed to generate keys: %w", err)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(artifacts))
	for name := range artifacts {
		names = append(names, name)
	}
	sort.Strings(names)

	keyPairID := uuid.NewString()
	created := time.Now().UTC()

	var keyMetas []*keys.KeyMeta
	var written []string
	cleanup := func() {
		for _, path := range written {
			if err := os.Remove(path); err != nil {
				s.logger.Warn("Failed to remove key file ", path, ": ", err)
			}
		}
	}

	for _, name := range names {
		id := uuid.NewString()
		path := filepath.Join(dir, fmt.Sprintf("%s-%s", id, name))

		if err := os.WriteFile(path, artifacts[name], keyFileMode); err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to write key file %s: %w", path, err)
		}
		written = append(written, path)

		keyMetas = append(keyMetas, &keys.KeyMeta{
			ID:              id,
			KeyPairID:       keyPairID,
			Algorithm:       format.String(),
			Type:            textcrypto.ArtifactKeyType(name),
			FilePath:        path,
			DateTimeCreated: created,
		})
	}

	if s.keyRepo != nil {
		if err := s.keyRepo.CreateBatch(ctx, keyMetas); err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to record key metadata: %w", err)
		}
	}

	for _, keyMeta := range keyMetas {
		s.logger.Info("Wrote ", format.String(), " ", keyMeta.Type, " key to ", keyMeta.FilePath)
	}

	return keyMetas, nil
}

// keyMetadataService implements the KeyMetadataService interface to manage the key catalog.
type keyMetadataService struct {
	keyRepo keys.KeyRepository
	logger  logger.Logger
}

// NewKeyMetadataService creates a new keyMetadataService instance
func NewKeyMetadataService(keyRepo keys.KeyRepository, logger logger.Logger) (keys.KeyMetadataService, error) {
	if keyRepo == nil {
		return nil, fmt.Errorf("key repository is required")
	}
	return &keyMetadataService{
		keyRepo: keyRepo,
		logger:  logger,
	}, nil
}

// List retrieves all key metadata based on a query.
func (s *keyMetadataService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	keyMetas, err := s.keyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list key metadata: %w", err)
	}

	return keyMetas, nil
}

// GetByID retrieves the metadata of a key by its ID.
func (s *keyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	keyMeta, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get key metadata: %w", err)
	}

	return keyMeta, nil
}

// DeleteByID deletes the catalog entry of a key by its ID.
func (s *keyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	if err := s.keyRepo.DeleteByID(ctx, keyID); err != nil {
		return fmt.Errorf("failed to delete key metadata: %w", err)
	}

	s.logger.Info("Removed key ", keyID, " from the catalog")
	return nil
}
