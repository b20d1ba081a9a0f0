//go:build integration
// +build integration

package app

import (
	"context"
	"os"
	"testing"

	"github.com/MGTheTrain/textseal/internal/domain/keys"
	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
	"github.com/MGTheTrain/textseal/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textseal/internal/infrastructure/persistence"
	"github.com/MGTheTrain/textseal/internal/pkg/config"
	"github.com/MGTheTrain/textseal/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyServices_GenerateAndList(t *testing.T) {
	ctx := context.Background()
	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, config.SqliteDbType)

	generator, err := cryptography.NewKeyGenerator(nil, logger)
	require.NoError(t, err)
	generationService, err := NewKeyGenerationService(generator, dbContext.KeyRepo, logger)
	require.NoError(t, err)
	metadataService, err := NewKeyMetadataService(dbContext.KeyRepo, logger)
	require.NoError(t, err)

	_, err = generationService.Generate(ctx, textcrypto.FormatBlake3, t.TempDir())
	require.NoError(t, err)
	pair, err := generationService.Generate(ctx, textcrypto.FormatEd25519, t.TempDir())
	require.NoError(t, err)

	all, err := metadataService.List(ctx, keys.NewKeyQuery())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	edKeys, err := metadataService.List(ctx, &keys.KeyQuery{Algorithm: "ed25519"})
	require.NoError(t, err)
	assert.Len(t, edKeys, 2)

	require.NoError(t, metadataService.DeleteByID(ctx, pair[0].ID))
	_, err = metadataService.GetByID(ctx, pair[0].ID)
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)
}

func TestKeyGenerationService_CatalogFailureLeavesNoEntries(t *testing.T) {
	ctx := context.Background()
	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, config.SqliteDbType)

	// ed25519.pk sorts before ed25519.sk, so the public key row is inserted first
	require.NoError(t, dbContext.DB.Exec(`CREATE TRIGGER reject_private_keys BEFORE INSERT ON key_catalog
		WHEN NEW.type = 'private' BEGIN SELECT RAISE(ABORT, 'database is locked'); END`).Error)

	generator, err := cryptography.NewKeyGenerator(nil, logger)
	require.NoError(t, err)
	generationService, err := NewKeyGenerationService(generator, dbContext.KeyRepo, logger)
	require.NoError(t, err)

	dir := t.TempDir()
	keyMetas, err := generationService.Generate(ctx, textcrypto.FormatEd25519, dir)
	assert.Nil(t, keyMetas)
	assert.ErrorContains(t, err, "database is locked")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	all, err := dbContext.KeyRepo.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}
