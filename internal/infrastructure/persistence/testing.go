//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/textseal/internal/domain/keys"
	"github.com/MGTheTrain/textseal/internal/pkg/config"
	"github.com/MGTheTrain/textseal/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestKeyTypeSymmetric = "symmetric"
	TestKeyTypePrivate   = "private"
	TestKeyTypePublic    = "public"

	TestAlgorithmBlake3  = "blake3"
	TestAlgorithmEd25519 = "ed25519"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB      *gorm.DB
	KeyRepo keys.KeyRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	keyRepo, err := NewGormKeyRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create key repository")

	return &TestContext{
		DB:      db,
		KeyRepo: keyRepo,
	}
}

// CreateTestKey creates a catalog entry for a symmetric BLAKE3 key
func CreateTestKey(t *testing.T) *keys.KeyMeta {
	t.Helper()

	return CreateTestKeyWithOptions(t, uuid.NewString(), TestKeyTypeSymmetric, TestAlgorithmBlake3)
}

// CreateTestKeyWithOptions creates a catalog entry with custom options
func CreateTestKeyWithOptions(t *testing.T, keyPairID, keyType, algorithm string) *keys.KeyMeta {
	t.Helper()

	id := uuid.NewString()
	return &keys.KeyMeta{
		ID:              id,
		KeyPairID:       keyPairID,
		Algorithm:       algorithm,
		Type:            keyType,
		FilePath:        "/tmp/keys/" + id,
		DateTimeCreated: time.Now(),
	}
}
