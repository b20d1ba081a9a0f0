//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/MGTheTrain/textseal/internal/domain/keys"
	"github.com/stretchr/testify/assert"
)

func TestKeyModel_ToDomain(t *testing.T) {
	keyModel := &KeyModel{
		ID:              "test-id",
		KeyPairID:       "test-keypair-id",
		Algorithm:       "ed25519",
		Type:            "private",
		FilePath:        "/tmp/keys/test-id-ed25519.sk",
		DateTimeCreated: time.Now(),
	}

	keyMeta := keyModel.ToDomain()

	assert.Equal(t, keyModel.ID, keyMeta.ID)
	assert.Equal(t, keyModel.KeyPairID, keyMeta.KeyPairID)
	assert.Equal(t, keyModel.Algorithm, keyMeta.Algorithm)
	assert.Equal(t, keyModel.Type, keyMeta.Type)
	assert.Equal(t, keyModel.FilePath, keyMeta.FilePath)
	assert.Equal(t, keyModel.DateTimeCreated, keyMeta.DateTimeCreated)
}

func TestKeyModel_FromDomain(t *testing.T) {
	keyMeta := &keys.KeyMeta{
		ID:              "test-id",
		KeyPairID:       "test-keypair-id",
		Algorithm:       "blake3",
		Type:            "symmetric",
		FilePath:        "/tmp/keys/test-id-blake3.txt",
		DateTimeCreated: time.Now(),
	}

	keyModel := &KeyModel{}
	keyModel.FromDomain(keyMeta)

	assert.Equal(t, keyMeta.ID, keyModel.ID)
	assert.Equal(t, keyMeta.KeyPairID, keyModel.KeyPairID)
	assert.Equal(t, keyMeta.Algorithm, keyModel.Algorithm)
	assert.Equal(t, keyMeta.Type, keyModel.Type)
	assert.Equal(t, keyMeta.FilePath, keyModel.FilePath)
	assert.Equal(t, keyMeta.DateTimeCreated, keyModel.DateTimeCreated)
	assert.Equal(t, "key_catalog", keyModel.TableName())
}
