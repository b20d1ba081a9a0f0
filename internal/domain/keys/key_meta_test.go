//go:build unit
// +build unit

package keys

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validKeyMeta() KeyMeta {
	return KeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       uuid.NewString(),
		Algorithm:       "ed25519",
		Type:            "private",
		FilePath:        "/tmp/keys/ed25519.sk",
		DateTimeCreated: time.Now(),
	}
}

func TestKeyMetaValidation(t *testing.T) {
	valid := validKeyMeta()
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name     string
		mutate   func(k *KeyMeta)
		contains string
	}{
		{"missing id", func(k *KeyMeta) { k.ID = "" }, "Field: ID, Tag: required"},
		{"id not a uuid", func(k *KeyMeta) { k.ID = "key-1" }, "Field: ID, Tag: uuid4"},
		{"unknown algorithm", func(k *KeyMeta) { k.Algorithm = "rsa" }, "Field: Algorithm, Tag: signformat"},
		{"unknown type", func(k *KeyMeta) { k.Type = "shared" }, "Field: Type, Tag: oneof"},
		{"missing path", func(k *KeyMeta) { k.FilePath = "" }, "Field: FilePath, Tag: required"},
		{"missing creation time", func(k *KeyMeta) { k.DateTimeCreated = time.Time{} }, "Field: DateTimeCreated, Tag: required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := validKeyMeta()
			tt.mutate(&k)

			err := k.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestKeyQueryValidation(t *testing.T) {
	assert.NoError(t, NewKeyQuery().Validate())
	assert.NoError(t, (&KeyQuery{}).Validate())
	assert.NoError(t, (&KeyQuery{Algorithm: "blake3", Type: "symmetric", Limit: 10}).Validate())

	err := (&KeyQuery{Algorithm: "aes"}).Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Algorithm")

	err = (&KeyQuery{SortBy: "file_path; DROP TABLE keys"}).Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Field: SortBy")

	err = (&KeyQuery{SortOrder: "sideways"}).Validate()
	assert.Error(t, err)
}
