package v1

import (
	"time"

	"github.com/MGTheTrain/textseal/internal/domain/keys"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// KeyMetaResponse is the catalog entry of a key. The file path stays local to the host.
type KeyMetaResponse struct {
	ID              string    `json:"id"`
	KeyPairID       string    `json:"key_pair_id"`
	Algorithm       string    `json:"algorithm"`
	Type            string    `json:"type"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

func newKeyMetaResponse(keyMeta *keys.KeyMeta) KeyMetaResponse {
	return KeyMetaResponse{
		ID:              keyMeta.ID,
		KeyPairID:       keyMeta.KeyPairID,
		Algorithm:       keyMeta.Algorithm,
		Type:            keyMeta.Type,
		DateTimeCreated: keyMeta.DateTimeCreated,
	}
}
