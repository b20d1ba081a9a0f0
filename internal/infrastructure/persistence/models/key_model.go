package models

import (
	"time"

	"github.com/MGTheTrain/textseal/internal/domain/keys"
)

// KeyModel is the GORM database model for key catalog entries
type KeyModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	KeyPairID       string    `gorm:"not null;index;type:uuid"`
	Algorithm       string    `gorm:"not null;index;type:varchar(20)"`
	Type            string    `gorm:"not null;type:varchar(20)"`
	FilePath        string    `gorm:"not null;type:varchar(1024)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeyModel) TableName() string {
	return "key_catalog"
}

// ToDomain converts GORM model to domain entity
func (m *KeyModel) ToDomain() *keys.KeyMeta {
	return &keys.KeyMeta{
		ID:              m.ID,
		KeyPairID:       m.KeyPairID,
		Algorithm:       m.Algorithm,
		Type:            m.Type,
		FilePath:        m.FilePath,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyModel) FromDomain(k *keys.KeyMeta) {
	m.ID = k.ID
	m.KeyPairID = k.KeyPairID
	m.Algorithm = k.Algorithm
	m.Type = k.Type
	m.FilePath = k.FilePath
	m.DateTimeCreated = k.DateTimeCreated
}
