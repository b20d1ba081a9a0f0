package cryptography

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
	"github.com/MGTheTrain/textseal/internal/pkg/logger"
	"golang.org/x/crypto/chacha20poly1305"
)

// chachaProcessor implements AEADProcessor with ChaCha20-Poly1305
type chachaProcessor struct {
	aead   cipher.AEAD
	random io.Reader
	logger logger.Logger
}

// NewChaChaProcessor creates a ChaCha20-Poly1305 processor for a 32-byte key.
// Nonces are read from random; a nil random uses crypto/rand.
func NewChaChaProcessor(key []byte, random io.Reader, logger logger.Logger) (textcrypto.AEADProcessor, error) {
	if len(key) != textcrypto.AEADKeySize {
		return nil, fmt.Errorf("%w: chacha20-poly1305 key must be exactly %d bytes, got %d", textcrypto.ErrInvalidKey, textcrypto.AEADKeySize, len(key))
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", textcrypto.ErrInvalidKey, err)
	}

	if random == nil {
		random = rand.Reader
	}

	return &chachaProcessor{
		aead:   aead,
		random: random,
		logger: logger,
	}, nil
}

// Encrypt returns nonce || ciphertext || tag.
func (p *chachaProcessor) Encrypt(plaintext []byte) ([]byte, error) {
	record := make([]byte, textcrypto.NonceSize, textcrypto.NonceSize+len(plaintext)+textcrypto.TagSize)
	if _, err := io.ReadFull(p.random, record); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	record = p.aead.Seal(record, record[:textcrypto.NonceSize], plaintext, nil)

	p.logger.Debug("ChaCha20-Poly1305 encryption succeeded for ", len(plaintext), " bytes")
	return record, nil
}

// Decrypt splits the nonce off record and opens the remainder.
func (p *chachaProcessor) Decrypt(record []byte) ([]byte, error) {
	if len(record) < textcrypto.MinRecordSize {
		return nil, fmt.Errorf("%w: record must be at least %d bytes, got %d", textcrypto.ErrAuthenticationFailed, textcrypto.MinRecordSize, len(record))
	}

	nonce, sealed := record[:textcrypto.NonceSize], record[textcrypto.NonceSize:]
	plaintext, err := p.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", textcrypto.ErrAuthenticationFailed, err)
	}

	p.logger.Debug("ChaCha20-Poly1305 decryption succeeded")
	return plaintext, nil
}
