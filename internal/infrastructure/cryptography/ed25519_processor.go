package cryptography

import (
	"crypto/ed25519"
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
	"github.com/MGTheTrain/textseal/internal/pkg/logger"
)

// ed25519Signer signs messages with an Ed25519 private key
type ed25519Signer struct {
	privateKey ed25519.PrivateKey
	logger     logger.Logger
}

// NewEd25519Signer creates a signer from a 32-byte Ed25519 seed.
// Only the first 32 bytes of key are used.
func NewEd25519Signer(key []byte, logger logger.Logger) (textcrypto.Signer, error) {
	seed, err := loadKey32(key, "ed25519 signing key")
	if err != nil {
		return nil, err
	}
	return &ed25519Signer{
		privateKey: ed25519.NewKeyFromSeed(seed[:]),
		logger:     logger,
	}, nil
}

// Sign returns the 64-byte Ed25519 signature of the message.
func (s *ed25519Signer) Sign(r io.Reader) ([]byte, error) {
	msg, err := readMessage(r)
	if err != nil {
		return nil, err
	}

	sig := ed25519.Sign(s.privateKey, msg)

	s.logger.Debug("Ed25519 signing succeeded for ", len(msg), " bytes")
	return sig, nil
}

// ed25519Verifier verifies Ed25519 signatures
type ed25519Verifier struct {
	publicKey ed25519.PublicKey
	logger    logger.Logger
}

// NewEd25519Verifier creates a verifier from a 32-byte Ed25519 public key.
// The key must decode to a point on the curve.
func NewEd25519Verifier(key []byte, logger logger.Logger) (textcrypto.Verifier, error) {
	raw, err := loadKey32(key, "ed25519 verifying key")
	if err != nil {
		return nil, err
	}

	if _, err := new(edwards25519.Point).SetBytes(raw[:]); err != nil {
		return nil, fmt.Errorf("%w: ed25519 verifying key is not a valid curve point", textcrypto.ErrInvalidKey)
	}

	return &ed25519Verifier{
		publicKey: ed25519.PublicKey(raw[:]),
		logger:    logger,
	}, nil
}

// Verify reports whether sig is a valid signature of the message.
func (v *ed25519Verifier) Verify(r io.Reader, sig []byte) (bool, error) {
	if len(sig) != textcrypto.SignatureSize {
		return false, fmt.Errorf("%w: ed25519 signature must be %d bytes, got %d", textcrypto.ErrInvalidSignature, textcrypto.SignatureSize, len(sig))
	}

	msg, err := readMessage(r)
	if err != nil {
		return false, err
	}

	valid := ed25519.Verify(v.publicKey, msg, sig)
	v.logger.Debug("Ed25519 verification finished, valid: ", valid)
	return valid, nil
}
