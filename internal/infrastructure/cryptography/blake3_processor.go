package cryptography

import (
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
	"github.com/MGTheTrain/textseal/internal/pkg/logger"
	"github.com/zeebo/blake3"
)

// blake3Signer signs messages with a BLAKE3 keyed hash
type blake3Signer struct {
	key    [textcrypto.MACKeySize]byte
	logger logger.Logger
}

// NewBlake3Signer creates a BLAKE3 MAC signer from the first 32 bytes of key.
func NewBlake3Signer(key []byte, logger logger.Logger) (textcrypto.Signer, error) {
	k, err := loadKey32(key, "blake3 key")
	if err != nil {
		return nil, err
	}
	return &blake3Signer{key: k, logger: logger}, nil
}

// Sign returns the 32-byte keyed hash of the message.
func (s *blake3Signer) Sign(r io.Reader) ([]byte, error) {
	msg, err := readMessage(r)
	if err != nil {
		return nil, err
	}

	sig, err := keyedHash(&s.key, msg)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("BLAKE3 signing succeeded for ", len(msg), " bytes")
	return sig, nil
}

// blake3Verifier verifies BLAKE3 keyed hashes
type blake3Verifier struct {
	key    [textcrypto.MACKeySize]byte
	logger logger.Logger
}

// NewBlake3Verifier creates a BLAKE3 MAC verifier from the first 32 bytes of key.
func NewBlake3Verifier(key []byte, logger logger.Logger) (textcrypto.Verifier, error) {
	k, err := loadKey32(key, "blake3 key")
	if err != nil {
		return nil, err
	}
	return &blake3Verifier{key: k, logger: logger}, nil
}

// Verify recomputes the keyed hash and compares it to sig in constant time.
func (v *blake3Verifier) Verify(r io.Reader, sig []byte) (bool, error) {
	if len(sig) != textcrypto.MACSize {
		return false, fmt.Errorf("%w: blake3 signature must be %d bytes, got %d", textcrypto.ErrInvalidSignature, textcrypto.MACSize, len(sig))
	}

	msg, err := readMessage(r)
	if err != nil {
		return false, err
	}

	expected, err := keyedHash(&v.key, msg)
	if err != nil {
		return false, err
	}

	valid := subtle.ConstantTimeCompare(expected, sig) == 1
	v.logger.Debug("BLAKE3 verification finished, valid: ", valid)
	return valid, nil
}

func keyedHash(key *[textcrypto.MACKeySize]byte, msg []byte) ([]byte, error) {
	h, err := blake3.NewKeyed(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", textcrypto.ErrInvalidKey, err)
	}
	_, _ = h.Write(msg)
	return h.Sum(nil), nil
}
