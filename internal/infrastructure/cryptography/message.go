package cryptography

import (
	"fmt"
	"io"

	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
)

// readMessage buffers the whole message. Messages are never signed in chunks.
func readMessage(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: no message reader", textcrypto.ErrIO)
	}
	msg, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read message: %w", textcrypto.ErrIO, err)
	}
	return msg, nil
}

// loadKey32 copies the first 32 bytes of key. Longer input (e.g. a key file with a
// trailing newline) is truncated, shorter input is rejected.
func loadKey32(key []byte, name string) ([32]byte, error) {
	var k [32]byte
	if len(key) < len(k) {
		return k, fmt.Errorf("%w: %s must be at least %d bytes, got %d", textcrypto.ErrInvalidKey, name, len(k), len(key))
	}
	copy(k[:], key[:len(k)])
	return k, nil
}
