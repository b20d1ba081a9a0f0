package textcrypto

import "io"

// Signer produces a signature over a whole message.
type Signer interface {
	// Sign reads r to exhaustion and returns the signature of its content.
	// A read failure is returned wrapped in ErrIO and no signature is produced.
	Sign(r io.Reader) ([]byte, error)
}

// Verifier checks a signature over a whole message.
type Verifier interface {
	// Verify reads r to exhaustion and reports whether sig is valid for its content.
	// It returns false with a nil error for a well-formed signature that does not verify,
	// and ErrInvalidSignature when sig cannot be parsed at all.
	Verify(r io.Reader, sig []byte) (bool, error)
}

// AEADProcessor encrypts and decrypts self-contained records of the form
// nonce || ciphertext || tag.
//
// Nonces are drawn at random for every Encrypt call and never tracked. With 96-bit
// random nonces the collision probability stays negligible only while the number of
// records per key is small; keep it far below 2^32 and generate a new key otherwise.
type AEADProcessor interface {
	// Encrypt seals plaintext under a fresh random nonce.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt opens a record produced by Encrypt. Any truncation or tampering
	// yields ErrAuthenticationFailed and no plaintext.
	Decrypt(record []byte) ([]byte, error)
}

// KeyGenerator creates new key material.
type KeyGenerator interface {
	// GenerateMACKey returns a new 32-byte BLAKE3 key.
	GenerateMACKey() ([]byte, error)

	// GenerateKeyPair returns a new Ed25519 seed and its verifying key.
	GenerateKeyPair() (signingKey, verifyingKey []byte, err error)

	// Generate returns the key artifacts of format keyed by artifact name.
	Generate(format SignFormat) (GeneratedKeys, error)
}

// GeneratedKeys maps artifact names (e.g. "ed25519.sk") to raw key bytes.
// No header or metadata is added to the bytes.
type GeneratedKeys map[string][]byte
