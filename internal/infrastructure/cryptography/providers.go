package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
	"github.com/MGTheTrain/textseal/internal/pkg/logger"
)

// NewSigner returns the signer of format built from key.
func NewSigner(format textcrypto.SignFormat, key []byte, logger logger.Logger) (textcrypto.Signer, error) {
	switch format {
	case textcrypto.FormatBlake3:
		return NewBlake3Signer(key, logger)
	case textcrypto.FormatEd25519:
		return NewEd25519Signer(key, logger)
	default:
		return nil, fmt.Errorf("%w: %s", textcrypto.ErrUnsupportedFormat, format)
	}
}

// NewVerifier returns the verifier of format built from key.
// For ed25519 key is the verifying (public) key.
func NewVerifier(format textcrypto.SignFormat, key []byte, logger logger.Logger) (textcrypto.Verifier, error) {
	switch format {
	case textcrypto.FormatBlake3:
		return NewBlake3Verifier(key, logger)
	case textcrypto.FormatEd25519:
		return NewEd25519Verifier(key, logger)
	default:
		return nil, fmt.Errorf("%w: %s", textcrypto.ErrUnsupportedFormat, format)
	}
}
