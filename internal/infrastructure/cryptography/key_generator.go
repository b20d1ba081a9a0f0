package cryptography

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
	"github.com/MGTheTrain/textseal/internal/pkg/logger"
	"github.com/MGTheTrain/textseal/internal/pkg/passgen"
)

// keyGenerator implements textcrypto.KeyGenerator
type keyGenerator struct {
	random    io.Reader
	passwords *passgen.Generator
	logger    logger.Logger
}

// NewKeyGenerator creates a key generator drawing from random; nil uses crypto/rand.
func NewKeyGenerator(random io.Reader, logger logger.Logger) (textcrypto.KeyGenerator, error) {
	if random == nil {
		random = rand.Reader
	}
	return &keyGenerator{
		random:    random,
		passwords: passgen.NewGenerator(random),
		logger:    logger,
	}, nil
}

// GenerateMACKey draws a 32-character password over all character classes and uses
// its bytes as the key.
func (g *keyGenerator) GenerateMACKey() ([]byte, error) {
	pass, err := g.passwords.Generate(passgen.Options{Length: textcrypto.MACKeySize})
	if err != nil {
		return nil, fmt.Errorf("failed to generate blake3 key: %w", err)
	}

	g.logger.Info("Generated BLAKE3 key")
	return []byte(pass), nil
}

// GenerateKeyPair draws an Ed25519 seed and derives its verifying key.
func (g *keyGenerator) GenerateKeyPair() ([]byte, []byte, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(g.random)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate ed25519 key pair: %w", err)
	}

	g.logger.Info("Generated Ed25519 key pair")
	return privateKey.Seed(), []byte(publicKey), nil
}

// Generate returns the artifacts of format.
func (g *keyGenerator) Generate(format textcrypto.SignFormat) (textcrypto.GeneratedKeys, error) {
	switch format {
	case textcrypto.FormatBlake3:
		key, err := g.GenerateMACKey()
		if err != nil {
			return nil, err
		}
		return textcrypto.GeneratedKeys{textcrypto.MACKeyArtifact: key}, nil
	case textcrypto.FormatEd25519:
		signingKey, verifyingKey, err := g.GenerateKeyPair()
		if err != nil {
			return nil, err
		}
		return textcrypto.GeneratedKeys{
			textcrypto.SigningKeyArtifact:   signingKey,
			textcrypto.VerifyingKeyArtifact: verifyingKey,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", textcrypto.ErrUnsupportedFormat, format)
	}
}
