package cryptography

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
	"github.com/MGTheTrain/textseal/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenAlgorithm is used when no algorithm is given.
const DefaultTokenAlgorithm = "HS256"

// jwtProcessor issues and verifies HMAC-signed tokens
type jwtProcessor struct {
	method *jwt.SigningMethodHMAC
	key    []byte
	now    func() time.Time
	logger logger.Logger
}

// NewJWTProcessor creates a TokenProcessor for HS256, HS384 or HS512 over key.
// The key must hold at least textcrypto.MinTokenKeySize bytes and is used as is.
func NewJWTProcessor(algorithm string, key []byte, logger logger.Logger) (textcrypto.TokenProcessor, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: token algorithm %q", textcrypto.ErrUnsupportedFormat, algorithm)
	}
	if len(key) < textcrypto.MinTokenKeySize {
		return nil, fmt.Errorf("%w: token key must be at least %d bytes, got %d", textcrypto.ErrInvalidKey, textcrypto.MinTokenKeySize, len(key))
	}

	return &jwtProcessor{
		method: method,
		key:    append([]byte(nil), key...),
		now:    time.Now,
		logger: logger,
	}, nil
}

// Encode signs claims with the configured algorithm.
func (p *jwtProcessor) Encode(claims textcrypto.TokenClaims) (string, error) {
	if err := validator.New().Struct(claims); err != nil {
		return "", fmt.Errorf("invalid token claims: %w", err)
	}

	token := jwt.NewWithClaims(p.method, jwt.RegisteredClaims{
		Audience:  jwt.ClaimStrings{claims.Audience},
		Subject:   claims.Subject,
		ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
	})

	signed, err := token.SignedString(p.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	p.logger.Debug("Issued ", p.method.Alg(), " token for subject ", claims.Subject, " expiring ", claims.ExpiresAt.UTC().Format(time.RFC3339))
	return signed, nil
}

// Verify parses token and checks it against audience and subject.
func (p *jwtProcessor) Verify(token, audience, subject string) (*textcrypto.TokenClaims, error) {
	if audience == "" || subject == "" {
		return nil, fmt.Errorf("%w: audience and subject are required", textcrypto.ErrInvalidToken)
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (interface{}, error) { return p.key, nil },
		jwt.WithValidMethods([]string{p.method.Alg()}),
		jwt.WithAudience(audience),
		jwt.WithSubject(subject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", textcrypto.ErrInvalidToken, err)
	}

	p.logger.Debug("Verified ", p.method.Alg(), " token for subject ", claims.Subject)
	return &textcrypto.TokenClaims{
		Audience:  audience,
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
