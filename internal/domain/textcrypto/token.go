package textcrypto

import "time"

// MinTokenKeySize is the smallest accepted HMAC secret for signing tokens.
const MinTokenKeySize = 32

// TokenClaims are the claims carried by an issued token.
type TokenClaims struct {
	Audience  string    `validate:"required"`
	Subject   string    `validate:"required"`
	ExpiresAt time.Time `validate:"required"`
}

// TokenProcessor issues and checks HMAC-signed JSON Web Tokens.
type TokenProcessor interface {
	// Encode signs claims into a compact token.
	Encode(claims TokenClaims) (string, error)

	// Verify checks signature, algorithm, expiry, audience and subject of token.
	// Every failure is reported as ErrInvalidToken.
	Verify(token, audience, subject string) (*TokenClaims, error)
}
