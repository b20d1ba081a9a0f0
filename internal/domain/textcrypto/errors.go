package textcrypto

import "errors"

var (
	// ErrInvalidKey is returned for key material of the wrong length or that cannot be parsed.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidSignature is returned for a signature that is structurally malformed.
	// A well-formed signature that does not verify is reported as false, not as this error.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrAuthenticationFailed is returned when an encrypted record is truncated or fails authentication.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrMalformedEncoding is returned when text cannot be decoded into bytes.
	ErrMalformedEncoding = errors.New("malformed encoding")

	// ErrIO wraps failures of the underlying reader.
	ErrIO = errors.New("io failure")

	// ErrInvalidToken is returned for a token that is malformed, expired, wrongly signed
	// or issued for another audience or subject.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnsupportedFormat is returned for an unknown signing format name.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
