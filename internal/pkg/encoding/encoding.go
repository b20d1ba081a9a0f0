// Package encoding converts signatures and encrypted records to and from printable text.
package encoding

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
)

// Base64Format selects a base64 alphabet.
type Base64Format int

const (
	// Standard is the RFC 4648 alphabet with padding.
	Standard Base64Format = iota
	// URLSafe is the URL and filename safe alphabet without padding.
	URLSafe
)

// String returns the format name as used on the command line.
func (f Base64Format) String() string {
	switch f {
	case Standard:
		return "standard"
	case URLSafe:
		return "urlsafe"
	default:
		return fmt.Sprintf("Base64Format(%d)", int(f))
	}
}

// ParseBase64Format parses a format name, case-insensitively.
func ParseBase64Format(s string) (Base64Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return Standard, nil
	case "urlsafe":
		return URLSafe, nil
	default:
		return 0, fmt.Errorf("%w: %q", textcrypto.ErrUnsupportedFormat, s)
	}
}

// Set implements pflag.Value.
func (f *Base64Format) Set(s string) error {
	parsed, err := ParseBase64Format(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Base64Format) Type() string {
	return "base64-format"
}

func (f Base64Format) encoding() (*base64.Encoding, error) {
	switch f {
	case Standard:
		return base64.StdEncoding.Strict(), nil
	case URLSafe:
		return base64.RawURLEncoding.Strict(), nil
	default:
		return nil, fmt.Errorf("%w: %s", textcrypto.ErrUnsupportedFormat, f)
	}
}

// Encode returns b as base64 text in format.
func Encode(format Base64Format, b []byte) (string, error) {
	enc, err := format.encoding()
	if err != nil {
		return "", err
	}
	return enc.EncodeToString(b), nil
}

// Decode parses base64 text in format. Characters outside the alphabet, line breaks
// included, and non-canonical padding are rejected with ErrMalformedEncoding.
func Decode(format Base64Format, s string) ([]byte, error) {
	enc, err := format.encoding()
	if err != nil {
		return nil, err
	}
	// the stdlib decoder skips \r and \n
	if strings.ContainsAny(s, "\r\n") {
		return nil, fmt.Errorf("%w: unexpected line break", textcrypto.ErrMalformedEncoding)
	}
	b, err := enc.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", textcrypto.ErrMalformedEncoding, err)
	}
	return b, nil
}

// EncodeSignature renders a signature or MAC as URL-safe base64 without padding.
func EncodeSignature(sig []byte) string {
	s, _ := Encode(URLSafe, sig)
	return s
}

// DecodeSignature parses the output of EncodeSignature.
func DecodeSignature(s string) ([]byte, error) {
	return Decode(URLSafe, s)
}

// EncodeCiphertext renders an encrypted record as standard padded base64.
func EncodeCiphertext(record []byte) string {
	s, _ := Encode(Standard, record)
	return s
}

// DecodeCiphertext parses the output of EncodeCiphertext.
func DecodeCiphertext(s string) ([]byte, error) {
	return Decode(Standard, s)
}
