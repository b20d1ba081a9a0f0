package textcrypto

import (
	"fmt"
	"strings"
)

// SignFormat selects the signing algorithm. The set is closed.
type SignFormat int

const (
	// FormatBlake3 is a BLAKE3 keyed hash over a shared 32-byte key.
	FormatBlake3 SignFormat = iota
	// FormatEd25519 is an Ed25519 signature.
	FormatEd25519
)

// SignFormats lists every supported format.
var SignFormats = []SignFormat{FormatBlake3, FormatEd25519}

// String returns the format name as used on the command line.
func (f SignFormat) String() string {
	switch f {
	case FormatBlake3:
		return "blake3"
	case FormatEd25519:
		return "ed25519"
	default:
		return fmt.Sprintf("SignFormat(%d)", int(f))
	}
}

// ParseSignFormat parses a format name, case-insensitively.
func ParseSignFormat(s string) (SignFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blake3":
		return FormatBlake3, nil
	case "ed25519":
		return FormatEd25519, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Set implements pflag.Value.
func (f *SignFormat) Set(s string) error {
	parsed, err := ParseSignFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *SignFormat) Type() string {
	return "format"
}
