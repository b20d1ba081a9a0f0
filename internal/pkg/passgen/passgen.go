// Package passgen generates random passwords from a restricted alphabet that avoids
// look-alike characters.
package passgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/go-playground/validator/v10"
	"github.com/nbutton23/zxcvbn-go"
)

// Character classes. Ambiguous glyphs (c, i, k, l, o, p, s, u, v, w, x, y, z and their upper cases) are left out.
const (
	LowerChars  = "abdefghjmnqrt"
	UpperChars  = "ABDEFGHJMNQRT"
	NumberChars = "0123456789"
	SymbolChars = "!@#$%^&*_:"
)

// DefaultLength is the password length used when none is given.
const DefaultLength = 16

// ErrNoCharacterClass is returned when every character class is disabled.
var ErrNoCharacterClass = errors.New("at least one character class must be enabled")

// Options selects the length and character classes of a password.
type Options struct {
	Length   int `validate:"gte=4,lte=128"`
	NoLower  bool
	NoUpper  bool
	NoNumber bool
	NoSymbol bool
}

// Validate checks the password options
func (o *Options) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return fmt.Errorf("validation failed for password options: %w", err)
	}
	if o.NoLower && o.NoUpper && o.NoNumber && o.NoSymbol {
		return ErrNoCharacterClass
	}
	return nil
}

// Generator draws passwords from a random source.
type Generator struct {
	random io.Reader
}

// NewGenerator creates a Generator reading from random; nil uses crypto/rand.
func NewGenerator(random io.Reader) *Generator {
	if random == nil {
		random = rand.Reader
	}
	return &Generator{random: random}
}

// Generate returns a password holding at least one character of every enabled class,
// padded from the union of the enabled classes and shuffled.
func (g *Generator) Generate(opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	var classes []string
	if !opts.NoLower {
		classes = append(classes, LowerChars)
	}
	if !opts.NoUpper {
		classes = append(classes, UpperChars)
	}
	if !opts.NoNumber {
		classes = append(classes, NumberChars)
	}
	if !opts.NoSymbol {
		classes = append(classes, SymbolChars)
	}

	pass := make([]byte, 0, opts.Length)
	var all string
	for _, class := range classes {
		all += class
		c, err := g.choose(class)
		if err != nil {
			return "", err
		}
		pass = append(pass, c)
	}

	for len(pass) < opts.Length {
		c, err := g.choose(all)
		if err != nil {
			return "", err
		}
		pass = append(pass, c)
	}

	if err := g.shuffle(pass); err != nil {
		return "", err
	}

	return string(pass), nil
}

func (g *Generator) choose(chars string) (byte, error) {
	i, err := g.intn(len(chars))
	if err != nil {
		return 0, err
	}
	return chars[i], nil
}

// shuffle is a Fisher-Yates shuffle driven by the generator's random source.
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random source: %w", err)
	}
	return int(v.Int64()), nil
}

// Generate returns a password drawn from crypto/rand.
func Generate(opts Options) (string, error) {
	return NewGenerator(nil).Generate(opts)
}

// Strength returns the zxcvbn score of pass, from 0 (weak) to 4 (strong).
func Strength(pass string) int {
	return zxcvbn.PasswordStrength(pass, nil).Score
}
