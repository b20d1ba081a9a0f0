//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
	"github.com/MGTheTrain/textseal/internal/pkg/passgen"
	"github.com/MGTheTrain/textseal/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupKeyGenerator(t *testing.T) textcrypto.KeyGenerator {
	t.Helper()
	generator, err := NewKeyGenerator(nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return generator
}

func TestKeyGenerator(t *testing.T) {
	generator := setupKeyGenerator(t)

	t.Run("GenerateMACKey", func(t *testing.T) {
		key, err := generator.GenerateMACKey()
		require.NoError(t, err)
		assert.Len(t, key, textcrypto.MACKeySize)

		alphabet := passgen.LowerChars + passgen.UpperChars + passgen.NumberChars + passgen.SymbolChars
		for _, c := range key {
			assert.True(t, strings.ContainsRune(alphabet, rune(c)), "unexpected key byte %q", c)
		}

		other, err := generator.GenerateMACKey()
		require.NoError(t, err)
		assert.NotEqual(t, key, other)
	})

	t.Run("GeneratedMACKeySignsAndVerifies", func(t *testing.T) {
		key, err := generator.GenerateMACKey()
		require.NoError(t, err)

		signer, verifier := setupBlake3(t, key)
		sig, err := signer.Sign(strings.NewReader("hello"))
		require.NoError(t, err)

		valid, err := verifier.Verify(strings.NewReader("hello"), sig)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("GenerateKeyPair", func(t *testing.T) {
		sk, pk, err := generator.GenerateKeyPair()
		require.NoError(t, err)
		assert.Len(t, sk, textcrypto.SigningKeySize)
		assert.Len(t, pk, textcrypto.VerifyingKeySize)

		_, err = NewEd25519Verifier(pk, testutil.SetupTestLogger(t))
		assert.NoError(t, err)
	})

	t.Run("GenerateBlake3Artifacts", func(t *testing.T) {
		artifacts, err := generator.Generate(textcrypto.FormatBlake3)
		require.NoError(t, err)
		require.Len(t, artifacts, 1)
		assert.Len(t, artifacts[textcrypto.MACKeyArtifact], textcrypto.MACKeySize)
	})

	t.Run("GenerateEd25519Artifacts", func(t *testing.T) {
		artifacts, err := generator.Generate(textcrypto.FormatEd25519)
		require.NoError(t, err)
		require.Len(t, artifacts, 2)

		signer, err := NewSigner(textcrypto.FormatEd25519, artifacts[textcrypto.SigningKeyArtifact], testutil.SetupTestLogger(t))
		require.NoError(t, err)
		verifier, err := NewVerifier(textcrypto.FormatEd25519, artifacts[textcrypto.VerifyingKeyArtifact], testutil.SetupTestLogger(t))
		require.NoError(t, err)

		sig, err := signer.Sign(strings.NewReader("round trip"))
		require.NoError(t, err)
		valid, err := verifier.Verify(strings.NewReader("round trip"), sig)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("GenerateUnsupportedFormat", func(t *testing.T) {
		_, err := generator.Generate(textcrypto.SignFormat(42))
		assert.ErrorIs(t, err, textcrypto.ErrUnsupportedFormat)
	})
}

func TestKeyGenerator_InjectedRandomSource(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	first, err := NewKeyGenerator(testutil.NewDeterministicReader(3), logger)
	require.NoError(t, err)
	second, err := NewKeyGenerator(testutil.NewDeterministicReader(3), logger)
	require.NoError(t, err)

	sk1, pk1, err := first.GenerateKeyPair()
	require.NoError(t, err)
	sk2, pk2, err := second.GenerateKeyPair()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(sk1, sk2))
	assert.True(t, bytes.Equal(pk1, pk2))

	failing, err := NewKeyGenerator(&testutil.FailingReader{}, logger)
	require.NoError(t, err)

	_, _, err = failing.GenerateKeyPair()
	assert.ErrorIs(t, err, testutil.ErrInjected)
	_, err = failing.GenerateMACKey()
	assert.ErrorIs(t, err, testutil.ErrInjected)
}
