//go:build unit
// +build unit

package cryptography

import (
	"strings"
	"testing"

	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
	"github.com/MGTheTrain/textseal/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviders(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	generator := setupKeyGenerator(t)

	macKey, err := generator.GenerateMACKey()
	require.NoError(t, err)
	sk, pk, err := generator.GenerateKeyPair()
	require.NoError(t, err)

	tests := []struct {
		format      textcrypto.SignFormat
		signingKey  []byte
		verifyKey   []byte
		signatureSz int
	}{
		{textcrypto.FormatBlake3, macKey, macKey, textcrypto.MACSize},
		{textcrypto.FormatEd25519, sk, pk, textcrypto.SignatureSize},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			signer, err := NewSigner(tt.format, tt.signingKey, logger)
			require.NoError(t, err)
			verifier, err := NewVerifier(tt.format, tt.verifyKey, logger)
			require.NoError(t, err)

			sig, err := signer.Sign(strings.NewReader("message"))
			require.NoError(t, err)
			assert.Len(t, sig, tt.signatureSz)

			valid, err := verifier.Verify(strings.NewReader("message"), sig)
			require.NoError(t, err)
			assert.True(t, valid)

			valid, err = verifier.Verify(strings.NewReader("other message"), sig)
			require.NoError(t, err)
			assert.False(t, valid)
		})
	}

	t.Run("UnsupportedFormat", func(t *testing.T) {
		_, err := NewSigner(textcrypto.SignFormat(7), macKey, logger)
		assert.ErrorIs(t, err, textcrypto.ErrUnsupportedFormat)

		_, err = NewVerifier(textcrypto.SignFormat(7), macKey, logger)
		assert.ErrorIs(t, err, textcrypto.ErrUnsupportedFormat)
	})
}
