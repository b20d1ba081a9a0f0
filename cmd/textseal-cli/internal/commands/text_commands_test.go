//go:build unit
// +build unit

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
	"github.com/MGTheTrain/textseal/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKeys(t *testing.T, format string) map[string]string {
	t.Helper()

	out, err := execute(t, "", "text", "generate", "--format", format, "--output-path", t.TempDir())
	require.NoError(t, err)

	paths := map[string]string{}
	for _, path := range strings.Fields(out) {
		for _, artifact := range []string{textcrypto.MACKeyArtifact, textcrypto.SigningKeyArtifact, textcrypto.VerifyingKeyArtifact} {
			if strings.HasSuffix(path, "-"+artifact) {
				paths[artifact] = path
			}
		}
	}
	return paths
}

func TestTextCommands_Blake3(t *testing.T) {
	paths := generateKeys(t, "blake3")
	require.Len(t, paths, 1)
	key := paths[textcrypto.MACKeyArtifact]

	info, err := os.Stat(key)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	sig, err := execute(t, "hello", "text", "sign", "--key", key)
	require.NoError(t, err)
	sig = strings.TrimSpace(sig)
	assert.Len(t, sig, 43)

	out, err := execute(t, "hello", "text", "verify", "--key", key, "--sig", sig)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = execute(t, "hellp", "text", "verify", "--key", key, "--sig", sig)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestTextCommands_Blake3KnownSignature(t *testing.T) {
	key := testutil.WriteTempFile(t, "zero.key", make([]byte, 32))
	input := testutil.WriteTempFile(t, "message.txt", []byte("hello"))

	out, err := execute(t, "", "text", "sign", "--key", key, "--input", input, "--format", "blake3")
	require.NoError(t, err)
	assert.Equal(t, "4PaL_sNhIW7AL8FXNmQ6cEcdliYLD-byc6kJu4ttvYE\n", out)
}

func TestTextCommands_Ed25519(t *testing.T) {
	paths := generateKeys(t, "ed25519")
	require.Len(t, paths, 2)

	sig, err := execute(t, "hello", "text", "sign", "--format", "ed25519", "--key", paths[textcrypto.SigningKeyArtifact])
	require.NoError(t, err)
	sig = strings.TrimSpace(sig)
	assert.Len(t, sig, 86)

	out, err := execute(t, "hello", "text", "verify", "--format", "ed25519", "--key", paths[textcrypto.VerifyingKeyArtifact], "--sig", sig)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	other := generateKeys(t, "ed25519")
	out, err = execute(t, "hello", "text", "verify", "--format", "ed25519", "--key", other[textcrypto.VerifyingKeyArtifact], "--sig", sig)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestTextCommands_VerifyErrors(t *testing.T) {
	key := testutil.WriteTempFile(t, "blake3.txt", bytes.Repeat([]byte{'k'}, 32))

	_, err := execute(t, "hello", "text", "verify", "--key", key, "--sig", "not base64!")
	assert.ErrorIs(t, err, textcrypto.ErrMalformedEncoding)

	_, err = execute(t, "hello", "text", "verify", "--key", key, "--sig", "AAAA")
	assert.ErrorIs(t, err, textcrypto.ErrInvalidSignature)

	_, err = execute(t, "hello", "text", "verify", "--key", key, "--sig", "AAAA", "--format", "rsa")
	assert.ErrorContains(t, err, `invalid argument "rsa" for "-f, --format" flag`)
	assert.ErrorContains(t, err, textcrypto.ErrUnsupportedFormat.Error())

	_, err = execute(t, "hello", "text", "verify", "--key", key)
	assert.Error(t, err)
}

func TestTextCommands_SignErrors(t *testing.T) {
	shortKey := testutil.WriteTempFile(t, "short.key", []byte("too short"))
	_, err := execute(t, "hello", "text", "sign", "--key", shortKey)
	assert.ErrorIs(t, err, textcrypto.ErrInvalidKey)

	_, err = execute(t, "hello", "text", "sign", "--key", filepath.Join(t.TempDir(), "missing.key"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "hello", "text", "sign")
	assert.Error(t, err)
}

func TestTextCommands_EncryptDecrypt(t *testing.T) {
	key := testutil.WriteTempFile(t, "chacha.key", bytes.Repeat([]byte{0x42}, 32))
	plaintext := "attack at dawn\nand again at dusk"

	first, err := execute(t, plaintext, "text", "encrypt", "--key", key)
	require.NoError(t, err)
	second, err := execute(t, plaintext, "text", "encrypt", "--key", key)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	out, err := execute(t, first, "text", "decrypt", "--key", key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, out)

	record := testutil.WriteTempFile(t, "record.txt", []byte(second))
	out, err = execute(t, "", "text", "decrypt", "--key", key, "--input", record)
	require.NoError(t, err)
	assert.Equal(t, plaintext, out)

	otherKey := testutil.WriteTempFile(t, "other.key", bytes.Repeat([]byte{0x43}, 32))
	_, err = execute(t, first, "text", "decrypt", "--key", otherKey)
	assert.ErrorIs(t, err, textcrypto.ErrAuthenticationFailed)

	_, err = execute(t, "AAAA", "text", "decrypt", "--key", key)
	assert.ErrorIs(t, err, textcrypto.ErrAuthenticationFailed)

	_, err = execute(t, "AA\nAA", "text", "decrypt", "--key", key)
	assert.ErrorIs(t, err, textcrypto.ErrMalformedEncoding)
}

func TestTextCommands_EncryptRequiresExactKey(t *testing.T) {
	key := testutil.WriteTempFile(t, "chacha.key", append(bytes.Repeat([]byte{0x42}, 32), '\n'))

	_, err := execute(t, "hello", "text", "encrypt", "--key", key)
	assert.ErrorIs(t, err, textcrypto.ErrInvalidKey)
}
