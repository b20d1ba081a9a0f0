//go:build integration
// +build integration

package commands

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/textseal/internal/domain/keys"
	"github.com/MGTheTrain/textseal/internal/pkg/testutil"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := &cobra.Command{Use: "textseal-cli", SilenceUsage: true, SilenceErrors: true}
	rootCmd.PersistentFlags().String(ConfigFlag, "", "")
	require.NoError(t, InitTextCommands(rootCmd))
	require.NoError(t, InitKeysCommands(rootCmd))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestKeysCommands_GenerateRecordsInCatalog(t *testing.T) {
	dir := t.TempDir()
	configPath := testutil.WriteTempFile(t, "textseal.yaml", []byte(
		"logger:\n  log_level: info\n  log_type: console\n"+
			"database:\n  type: sqlite\n  dsn: "+filepath.Join(dir, "keys.db")+"\n"))

	_, err := run(t, "--config", configPath, "text", "generate", "--format", "ed25519", "--output-path", dir)
	require.NoError(t, err)
	_, err = run(t, "--config", configPath, "text", "generate", "--format", "blake3", "--output-path", dir)
	require.NoError(t, err)

	out, err := run(t, "--config", configPath, "keys", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "ALGORITHM")

	out, err = run(t, "--config", configPath, "keys", "list", "--format", "ed25519", "--type", "public")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	id := strings.Fields(lines[1])[0]

	_, err = run(t, "--config", configPath, "keys", "delete", "--id", id)
	require.NoError(t, err)

	_, err = run(t, "--config", configPath, "keys", "delete", "--id", id)
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)
}
