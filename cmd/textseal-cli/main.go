// Package main is the entry point for the textseal-cli application.
// It initializes the root command, registers the text, base64, genpass, keys and http
// command groups, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/textseal/cmd/textseal-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "textseal-cli",
		Short: "Text signing, verification and encryption tool",
		Long: `textseal-cli signs and verifies text with BLAKE3 keyed hashes or Ed25519 signatures,
encrypts text with ChaCha20-Poly1305, generates keys and passwords and converts base64.

Settings are read from the YAML file given with --config and may be overridden by
environment variables prefixed with TEXTSEAL_, e.g. TEXTSEAL_LOGGER_LOG_LEVEL=debug.
Generated keys are recorded in a key catalog when a database is configured.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String(commands.ConfigFlag, "", "Path to a YAML configuration file")

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	inits := []struct {
		name string
		init func(*cobra.Command) error
	}{
		{"text", commands.InitTextCommands},
		{"base64", commands.InitBase64Commands},
		{"genpass", commands.InitPassCommands},
		{"jwt", commands.InitJWTCommands},
		{"csv", commands.InitCSVCommands},
		{"keys", commands.InitKeysCommands},
		{"http", commands.InitHTTPCommands},
	}

	for _, group := range inits {
		if err := group.init(rootCmd); err != nil {
			return fmt.Errorf("failed to initialize %s commands: %w", group.name, err)
		}
	}

	return nil
}

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}
