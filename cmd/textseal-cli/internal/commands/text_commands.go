package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MGTheTrain/textseal/internal/app"
	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"
	"github.com/MGTheTrain/textseal/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textseal/internal/pkg/encoding"
	"github.com/MGTheTrain/textseal/internal/pkg/utils"

	"github.com/spf13/cobra"
)

// TextCommandHandler encapsulates logic for signing, verifying and encrypting text via CLI.
type TextCommandHandler struct {
	commandBase
	// random is the randomness source of key generation and nonces; nil uses crypto/rand
	random io.Reader
}

// NewTextCommandHandler returns a TextCommandHandler drawing randomness from crypto/rand.
func NewTextCommandHandler() *TextCommandHandler {
	return &TextCommandHandler{}
}

func signFormatFlag(cmd *cobra.Command) (textcrypto.SignFormat, error) {
	format, err := flagValue[*textcrypto.SignFormat](cmd, "format")
	if err != nil {
		return 0, err
	}
	return *format, nil
}

func signFormatUsage() string {
	names := make([]string, len(textcrypto.SignFormats))
	for i, format := range textcrypto.SignFormats {
		names[i] = format.String()
	}
	return "Signing format: " + strings.Join(names, " or ")
}

// SignCmd signs the input and prints the URL-safe signature
func (commandHandler *TextCommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.setup(cmd); err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	keyPath, _ := cmd.Flags().GetString("key")
	format, err := signFormatFlag(cmd)
	if err != nil {
		return err
	}

	key, err := utils.GetContent(keyPath)
	if err != nil {
		return err
	}

	signer, err := cryptography.NewSigner(format, key, commandHandler.logger)
	if err != nil {
		return err
	}

	r, err := openInput(cmd, input)
	if err != nil {
		return err
	}
	defer r.Close()

	sig, err := signer.Sign(r)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), encoding.EncodeSignature(sig))
	return err
}

// VerifyCmd verifies the input against --sig and prints true or false
func (commandHandler *TextCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.setup(cmd); err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	keyPath, _ := cmd.Flags().GetString("key")
	sigText, _ := cmd.Flags().GetString("sig")
	format, err := signFormatFlag(cmd)
	if err != nil {
		return err
	}

	sig, err := encoding.DecodeSignature(strings.TrimSpace(sigText))
	if err != nil {
		return err
	}

	key, err := utils.GetContent(keyPath)
	if err != nil {
		return err
	}

	verifier, err := cryptography.NewVerifier(format, key, commandHandler.logger)
	if err != nil {
		return err
	}

	r, err := openInput(cmd, input)
	if err != nil {
		return err
	}
	defer r.Close()

	valid, err := verifier.Verify(r, sig)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(valid))
	return err
}

// GenerateCmd writes a fresh key or key pair into --output-path and prints the file paths
func (commandHandler *TextCommandHandler) GenerateCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.setup(cmd); err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output-path")
	format, err := signFormatFlag(cmd)
	if err != nil {
		return err
	}

	generator, err := cryptography.NewKeyGenerator(commandHandler.random, commandHandler.logger)
	if err != nil {
		return err
	}

	repo, closeCatalog, err := commandHandler.openKeyCatalog()
	if err != nil {
		return err
	}
	defer closeCatalog()

	service, err := app.NewKeyGenerationService(generator, repo, commandHandler.logger)
	if err != nil {
		return err
	}

	keyMetas, err := service.Generate(cmd.Context(), format, outputPath)
	if err != nil {
		return err
	}

	for _, keyMeta := range keyMetas {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), keyMeta.FilePath); err != nil {
			return err
		}
	}
	return nil
}

// EncryptCmd encrypts the input with ChaCha20-Poly1305 and prints the record as standard base64
func (commandHandler *TextCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.setup(cmd); err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	keyPath, _ := cmd.Flags().GetString("key")

	key, err := utils.GetContent(keyPath)
	if err != nil {
		return err
	}

	processor, err := cryptography.NewChaChaProcessor(key, commandHandler.random, commandHandler.logger)
	if err != nil {
		return err
	}

	plaintext, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	record, err := processor.Encrypt(plaintext)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), encoding.EncodeCiphertext(record))
	return err
}

// DecryptCmd decrypts a standard base64 record and writes the plaintext
func (commandHandler *TextCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.setup(cmd); err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	keyPath, _ := cmd.Flags().GetString("key")

	key, err := utils.GetContent(keyPath)
	if err != nil {
		return err
	}

	processor, err := cryptography.NewChaChaProcessor(key, commandHandler.random, commandHandler.logger)
	if err != nil {
		return err
	}

	text, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	record, err := encoding.DecodeCiphertext(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}

	plaintext, err := processor.Decrypt(record)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(plaintext)
	return err
}

// InitTextCommands registers the text command group
func InitTextCommands(rootCmd *cobra.Command) error {
	return initTextCommands(rootCmd, NewTextCommandHandler())
}

func initTextCommands(rootCmd *cobra.Command, handler *TextCommandHandler) error {
	textCmd := &cobra.Command{
		Use:   "text",
		Short: "Sign, verify, encrypt and decrypt text",
	}

	signCmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a text with a private or shared key and print the signature",
		RunE:  handler.SignCmd,
	}
	signCmd.Flags().StringP("input", "i", utils.StdinPath, "Input file, - for stdin")
	signCmd.Flags().StringP("key", "k", "", "Path to the signing key")
	signFormat := textcrypto.FormatBlake3
	signCmd.Flags().VarP(&signFormat, "format", "f", signFormatUsage())
	if err := signCmd.MarkFlagRequired("key"); err != nil {
		return fmt.Errorf("failed to mark key flag required: %w", err)
	}
	textCmd.AddCommand(signCmd)

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature with a public or shared key",
		RunE:  handler.VerifyCmd,
	}
	verifyCmd.Flags().StringP("input", "i", utils.StdinPath, "Input file, - for stdin")
	verifyCmd.Flags().StringP("key", "k", "", "Path to the verifying key")
	verifyFormat := textcrypto.FormatBlake3
	verifyCmd.Flags().VarP(&verifyFormat, "format", "f", signFormatUsage())
	verifyCmd.Flags().String("sig", "", "URL-safe base64 signature")
	for _, name := range []string{"key", "sig"} {
		if err := verifyCmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark %s flag required: %w", name, err)
		}
	}
	textCmd.AddCommand(verifyCmd)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random blake3 key or ed25519 key pair",
		RunE:  handler.GenerateCmd,
	}
	generateFormat := textcrypto.FormatBlake3
	generateCmd.Flags().VarP(&generateFormat, "format", "f", signFormatUsage())
	generateCmd.Flags().StringP("output-path", "o", "", "Directory to write the key files to")
	if err := generateCmd.MarkFlagRequired("output-path"); err != nil {
		return fmt.Errorf("failed to mark output-path flag required: %w", err)
	}
	textCmd.AddCommand(generateCmd)

	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a text with ChaCha20-Poly1305",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("input", "i", utils.StdinPath, "Input file, - for stdin")
	encryptCmd.Flags().StringP("key", "k", "", "Path to a file holding exactly 32 key bytes")
	if err := encryptCmd.MarkFlagRequired("key"); err != nil {
		return fmt.Errorf("failed to mark key flag required: %w", err)
	}
	textCmd.AddCommand(encryptCmd)

	decryptCmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a base64 record produced by encrypt",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("input", "i", utils.StdinPath, "Input file, - for stdin")
	decryptCmd.Flags().StringP("key", "k", "", "Path to a file holding exactly 32 key bytes")
	if err := decryptCmd.MarkFlagRequired("key"); err != nil {
		return fmt.Errorf("failed to mark key flag required: %w", err)
	}
	textCmd.AddCommand(decryptCmd)

	rootCmd.AddCommand(textCmd)
	return nil
}
