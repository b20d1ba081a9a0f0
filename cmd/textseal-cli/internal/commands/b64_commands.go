package commands

import (
	"fmt"
	"strings"

	"github.com/MGTheTrain/textseal/internal/pkg/encoding"
	"github.com/MGTheTrain/textseal/internal/pkg/utils"

	"github.com/spf13/cobra"
)

// Base64CommandHandler encapsulates logic for base64 conversion via CLI.
type Base64CommandHandler struct {
	commandBase
}

// NewBase64CommandHandler returns a Base64CommandHandler
func NewBase64CommandHandler() *Base64CommandHandler {
	return &Base64CommandHandler{}
}

func base64FormatFlag(cmd *cobra.Command) (encoding.Base64Format, error) {
	format, err := flagValue[*encoding.Base64Format](cmd, "format")
	if err != nil {
		return 0, err
	}
	return *format, nil
}

// EncodeCmd prints the input as base64
func (commandHandler *Base64CommandHandler) EncodeCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.setup(cmd); err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	format, err := base64FormatFlag(cmd)
	if err != nil {
		return err
	}

	content, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	text, err := encoding.Encode(format, content)
	if err != nil {
		return err
	}

	commandHandler.logger.Debug("Encoded ", len(content), " bytes as ", format.String(), " base64")
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

// DecodeCmd writes the bytes of base64 input; surrounding whitespace is ignored
func (commandHandler *Base64CommandHandler) DecodeCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.setup(cmd); err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	format, err := base64FormatFlag(cmd)
	if err != nil {
		return err
	}

	content, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	decoded, err := encoding.Decode(format, strings.TrimSpace(string(content)))
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(decoded)
	return err
}

// InitBase64Commands registers the base64 command group
func InitBase64Commands(rootCmd *cobra.Command) error {
	handler := NewBase64CommandHandler()

	base64Cmd := &cobra.Command{
		Use:   "base64",
		Short: "Base64 encode or decode",
	}

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode the input as base64",
		RunE:  handler.EncodeCmd,
	}
	encodeCmd.Flags().StringP("input", "i", utils.StdinPath, "Input file, - for stdin")
	encodeFormat := encoding.Standard
	encodeCmd.Flags().Var(&encodeFormat, "format", "Base64 alphabet: standard or urlsafe")
	base64Cmd.AddCommand(encodeCmd)

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode base64 input",
		RunE:  handler.DecodeCmd,
	}
	decodeCmd.Flags().StringP("input", "i", utils.StdinPath, "Input file, - for stdin")
	decodeFormat := encoding.Standard
	decodeCmd.Flags().Var(&decodeFormat, "format", "Base64 alphabet: standard or urlsafe")
	base64Cmd.AddCommand(decodeCmd)

	rootCmd.AddCommand(base64Cmd)
	return nil
}
