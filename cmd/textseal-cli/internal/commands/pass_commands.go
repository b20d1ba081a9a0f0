package commands

import (
	"fmt"
	"io"

	"github.com/MGTheTrain/textseal/internal/pkg/passgen"

	"github.com/spf13/cobra"
)

// PassCommandHandler encapsulates logic for password generation via CLI.
type PassCommandHandler struct {
	commandBase
	random io.Reader
}

// NewPassCommandHandler returns a PassCommandHandler drawing randomness from crypto/rand
func NewPassCommandHandler() *PassCommandHandler {
	return &PassCommandHandler{}
}

// GenPassCmd prints a random password and logs its strength score
func (commandHandler *PassCommandHandler) GenPassCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.setup(cmd); err != nil {
		return err
	}

	length, _ := cmd.Flags().GetInt("length")
	noLower, _ := cmd.Flags().GetBool("no-lower")
	noUpper, _ := cmd.Flags().GetBool("no-upper")
	noNumber, _ := cmd.Flags().GetBool("no-number")
	noSymbol, _ := cmd.Flags().GetBool("no-symbol")

	pass, err := passgen.NewGenerator(commandHandler.random).Generate(passgen.Options{
		Length:   length,
		NoLower:  noLower,
		NoUpper:  noUpper,
		NoNumber: noNumber,
		NoSymbol: noSymbol,
	})
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), pass); err != nil {
		return err
	}

	commandHandler.logger.Info("Password strength: ", passgen.Strength(pass))
	return nil
}

// InitPassCommands registers the genpass command
func InitPassCommands(rootCmd *cobra.Command) error {
	handler := NewPassCommandHandler()

	genPassCmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		RunE:  handler.GenPassCmd,
	}
	genPassCmd.Flags().IntP("length", "l", passgen.DefaultLength, "Password length")
	genPassCmd.Flags().Bool("no-lower", false, "Exclude lowercase letters")
	genPassCmd.Flags().Bool("no-upper", false, "Exclude uppercase letters")
	genPassCmd.Flags().Bool("no-number", false, "Exclude digits")
	genPassCmd.Flags().Bool("no-symbol", false, "Exclude symbols")
	rootCmd.AddCommand(genPassCmd)

	return nil
}
