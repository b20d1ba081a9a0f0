package commands

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/MGTheTrain/textseal/internal/pkg/convert"
	"github.com/MGTheTrain/textseal/internal/pkg/utils"

	"github.com/spf13/cobra"
)

// CSVCommandHandler encapsulates logic for CSV conversion via CLI.
type CSVCommandHandler struct {
	commandBase
}

// NewCSVCommandHandler returns a CSVCommandHandler
func NewCSVCommandHandler() *CSVCommandHandler {
	return &CSVCommandHandler{}
}

func delimiterFlag(cmd *cobra.Command) (rune, error) {
	value, _ := cmd.Flags().GetString("delimiter")
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("%w: %q must be a single character", convert.ErrInvalidDelimiter, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

// ConvertCmd renders CSV input as JSON or YAML, to --output when set and stdout otherwise
func (commandHandler *CSVCommandHandler) ConvertCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.setup(cmd); err != nil {
		return err
	}

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	noHeader, _ := cmd.Flags().GetBool("no-header")
	delimiter, err := delimiterFlag(cmd)
	if err != nil {
		return err
	}
	format, err := flagValue[*convert.OutputFormat](cmd, "format")
	if err != nil {
		return err
	}

	r, err := openInput(cmd, input)
	if err != nil {
		return err
	}
	defer r.Close()

	table, err := convert.ReadCSV(r, convert.Options{Delimiter: delimiter, NoHeader: noHeader})
	if err != nil {
		return err
	}

	content, err := table.Render(*format)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(content))
		return err
	}

	if err := os.WriteFile(output, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	commandHandler.logger.Info("Converted ", len(table.Rows), " rows to ", format.String(), " in ", output)
	return nil
}

// InitCSVCommands registers the csv command
func InitCSVCommands(rootCmd *cobra.Command) error {
	handler := NewCSVCommandHandler()

	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "Convert CSV to JSON or YAML",
		RunE:  handler.ConvertCmd,
	}
	format := convert.JSON
	csvCmd.Flags().StringP("input", "i", utils.StdinPath, "Input file, - for stdin")
	csvCmd.Flags().StringP("output", "o", "", "Output file, stdout when empty")
	csvCmd.Flags().StringP("delimiter", "d", ",", "Field delimiter")
	csvCmd.Flags().Bool("no-header", false, "Treat the first line as data and emit rows as lists")
	csvCmd.Flags().Var(&format, "format", "Output format: json or yaml")
	rootCmd.AddCommand(csvCmd)

	return nil
}
