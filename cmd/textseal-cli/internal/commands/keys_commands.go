package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/MGTheTrain/textseal/internal/app"
	"github.com/MGTheTrain/textseal/internal/domain/keys"
	"github.com/MGTheTrain/textseal/internal/domain/textcrypto"

	"github.com/spf13/cobra"
)

// errNoKeyCatalog is returned by catalog commands when no database is configured
var errNoKeyCatalog = errors.New("no key catalog configured: set database.type in the config file or TEXTSEAL_DATABASE_TYPE")

// KeysCommandHandler encapsulates logic for inspecting the key catalog via CLI.
type KeysCommandHandler struct {
	commandBase
}

// NewKeysCommandHandler returns a KeysCommandHandler
func NewKeysCommandHandler() *KeysCommandHandler {
	return &KeysCommandHandler{}
}

func (commandHandler *KeysCommandHandler) metadataService() (keys.KeyMetadataService, func(), error) {
	repo, closeCatalog, err := commandHandler.openKeyCatalog()
	if err != nil {
		return nil, nil, err
	}
	if repo == nil {
		return nil, nil, errNoKeyCatalog
	}

	service, err := app.NewKeyMetadataService(repo, commandHandler.logger)
	if err != nil {
		closeCatalog()
		return nil, nil, err
	}
	return service, closeCatalog, nil
}

// ListCmd prints the catalog entries matching the filter flags, newest first
func (commandHandler *KeysCommandHandler) ListCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.setup(cmd); err != nil {
		return err
	}

	query := keys.NewKeyQuery()
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		parsed, err := textcrypto.ParseSignFormat(format)
		if err != nil {
			return err
		}
		query.Algorithm = parsed.String()
	}
	query.Type, _ = cmd.Flags().GetString("type")
	query.Limit, _ = cmd.Flags().GetInt("limit")

	service, closeCatalog, err := commandHandler.metadataService()
	if err != nil {
		return err
	}
	defer closeCatalog()

	keyMetas, err := service.List(cmd.Context(), query)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKEY PAIR\tALGORITHM\tTYPE\tCREATED\tPATH")
	for _, keyMeta := range keyMetas {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			keyMeta.ID, keyMeta.KeyPairID, keyMeta.Algorithm, keyMeta.Type,
			keyMeta.DateTimeCreated.Format(time.RFC3339), keyMeta.FilePath)
	}
	return w.Flush()
}

// DeleteCmd removes a catalog entry; the key file is left in place
func (commandHandler *KeysCommandHandler) DeleteCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.setup(cmd); err != nil {
		return err
	}

	keyID, _ := cmd.Flags().GetString("id")

	service, closeCatalog, err := commandHandler.metadataService()
	if err != nil {
		return err
	}
	defer closeCatalog()

	return service.DeleteByID(cmd.Context(), keyID)
}

// InitKeysCommands registers the keys command group
func InitKeysCommands(rootCmd *cobra.Command) error {
	handler := NewKeysCommandHandler()

	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "Inspect the catalog of generated keys",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List generated keys",
		RunE:  handler.ListCmd,
	}
	listCmd.Flags().StringP("format", "f", "", "Only keys of this format: blake3 or ed25519")
	listCmd.Flags().String("type", "", "Only keys of this type: symmetric, private or public")
	listCmd.Flags().Int("limit", 0, "Maximum number of entries, 0 for all")
	keysCmd.AddCommand(listCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove a key from the catalog",
		RunE:  handler.DeleteCmd,
	}
	deleteCmd.Flags().String("id", "", "Key ID")
	if err := deleteCmd.MarkFlagRequired("id"); err != nil {
		return fmt.Errorf("failed to mark id flag required: %w", err)
	}
	keysCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(keysCmd)
	return nil
}
