package commands

import (
	"fmt"
	"io"

	"github.com/MGTheTrain/textseal/internal/domain/keys"
	"github.com/MGTheTrain/textseal/internal/infrastructure/persistence"
	"github.com/MGTheTrain/textseal/internal/pkg/config"
	"github.com/MGTheTrain/textseal/internal/pkg/logger"
	"github.com/MGTheTrain/textseal/internal/pkg/utils"

	"github.com/spf13/cobra"
)

// ConfigFlag is the persistent root flag naming the YAML configuration file
const ConfigFlag = "config"

// commandBase carries the configuration and logger of a command run
type commandBase struct {
	cfg    *config.AppConfig
	logger logger.Logger
}

// setup loads the configuration named by --config and initializes the logger
func (b *commandBase) setup(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString(ConfigFlag)
	if err != nil {
		path = ""
	}

	cfg, err := config.InitializeAppConfig(path)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return err
	}

	b.cfg = cfg
	b.logger = loggerInstance
	return nil
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// openKeyCatalog connects to the configured key catalog. It returns a nil repository
// when no database is configured; close is always safe to call.
func (b *commandBase) openKeyCatalog() (keys.KeyRepository, func(), error) {
	noop := func() {}
	if b.cfg.Database == nil {
		return nil, noop, nil
	}

	db, err := persistence.NewDBConnection(*b.cfg.Database)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open key catalog: %w", err)
	}
	closeDB := func() {
		if err := persistence.CloseDB(db); err != nil {
			b.logger.Warn("Failed to close key catalog: ", err)
		}
	}

	repo, err := persistence.NewGormKeyRepository(db, b.logger)
	if err != nil {
		closeDB()
		return nil, noop, fmt.Errorf("failed to create key repository: %w", err)
	}

	return repo, closeDB, nil
}

// flagValue returns the value a flag was registered with via Var
func flagValue[T any](cmd *cobra.Command, name string) (T, error) {
	var zero T
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		return zero, fmt.Errorf("flag %s is not defined", name)
	}
	value, ok := flag.Value.(T)
	if !ok {
		return zero, fmt.Errorf("flag %s holds a %s value", name, flag.Value.Type())
	}
	return value, nil
}

// openInput opens the --input path; "-" reads the command's stdin
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == utils.StdinPath {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return utils.GetReader(path)
}

// readInput reads the whole --input
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	r, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return content, nil
}
