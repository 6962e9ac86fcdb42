package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jfmyers9/audiblex/internal/config"
	"github.com/jfmyers9/audiblex/internal/exporter"
	"github.com/jfmyers9/audiblex/pkg/audible"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Library listing request parameters. A single request with a fixed
// result cap; there is no pagination beyond it.
const (
	libraryResultCap = 1000
	librarySortKey   = "Author"
)

var libraryResponseGroups = []string{"product_desc", "product_attrs", "contributors"}

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the Audible library to CSV",
	Long: `Fetch the Audible library and write it to a CSV file.

The command loads the credential saved by 'audiblex auth', requests the
library listing sorted by author, and writes one row per audiobook with
authors, title, narrators, runtime, release date and purchase date.

Progress and errors are logged to both the console and the log file
(default: audiblex.log). Paths can be changed in the config file or via
AUDIBLEX_* environment variables.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up logging
	logger, closeLog := setupLogger(cfg.LogFile, cfg.LogLevel)
	defer closeLog()

	logger.Info().Str("version", version).Msg("Starting Audible library export")

	// The credential must exist before anything touches the network
	if _, err := os.Stat(cfg.AuthFile); err != nil {
		logger.Error().Str("path", cfg.AuthFile).Msg("Authentication file not found, run 'audiblex auth' first")
		return fmt.Errorf("authentication file not found at %s", cfg.AuthFile)
	}

	cred, err := audible.CredentialFromFile(cfg.AuthFile)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to authenticate")
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	client, err := audible.NewClient(audible.Config{
		Credential: cred,
		Logger:     sdkLogger{logger: logger},
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create Audible client")
		return fmt.Errorf("failed to create client: %w", err)
	}

	items, err := client.Library().List(ctx, audible.ListOptions{
		NumResults:     libraryResultCap,
		ResponseGroups: libraryResponseGroups,
		SortBy:         librarySortKey,
	})
	if err != nil {
		logger.Error().Err(err).Msg("API request failed")
		return fmt.Errorf("API request failed: %w", err)
	}

	logger.Info().Int("items", len(items)).Msg("Library listing received")

	exp := exporter.New(logger)
	records := exp.Records(items)

	if err := exp.WriteCSV(records, cfg.OutputFile); err != nil {
		logger.Error().Err(err).Msg("Failed to write CSV file")
		return fmt.Errorf("failed to write CSV file: %w", err)
	}

	logger.Info().Msg("Audible library export completed successfully")
	return nil
}

// sdkLogger adapts zerolog to the SDK's debug logging interface, so
// log_level: debug surfaces its request logging.
type sdkLogger struct {
	logger zerolog.Logger
}

func (l sdkLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

// setupLogger creates a logger that writes timestamped, leveled messages to
// both the log file and the console. The returned func closes the log file.
func setupLogger(logFile, logLevel string) (zerolog.Logger, func()) {
	// Parse log level
	level := zerolog.InfoLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	var writer zerolog.LevelWriter
	closeLog := func() {}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		writer = zerolog.MultiLevelWriter(console)
	} else {
		writer = zerolog.MultiLevelWriter(console, f)
		closeLog = func() { _ = f.Close() }
	}

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, closeLog
}
