// Package root contains the root command for the application
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fkimathi/chat-csv/internal/common"
	"fkimathi/chat-csv/internal/config"
	"fkimathi/chat-csv/internal/container"
	"fkimathi/chat-csv/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	appConfig    *config.Config
	appContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "chat-csv",
		Short: "A CLI tool to extract financial transactions from chat exports and documents.",
		Long: `chat-csv extracts financial-transaction records from WhatsApp and
Telegram chat exports, plain-text email bodies, raw PDF bytes, and
custom regex templates, and writes them to CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to chat-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			appConfig = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			appContainer, err = container.NewContainer(cfg)
			if err != nil {
				Log.Fatalf("Failed to initialize container: %v", err)
			}

			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				common.SetDelimiter([]rune(delim)[0])
			}
		},
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// TemplateName is the template selected by the template command
	TemplateName string

	// Source is the parser selected by the batch command
	Source string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}

// GetContainer returns the application container built in PersistentPreRun.
func GetContainer() *container.Container {
	return appContainer
}

// GetConfig returns the loaded application configuration.
func GetConfig() *config.Config {
	return appConfig
}

// GetLogrusAdapter wraps the shared logrus logger in the logging interface.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
