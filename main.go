package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"fkimathi/chat-csv/cmd/batch"
	"fkimathi/chat-csv/cmd/email"
	"fkimathi/chat-csv/cmd/pdf"
	"fkimathi/chat-csv/cmd/root"
	"fkimathi/chat-csv/cmd/telegram"
	"fkimathi/chat-csv/cmd/template"
	"fkimathi/chat-csv/cmd/whatsapp"
	"fkimathi/chat-csv/internal/logging"
)

func init() {
	// Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// Configure the global log level before any logger is created
	logLevel := configureLogLevelDirectly()
	logging.SetAllLogLevels(logLevel)

	root.Init()

	root.Cmd.AddCommand(whatsapp.Cmd)
	root.Cmd.AddCommand(telegram.Cmd)
	root.Cmd.AddCommand(email.Cmd)
	root.Cmd.AddCommand(pdf.Cmd)
	root.Cmd.AddCommand(template.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances and returns the configured level
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)

	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
