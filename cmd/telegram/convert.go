// Package telegram handles Telegram export processing commands
package telegram

import (
	"github.com/spf13/cobra"

	"fkimathi/chat-csv/cmd/common"
	"fkimathi/chat-csv/cmd/root"
	"fkimathi/chat-csv/internal/container"
)

// Cmd represents the telegram command
var Cmd = &cobra.Command{
	Use:   "telegram",
	Short: "Extract transactions from a Telegram export",
	Long:  `Extract transaction records from a Telegram chat export text file and write them to CSV.`,
	Run:   telegramFunc,
}

func telegramFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Telegram extract command called")
	root.Log.Infof("Input export file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output CSV file: %s", root.SharedFlags.Output)

	p, err := root.GetContainer().GetParser(container.Telegram)
	if err != nil {
		root.Log.Fatalf("Error getting Telegram parser: %v", err)
	}
	common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, root.GetLogrusAdapter())
}
