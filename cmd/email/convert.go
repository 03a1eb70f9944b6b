// Package email handles email body processing commands
package email

import (
	"github.com/spf13/cobra"

	"fkimathi/chat-csv/cmd/common"
	"fkimathi/chat-csv/cmd/root"
	"fkimathi/chat-csv/internal/container"
)

// Cmd represents the email command
var Cmd = &cobra.Command{
	Use:   "email",
	Short: "Extract transactions from an email body",
	Long:  `Extract transaction records from a plain-text email body and write them to CSV.`,
	Run:   emailFunc,
}

func emailFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Email extract command called")
	root.Log.Infof("Input email file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output CSV file: %s", root.SharedFlags.Output)

	p, err := root.GetContainer().GetParser(container.Email)
	if err != nil {
		root.Log.Fatalf("Error getting email parser: %v", err)
	}
	common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, root.GetLogrusAdapter())
}
