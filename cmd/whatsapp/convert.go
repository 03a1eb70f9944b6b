// Package whatsapp handles WhatsApp chat export processing commands
package whatsapp

import (
	"github.com/spf13/cobra"

	"fkimathi/chat-csv/cmd/common"
	"fkimathi/chat-csv/cmd/root"
	"fkimathi/chat-csv/internal/container"
)

// Cmd represents the whatsapp command
var Cmd = &cobra.Command{
	Use:   "whatsapp",
	Short: "Extract transactions from a WhatsApp chat export",
	Long:  `Extract transaction records from a WhatsApp chat export text file and write them to CSV.`,
	Run:   whatsappFunc,
}

func whatsappFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("WhatsApp extract command called")
	root.Log.Infof("Input chat export file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output CSV file: %s", root.SharedFlags.Output)

	p, err := root.GetContainer().GetParser(container.WhatsApp)
	if err != nil {
		root.Log.Fatalf("Error getting WhatsApp parser: %v", err)
	}
	common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, root.GetLogrusAdapter())
}
