// Package pdf handles PDF statement processing commands
package pdf

import (
	"github.com/spf13/cobra"

	"fkimathi/chat-csv/cmd/common"
	"fkimathi/chat-csv/cmd/root"
	"fkimathi/chat-csv/internal/container"
)

// Cmd represents the pdf command
var Cmd = &cobra.Command{
	Use:   "pdf",
	Short: "Extract transactions from a PDF statement",
	Long:  `Extract transaction records from raw PDF bytes and write them to CSV.`,
	Run:   pdfFunc,
}

func pdfFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("PDF extract command called")
	root.Log.Infof("Input PDF file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output CSV file: %s", root.SharedFlags.Output)

	p, err := root.GetContainer().GetParser(container.PDF)
	if err != nil {
		root.Log.Fatalf("Error getting PDF parser: %v", err)
	}
	common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, root.GetLogrusAdapter())
}
