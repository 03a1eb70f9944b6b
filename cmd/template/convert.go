// Package template handles custom-template processing commands
package template

import (
	"github.com/spf13/cobra"

	"fkimathi/chat-csv/cmd/common"
	"fkimathi/chat-csv/cmd/root"
)

// Cmd represents the template command
var Cmd = &cobra.Command{
	Use:   "template",
	Short: "Extract transactions using a custom regex template",
	Long: `Extract transaction records from any line-oriented text file using a
named template from the template library. Each template holds up to five
regex patterns (date, amount, reference, paid by, paid to); a record is
emitted once an amount and a date or reference have been matched.`,
	Run: templateFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.TemplateName, "template", "t", "", "Name of the template to run")
	_ = Cmd.MarkFlagRequired("template")
}

func templateFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Template extract command called")
	root.Log.Infof("Template: %s", root.TemplateName)
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output CSV file: %s", root.SharedFlags.Output)

	c := root.GetContainer()

	tmpl, err := c.GetTemplateStore().GetTemplate(root.TemplateName)
	if err != nil {
		root.Log.Fatalf("Error loading template: %v", err)
	}

	p := c.GetTemplateParser()
	p.SetTemplate(tmpl)

	common.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, root.GetLogrusAdapter())
}
