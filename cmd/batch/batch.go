// Package batch handles batch processing of files
package batch

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fkimathi/chat-csv/cmd/root"
	"fkimathi/chat-csv/internal/batch"
	"fkimathi/chat-csv/internal/common"
	"fkimathi/chat-csv/internal/container"
	"fkimathi/chat-csv/internal/fileutils"
	"fkimathi/chat-csv/internal/logging"
)

var extension string

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process files from a directory",
	Long: `Batch process every file in an input directory with one source parser
and merge the results into a single CSV, newest records first. Files
that fail to parse are logged and skipped.

Example:
  chat-csv batch -i exports/ -o merged.csv --source whatsapp`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Source, "source", "s", "", "Source parser to use (whatsapp, telegram, email, pdf)")
	Cmd.Flags().StringVarP(&extension, "ext", "e", "", "Only process files with this extension (e.g. .txt)")
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	inputDir := root.SharedFlags.Input
	outputFile := root.SharedFlags.Output

	logger := root.GetLogrusAdapter()

	if inputDir == "" || outputFile == "" {
		logger.Fatal("Input directory and output file must be specified")
	}

	source := root.Source
	if source == "" {
		source = root.GetConfig().Extraction.DefaultSource
	}

	p, err := root.GetContainer().GetParser(container.ParserType(source))
	if err != nil {
		logger.Fatalf("Failed to get parser for source %q: %v", source, err)
	}
	p.SetLogger(logger)

	if !fileutils.DirectoryExists(inputDir) {
		logger.Fatalf("Input directory does not exist: %s", inputDir)
	}

	var files []string
	if extension != "" {
		files, err = fileutils.ListFilesWithExtension(inputDir, extension)
		if err != nil {
			logger.Fatalf("Failed to list input files: %v", err)
		}
	} else {
		entries, err := os.ReadDir(inputDir)
		if err != nil {
			logger.Fatalf("Failed to read input directory: %v", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			files = append(files, filepath.Join(inputDir, entry.Name()))
		}
	}

	if len(files) == 0 {
		logger.Warn("No files found in input directory")
		return
	}

	logger.Info("Found files for processing",
		logging.Field{Key: logging.FieldCount, Value: len(files)})

	records := batch.Merge(files, p, logger)

	if err := common.WriteRecordsToCSV(records, outputFile); err != nil {
		logger.Fatalf("Error writing merged CSV: %v", err)
	}

	logger.Info("Batch processing completed",
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile})
}
