package emailparser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"fkimathi/chat-csv/internal/logging"
	"fkimathi/chat-csv/internal/models"
	"fkimathi/chat-csv/internal/parser"
)

// Adapter implements the models.Parser interface for email bodies.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates a new adapter for the emailparser.
func NewAdapter(logger logging.Logger) *Adapter {
	return &Adapter{BaseParser: parser.NewBaseParser(logger)}
}

// Parse reads data from the provided io.Reader and returns extracted records.
func (a *Adapter) Parse(r io.Reader) ([]models.Record, error) {
	return Parse(r, a.GetLogger())
}

// ConvertToCSV parses an email body file and writes the records to CSV.
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) error {
	file, err := os.Open(inputFile) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			a.GetLogger().WithError(err).Warn("Failed to close input file",
				logging.Field{Key: logging.FieldFile, Value: inputFile})
		}
	}()

	records, err := a.Parse(file)
	if err != nil {
		return err
	}

	return a.WriteToCSV(records, outputFile)
}

// ValidateFormat checks whether the file looks like an email body: a
// Subject or From header, or at least one labeled amount field.
func (a *Adapter) ValidateFormat(file string) (bool, error) {
	f, err := os.Open(file) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return false, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			a.GetLogger().WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: file})
		}
	}()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "Subject:") || strings.HasPrefix(line, "From:") {
			return true, nil
		}
		if amountFieldRe.MatchString(line) {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("error reading file: %w", err)
	}

	return false, nil
}
