package templateparser

import (
	"fmt"
	"io"
	"os"

	"fkimathi/chat-csv/internal/logging"
	"fkimathi/chat-csv/internal/models"
	"fkimathi/chat-csv/internal/parser"
)

// Adapter implements the models.Parser interface for custom templates.
// Unlike the source parsers it is stateful: the template to run must be
// set before Parse is called.
type Adapter struct {
	parser.BaseParser
	template *models.CustomTemplate
}

// NewAdapter creates a new adapter bound to the given template. The
// template may be nil and set later with SetTemplate.
func NewAdapter(tmpl *models.CustomTemplate, logger logging.Logger) *Adapter {
	return &Adapter{
		BaseParser: parser.NewBaseParser(logger),
		template:   tmpl,
	}
}

// SetTemplate sets the template used by subsequent Parse calls.
func (a *Adapter) SetTemplate(tmpl *models.CustomTemplate) {
	a.template = tmpl
}

// Parse reads data from the provided io.Reader and returns extracted records.
func (a *Adapter) Parse(r io.Reader) ([]models.Record, error) {
	if a.template == nil {
		return nil, fmt.Errorf("no template set for custom extraction")
	}
	return Parse(r, a.template, a.GetLogger())
}

// ConvertToCSV runs the template over the input file and writes the
// records to CSV.
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

// ValidateFormat checks that the file is readable, non-empty text. A
// template can run over any line-oriented input, so no shape check is
// possible here.
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

	buf := make([]byte, 1)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("error reading file: %w", err)
	}

	return n > 0, nil
}
