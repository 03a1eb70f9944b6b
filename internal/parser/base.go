// Package parser provides the base parser functionality shared by all
// source parser implementations.
package parser

import (
	"fkimathi/chat-csv/internal/common"
	"fkimathi/chat-csv/internal/logging"
	"fkimathi/chat-csv/internal/models"
)

// BaseParser provides common functionality for all parser implementations.
// Parsers embed BaseParser to inherit logger injection and CSV writing:
//
//	type Adapter struct {
//		parser.BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a new BaseParser with the provided logger.
// If logger is nil, the default logger is used.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return BaseParser{logger: logger}
}

// SetLogger replaces the parser's logger. A nil logger is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// WriteToCSV writes records through the standardized common writer so every
// parser produces the same CSV shape.
func (b *BaseParser) WriteToCSV(records []models.Record, csvFile string) error {
	b.logger.Info("Writing records to CSV",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	return common.WriteRecordsToCSV(records, csvFile)
}
