// Package factory creates parser instances and dispatches extraction
// requests to the right source pipeline.
package factory

import (
	"bytes"
	"fmt"

	"fkimathi/chat-csv/internal/emailparser"
	"fkimathi/chat-csv/internal/logging"
	"fkimathi/chat-csv/internal/models"
	"fkimathi/chat-csv/internal/pdfparser"
	"fkimathi/chat-csv/internal/telegramparser"
	"fkimathi/chat-csv/internal/templateparser"
	"fkimathi/chat-csv/internal/whatsappparser"
)

// ParserType defines the types of parsers available.
type ParserType string

const (
	WhatsApp ParserType = "whatsapp"
	Telegram ParserType = "telegram"
	Email    ParserType = "email"
	PDF      ParserType = "pdf"
	Template ParserType = "template"
)

// GetParser returns a new instance of the appropriate parser for the given
// type, using the default logger.
func GetParser(parserType ParserType) (models.Parser, error) {
	return GetParserWithLogger(parserType, logging.GetLogger())
}

// GetParserWithLogger returns a new instance of the appropriate parser for
// the given type with the provided logger for dependency injection. The
// template parser comes back without a template; callers set one before
// parsing.
func GetParserWithLogger(parserType ParserType, logger logging.Logger) (models.Parser, error) {
	switch parserType {
	case WhatsApp:
		return whatsappparser.NewAdapter(logger), nil
	case Telegram:
		return telegramparser.NewAdapter(logger), nil
	case Email:
		return emailparser.NewAdapter(logger), nil
	case PDF:
		return pdfparser.NewAdapter(logger), nil
	case Template:
		return templateparser.NewAdapter(nil, logger), nil
	default:
		return nil, fmt.Errorf("unknown parser type: %s", parserType)
	}
}

// Extract is the single engine entry point: it routes the input to a
// source pipeline and returns the ordered record list. A non-nil template
// always wins over the source name; an empty source defaults to WhatsApp.
func Extract(data []byte, source string, tmpl *models.CustomTemplate, logger logging.Logger) ([]models.Record, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	if tmpl != nil {
		return templateparser.Parse(bytes.NewReader(data), tmpl, logger)
	}

	if source == "" {
		source = string(WhatsApp)
	}

	switch ParserType(source) {
	case WhatsApp:
		return whatsappparser.Parse(bytes.NewReader(data), logger)
	case Telegram:
		return telegramparser.Parse(bytes.NewReader(data), logger)
	case Email:
		return emailparser.Parse(bytes.NewReader(data), logger)
	case PDF:
		return pdfparser.Parse(bytes.NewReader(data), logger)
	default:
		return nil, fmt.Errorf("unknown source: %s", source)
	}
}
