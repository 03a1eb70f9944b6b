// Package container provides dependency injection for the chat-csv
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fkimathi/chat-csv/internal/config"
	"fkimathi/chat-csv/internal/emailparser"
	"fkimathi/chat-csv/internal/logging"
	"fkimathi/chat-csv/internal/models"
	"fkimathi/chat-csv/internal/pdfparser"
	"fkimathi/chat-csv/internal/store"
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

// Container holds all application dependencies and provides methods to
// access them. It is immutable after creation; all fields are private and
// only reachable through getters.
type Container struct {
	logger         logging.Logger
	config         *config.Config
	templateStore  *store.TemplateStore
	templateParser *templateparser.Adapter

	parsers map[ParserType]models.Parser
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	templateStore := store.NewTemplateStore(cfg.Templates.File, logger)

	templateParser := templateparser.NewAdapter(nil, logger)

	parsers := map[ParserType]models.Parser{
		WhatsApp: whatsappparser.NewAdapter(logger),
		Telegram: telegramparser.NewAdapter(logger),
		Email:    emailparser.NewAdapter(logger),
		PDF:      pdfparser.NewAdapter(logger),
		Template: templateParser,
	}

	logger.Info("Container initialized successfully",
		logging.Field{Key: "parsers_count", Value: len(parsers)})

	return &Container{
		logger:         logger,
		config:         cfg,
		templateStore:  templateStore,
		templateParser: templateParser,
		parsers:        parsers,
	}, nil
}

// GetParser returns a parser for the given type.
func (c *Container) GetParser(pt ParserType) (models.Parser, error) {
	p, ok := c.parsers[pt]
	if !ok {
		return nil, fmt.Errorf("unknown parser type: %s", pt)
	}
	return p, nil
}

// GetParsers returns a copy of the parser registry.
func (c *Container) GetParsers() map[ParserType]models.Parser {
	result := make(map[ParserType]models.Parser, len(c.parsers))
	for k, v := range c.parsers {
		result[k] = v
	}
	return result
}

// GetLogger returns the application logger.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the application configuration.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetTemplateStore returns the custom-template store.
func (c *Container) GetTemplateStore() *store.TemplateStore {
	return c.templateStore
}

// GetTemplateParser returns the template parser so callers can bind a
// template before parsing.
func (c *Container) GetTemplateParser() *templateparser.Adapter {
	return c.templateParser
}
