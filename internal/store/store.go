// Package store provides persistence for the custom-template library.
// Templates are plain YAML so users can edit pattern sets by hand and run
// them by name from the CLI.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fkimathi/chat-csv/internal/fileutils"
	"fkimathi/chat-csv/internal/logging"
	"fkimathi/chat-csv/internal/models"

	"gopkg.in/yaml.v3"
)

// TemplateStore manages loading and saving of custom extraction templates.
type TemplateStore struct {
	TemplatesFile string
	logger        logging.Logger
}

// NewTemplateStore creates a store backed by the given YAML file.
func NewTemplateStore(templatesFile string, logger logging.Logger) *TemplateStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &TemplateStore{
		TemplatesFile: templatesFile,
		logger:        logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *TemplateStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "chat-csv", filename)
		if fileutils.FileExists(configPath) {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadTemplates loads all templates from the YAML file. A missing file is
// not an error; it yields an empty library.
func (s *TemplateStore) LoadTemplates() ([]models.CustomTemplate, error) {
	filename := s.TemplatesFile
	if filename == "" {
		filename = "templates.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("Templates file not found",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return []models.CustomTemplate{}, nil
		}
		return nil, fmt.Errorf("error resolving templates file: %w", err)
	}

	data, err := fileutils.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading templates file: %w", err)
	}

	var templates []models.CustomTemplate
	if err := yaml.Unmarshal(data, &templates); err != nil {
		s.logger.WithError(err).Error("Failed to parse templates file",
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return nil, fmt.Errorf("error parsing templates file: %w", err)
	}

	for i := range templates {
		templates[i].EnsureID()
	}

	s.logger.Debug("Loaded custom templates",
		logging.Field{Key: logging.FieldCount, Value: len(templates)},
		logging.Field{Key: logging.FieldFile, Value: filePath})

	return templates, nil
}

// GetTemplate returns the template with the given name, or an error when
// the library has no such entry.
func (s *TemplateStore) GetTemplate(name string) (*models.CustomTemplate, error) {
	templates, err := s.LoadTemplates()
	if err != nil {
		return nil, err
	}

	for i := range templates {
		if templates[i].Name == name {
			return &templates[i], nil
		}
	}

	return nil, fmt.Errorf("template not found: %s", name)
}

// SaveTemplates writes the template library back to the YAML file.
func (s *TemplateStore) SaveTemplates(templates []models.CustomTemplate) error {
	filename := s.TemplatesFile
	if filename == "" {
		filename = "templates.yaml"
	}

	for i := range templates {
		templates[i].EnsureID()
	}

	data, err := yaml.Marshal(templates)
	if err != nil {
		return fmt.Errorf("error serializing templates: %w", err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating templates directory: %w", err)
		}
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("error writing templates file: %w", err)
	}

	s.logger.Info("Saved custom templates",
		logging.Field{Key: logging.FieldCount, Value: len(templates)},
		logging.Field{Key: logging.FieldFile, Value: filename})

	return nil
}
