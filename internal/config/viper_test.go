package config_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fkimathi/chat-csv/internal/config"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := config.InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "whatsapp", cfg.Extraction.DefaultSource)
	assert.Equal(t, "templates.yaml", cfg.Templates.File)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("CHATCSV_LOG_LEVEL", "debug")
	t.Setenv("CHATCSV_CSV_DELIMITER", ";")

	cfg, err := config.InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
}

func TestInitializeConfigValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{
			name:  "invalid log level",
			key:   "CHATCSV_LOG_LEVEL",
			value: "chatty",
			want:  "invalid log level",
		},
		{
			name:  "invalid log format",
			key:   "CHATCSV_LOG_FORMAT",
			value: "xml",
			want:  "invalid log format",
		},
		{
			name:  "multi character delimiter",
			key:   "CHATCSV_CSV_DELIMITER",
			value: ";;",
			want:  "delimiter",
		},
		{
			name:  "unknown default source",
			key:   "CHATCSV_EXTRACTION_DEFAULT_SOURCE",
			value: "fax",
			want:  "invalid default source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.InitializeConfig()
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg, err := config.InitializeConfig()
	require.NoError(t, err)

	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := config.ConfigureLoggingFromConfig(cfg)
	require.NotNil(t, logger)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
