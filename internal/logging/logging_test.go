package logging_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fkimathi/chat-csv/internal/logging"
)

func TestNewLogrusAdapter(t *testing.T) {
	logger := logging.NewLogrusAdapter("debug", "json")
	require.NotNil(t, logger)

	// Chained loggers must come back as the same interface.
	assert.NotNil(t, logger.WithError(errors.New("boom")))
	assert.NotNil(t, logger.WithFields(logging.Field{Key: "a", Value: 1}))
}

func TestNewLogrusAdapterInvalidLevel(t *testing.T) {
	assert.NotNil(t, logging.NewLogrusAdapter("nonsense", "text"))
}

func TestGetLoggerDefault(t *testing.T) {
	logger := logging.GetLogger()
	require.NotNil(t, logger)

	// Repeated calls return the same default.
	assert.Equal(t, logger, logging.GetLogger())
}

func TestSetDefaultLogger(t *testing.T) {
	mock := &logging.MockLogger{}
	logging.SetDefaultLogger(mock)

	assert.Equal(t, logging.Logger(mock), logging.GetLogger())

	// Restore a real adapter so other tests are unaffected.
	logging.SetDefaultLogger(logging.NewLogrusAdapter("info", "text"))
}

func TestMockLoggerCapture(t *testing.T) {
	mock := &logging.MockLogger{}

	mock.Info("hello", logging.Field{Key: "n", Value: 1})
	mock.WithError(errors.New("boom")).Warn("problem")

	require.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasEntry("INFO", "hello"))
	assert.True(t, mock.HasEntry("WARN", "problem"))
	assert.EqualError(t, mock.Entries[1].Error, "boom")

	mock.Clear()
	assert.Empty(t, mock.Entries)
}
