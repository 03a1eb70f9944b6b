package pdfparser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fkimathi/chat-csv/internal/logging"
	"fkimathi/chat-csv/internal/pdfparser"
)

func TestValidateFormat(t *testing.T) {
	dir := t.TempDir()
	a := pdfparser.NewAdapter(&logging.MockLogger{})

	t.Run("pdf signature", func(t *testing.T) {
		path := filepath.Join(dir, "statement.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7 rest of file"), 0600))

		valid, err := a.ValidateFormat(path)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("plain text is not a pdf", func(t *testing.T) {
		path := filepath.Join(dir, "plain.txt")
		require.NoError(t, os.WriteFile(path, []byte("hello world"), 0600))

		valid, err := a.ValidateFormat(path)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.pdf")
		require.NoError(t, os.WriteFile(path, nil, 0600))

		valid, err := a.ValidateFormat(path)
		require.NoError(t, err)
		assert.False(t, valid)
	})
}
