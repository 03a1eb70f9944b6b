package pdfparser_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fkimathi/chat-csv/internal/logging"
	"fkimathi/chat-csv/internal/models"
	"fkimathi/chat-csv/internal/parsererror"
	"fkimathi/chat-csv/internal/pdfparser"
)

func TestParse(t *testing.T) {
	t.Run("statement row with trailing balance", func(t *testing.T) {
		line := "12/05/2024 UTILITY PAYMENT REF99887766 1,200.00 15,300.50\n"

		records, err := pdfparser.Parse(strings.NewReader(line), &logging.MockLogger{})
		require.NoError(t, err)
		require.Len(t, records, 1)

		r := records[0]
		assert.Equal(t, "12/05/2024", r.Date)
		assert.Equal(t, "15300.5", r.Amount.String())
		assert.Equal(t, models.TypeStatement, r.Type)
		assert.Equal(t, "REF99887766", r.Reference)
		assert.Equal(t, "Bank", r.PaidBy)
		assert.Equal(t, "UTILITY PAYMENT REF99887766 1,200.00", r.Purpose)
	})

	t.Run("binary bytes are filtered out", func(t *testing.T) {
		var buf bytes.Buffer
		buf.Write([]byte{0x00, 0xFF, 0x07})
		buf.WriteString("01-02-2024 SALARY 45,000.00")
		buf.Write([]byte{0x01, 0x02})
		buf.WriteString("\n")

		records, err := pdfparser.Parse(&buf, &logging.MockLogger{})
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, "01-02-2024", records[0].Date)
		assert.Equal(t, "45000", records[0].Amount.String())
	})

	t.Run("reference falls back to placeholder", func(t *testing.T) {
		line := "12/05/2024 opening balance 1,000.00\n"

		records, err := pdfparser.Parse(strings.NewReader(line), &logging.MockLogger{})
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, models.RefPDF, records[0].Reference)
	})

	t.Run("line without a date is skipped", func(t *testing.T) {
		records, err := pdfparser.Parse(strings.NewReader("TOTAL 99,000.00\n"), &logging.MockLogger{})
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("empty description defaults", func(t *testing.T) {
		records, err := pdfparser.Parse(strings.NewReader("12/05/2024 500\n"), &logging.MockLogger{})
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, "Bank Transaction", records[0].Purpose)
	})

	t.Run("empty input is a structural error", func(t *testing.T) {
		_, err := pdfparser.Parse(bytes.NewReader(nil), &logging.MockLogger{})

		var missing *parsererror.MissingInputError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "pdf", missing.Source)
	})
}
