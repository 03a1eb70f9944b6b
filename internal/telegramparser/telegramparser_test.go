package telegramparser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fkimathi/chat-csv/internal/logging"
	"fkimathi/chat-csv/internal/models"
	"fkimathi/chat-csv/internal/parsererror"
	"fkimathi/chat-csv/internal/telegramparser"
)

func TestParse(t *testing.T) {
	t.Run("running date applies to following lines", func(t *testing.T) {
		text := "Telegram export from Family Group\n" +
			"====================\n" +
			"12/5/2024 John 14:30\n" +
			"Sent Ksh 5,000 to Mary for rent ABCD1234\n" +
			"ok thanks\n"

		records, err := telegramparser.Parse(strings.NewReader(text), &logging.MockLogger{})
		require.NoError(t, err)
		require.Len(t, records, 1)

		r := records[0]
		assert.Equal(t, "12/5/2024 John 14:30", r.Date)
		assert.Equal(t, "5000", r.Amount.String())
		assert.Equal(t, "ABCD1234", r.Reference)
		assert.Equal(t, "John", r.PaidBy)
		assert.Equal(t, "Sent Ksh 5,000 to Mary for rent ABCD1234", r.Purpose)
	})

	t.Run("keyword line without a seen date is skipped", func(t *testing.T) {
		text := "Sent Ksh 5,000 to Mary\n" +
			"12/5/2024 John 14:30\n"

		records, err := telegramparser.Parse(strings.NewReader(text), &logging.MockLogger{})
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("keyword line without currency amount is skipped", func(t *testing.T) {
		text := "12/5/2024 John 14:30\n" +
			"sent the documents to Mary\n"

		records, err := telegramparser.Parse(strings.NewReader(text), &logging.MockLogger{})
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("zero amount line is skipped", func(t *testing.T) {
		text := "12/5/2024 John 14:30\n" +
			"sent Ksh 0 to Mary\n"

		records, err := telegramparser.Parse(strings.NewReader(text), &logging.MockLogger{})
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("reference falls back to placeholder", func(t *testing.T) {
		text := "2024-05-12 anna 09:15\n" +
			"paid ksh 750 for lunch\n"

		records, err := telegramparser.Parse(strings.NewReader(text), &logging.MockLogger{})
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, models.RefTG, records[0].Reference)
		assert.Equal(t, "750", records[0].Amount.String())
	})

	t.Run("type comes from the generic vocabulary", func(t *testing.T) {
		text := "12/5/2024 John 14:30\n" +
			"bank transfer of Ksh 10,000 done\n"

		records, err := telegramparser.Parse(strings.NewReader(text), &logging.MockLogger{})
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, models.TypeBankTransfer, records[0].Type)
	})

	t.Run("unattributable sender falls back to placeholder", func(t *testing.T) {
		text := "12/5/2024 14:30\n" +
			"received Ksh 300 refund\n"

		records, err := telegramparser.Parse(strings.NewReader(text), &logging.MockLogger{})
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, "Telegram User", records[0].PaidBy)
	})

	t.Run("empty input is a structural error", func(t *testing.T) {
		_, err := telegramparser.Parse(strings.NewReader(""), &logging.MockLogger{})

		var missing *parsererror.MissingInputError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "telegram", missing.Source)
	})
}
