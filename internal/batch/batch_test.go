package batch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fkimathi/chat-csv/internal/batch"
	"fkimathi/chat-csv/internal/logging"
	"fkimathi/chat-csv/internal/models"
	"fkimathi/chat-csv/internal/whatsappparser"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestMerge(t *testing.T) {
	logger := &logging.MockLogger{}
	dir := t.TempDir()

	older := writeTempFile(t, dir, "older.txt",
		"12/5/2024, 10:30 - Alice: Sent Ksh 2,000 to Bob\n")
	newer := writeTempFile(t, dir, "newer.txt",
		"20/6/2024, 08:00 - Bob: Paid Ksh 900 rent\n")
	// Empty files fail parsing and must be skipped, not fatal.
	broken := writeTempFile(t, dir, "broken.txt", "")

	p := whatsappparser.NewAdapter(logger)
	records := batch.Merge([]string{older, broken, newer}, p, logger)

	require.Len(t, records, 2)
	assert.Equal(t, "900", records[0].Amount.String())
	assert.Equal(t, "2000", records[1].Amount.String())
	assert.True(t, logger.HasEntry("WARN", "Skipping unparseable file in batch"))
}

func TestMergeUnreadableFile(t *testing.T) {
	logger := &logging.MockLogger{}

	records := batch.Merge([]string{"/nonexistent/nope.txt"}, whatsappparser.NewAdapter(logger), logger)

	assert.Empty(t, records)
	assert.True(t, logger.HasEntry("WARN", "Skipping unreadable file in batch"))
}

func TestSortByDateDesc(t *testing.T) {
	records := []models.Record{
		{Date: "2024-05-12 10:30", Reference: "MID"},
		{Date: "not a date", Reference: "JUNK1"},
		{Date: "2024-06-01 09:00", Reference: "NEW"},
		{Date: "also junk", Reference: "JUNK2"},
		{Date: "2023-01-01", Reference: "OLD"},
	}

	batch.SortByDateDesc(records)

	var order []string
	for _, r := range records {
		order = append(order, r.Reference)
	}

	// Unparseable dates collapse to the epoch and keep their input order.
	assert.Equal(t, []string{"NEW", "MID", "OLD", "JUNK1", "JUNK2"}, order)
}
