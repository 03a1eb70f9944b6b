// Package batch merges records extracted from multiple input files into a
// single list, newest first. A file that fails to parse is logged and
// skipped so one bad export does not sink the whole batch.
package batch

import (
	"os"
	"sort"

	"fkimathi/chat-csv/internal/dateutils"
	"fkimathi/chat-csv/internal/logging"
	"fkimathi/chat-csv/internal/models"
)

// Merge parses every file with the given parser and concatenates the
// results, sorted by date descending.
func Merge(files []string, p models.Parser, logger logging.Logger) []models.Record {
	if logger == nil {
		logger = logging.GetLogger()
	}

	merged := make([]models.Record, 0)
	for _, file := range files {
		f, err := os.Open(file) // #nosec G304 -- CLI tool requires user-provided file paths
		if err != nil {
			logger.WithError(err).Warn("Skipping unreadable file in batch",
				logging.Field{Key: logging.FieldFile, Value: file})
			continue
		}

		records, err := p.Parse(f)
		if cerr := f.Close(); cerr != nil {
			logger.WithError(cerr).Warn("Failed to close input file",
				logging.Field{Key: logging.FieldFile, Value: file})
		}
		if err != nil {
			logger.WithError(err).Warn("Skipping unparseable file in batch",
				logging.Field{Key: logging.FieldFile, Value: file})
			continue
		}

		logger.Debug("Parsed batch file",
			logging.Field{Key: logging.FieldFile, Value: file},
			logging.Field{Key: logging.FieldCount, Value: len(records)})

		merged = append(merged, records...)
	}

	SortByDateDesc(merged)

	logger.Info("Merged batch records",
		logging.Field{Key: logging.FieldCount, Value: len(merged)})

	return merged
}

// SortByDateDesc sorts records newest first using best-effort date parsing.
// Records whose dates cannot be parsed sink to the end together, keeping
// their relative input order.
func SortByDateDesc(records []models.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return dateutils.BestEffort(records[i].Date).After(dateutils.BestEffort(records[j].Date))
	})
}
