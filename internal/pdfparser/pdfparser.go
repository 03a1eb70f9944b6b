// Package pdfparser extracts transaction records from raw PDF bytes
// without a PDF library. The bytes are filtered down to printable ASCII
// and the remaining text is scanned line by line for statement-shaped
// rows: a date token plus at least one thousands-grouped amount.
package pdfparser

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"fkimathi/chat-csv/internal/logging"
	"fkimathi/chat-csv/internal/models"
	"fkimathi/chat-csv/internal/parsererror"
	"fkimathi/chat-csv/internal/textutils"
)

var (
	lineDateRe = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{4}|\d{1,2}-\d{1,2}-\d{4})\b`)

	// Statement rows usually end with the transaction amount followed by a
	// running balance, so the LAST amount on a line is taken.
	lineAmountRe = regexp.MustCompile(`\b([0-9]{1,3}(?:,?[0-9]{3})*(?:\.[0-9]{2})?)\b`)

	lineSplitRe = regexp.MustCompile(`[\n\r]`)
)

const (
	paidByBank     = "Bank"
	defaultPurpose = "Bank Transaction"
)

// Parse reads raw PDF bytes and returns the extracted records.
func Parse(r io.Reader, logger logging.Logger) ([]models.Record, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(data) == 0 {
		return nil, &parsererror.MissingInputError{Source: "pdf"}
	}

	text := filterPrintable(data)

	records := make([]models.Record, 0)
	for _, raw := range lineSplitRe.Split(text, -1) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		dateMatch := lineDateRe.FindString(line)
		if dateMatch == "" {
			continue
		}

		amounts := lineAmountRe.FindAllString(line, -1)
		if len(amounts) == 0 {
			continue
		}

		amountStr := amounts[len(amounts)-1]
		amount, ok := textutils.ParseNumber(amountStr)
		if !ok || !amount.IsPositive() {
			continue
		}

		reference := models.RefPDF
		if code, found := textutils.ExtractCode(line); found {
			reference = code
		}

		description := line
		description = strings.Replace(description, dateMatch, "", 1)
		description = strings.Replace(description, amountStr, "", 1)
		description = strings.TrimSpace(description)
		if description == "" {
			description = defaultPurpose
		}

		records = append(records, models.Record{
			Date:      dateMatch,
			Amount:    amount,
			Type:      models.TypeStatement,
			Reference: reference,
			PaidBy:    paidByBank,
			Purpose:   description,
		})
	}

	logger.Info("Extracted records from PDF bytes",
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	return records, nil
}

// filterPrintable keeps printable ASCII plus line breaks and drops
// everything else, which is enough to expose uncompressed text runs in a
// PDF byte stream.
func filterPrintable(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		if (c >= 32 && c <= 126) || c == '\n' || c == '\r' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
