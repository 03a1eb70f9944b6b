// Package telegramparser extracts transaction records from Telegram chat
// exports. The format is line oriented: date stamps appear on their own
// lines or inline, and apply to every following line until the next stamp.
package telegramparser

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"fkimathi/chat-csv/internal/classifier"
	"fkimathi/chat-csv/internal/logging"
	"fkimathi/chat-csv/internal/models"
	"fkimathi/chat-csv/internal/parsererror"
	"fkimathi/chat-csv/internal/textutils"
)

const fallbackUser = "Telegram User"

var (
	// A running date stamp: "12/5/2024 ... 10:30" or "2024-05-12 ... 10:30".
	// The full match, not just the date part, becomes the record date so the
	// time rides along.
	dateStampRe = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{1,2}-\d{1,2}).+?(\d{1,2}:\d{2})`)

	// Lines worth inspecting for a transaction.
	keywordRe = regexp.MustCompile(`(?i)amount|ksh|usd|transfer|sent|received|paid|cash`)

	// Loose name capture used to attribute a transaction to whoever posted
	// on the current date line.
	userRe = regexp.MustCompile(`(?:From|User|@)?\s*([A-Za-z][A-Za-z\s]*?)(?:\s*[\d:]+|$)`)
)

// Parse reads a Telegram export and returns the extracted records.
func Parse(r io.Reader, logger logging.Logger) ([]models.Record, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	text := string(data)
	if len(strings.TrimSpace(text)) == 0 {
		return nil, &parsererror.MissingInputError{Source: "telegram"}
	}

	lines := strings.Split(text, "\n")

	records := make([]models.Record, 0)
	currentDate := ""

	for _, line := range lines {
		if strings.TrimSpace(line) == "" ||
			strings.HasPrefix(line, "Telegram export") ||
			strings.HasPrefix(line, "=") {
			continue
		}

		if m := dateStampRe.FindString(line); m != "" {
			currentDate = m
		}

		if !keywordRe.MatchString(line) {
			continue
		}

		amount, ok := textutils.ExtractCurrencyAmount(line)
		if !ok || !amount.IsPositive() || currentDate == "" {
			continue
		}

		reference := models.RefTG
		if code, ok := textutils.ExtractCode(line); ok {
			reference = code
		}

		paidBy := extractUser(lines, currentDate)
		if paidBy == "" {
			paidBy = fallbackUser
		}

		records = append(records, models.Record{
			Date:      currentDate,
			Amount:    amount,
			Type:      classifier.Generic.Classify(line),
			Reference: reference,
			PaidBy:    paidBy,
			Purpose:   strings.TrimSpace(line),
		})
	}

	logger.Info("Extracted records from Telegram export",
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	return records, nil
}

// extractUser scans for a line carrying the current date stamp and pulls a
// plausible sender name off it.
func extractUser(lines []string, date string) string {
	for _, line := range lines {
		if !strings.Contains(line, date) {
			continue
		}
		if m := userRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
