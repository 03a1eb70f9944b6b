// Package whatsappparser extracts transaction records from WhatsApp chat
// exports. Messages are segmented first, then each message runs a
// gatekeeper check before any field extraction is attempted; a message
// without a resolvable amount is always skipped.
package whatsappparser

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

var (
	// Gatekeeper: a message must show at least one transaction signal
	// before extraction is attempted.
	gatekeeperRe = regexp.MustCompile(`(?i)Ksh|KES|USD|\d+[kK]\b|sent to|paid to|received from|deposited to|Confirmed\.|given to`)

	// "for school fees" style purpose clause inside the message itself.
	forClauseRe = regexp.MustCompile(`(?i)\bfor\s+(.+?)(?:\.|$)`)

	// A follow-up message that itself looks like a transaction is not a
	// purpose note.
	nextLooksTransactionalRe = regexp.MustCompile(`(?i)sent to|paid to|received|Ksh|KES`)

	purposeKeywordsRe = regexp.MustCompile(`(?i)labour|labor|material|cement|sand|transport|fee|deposit|allowance|fuel|hives`)
)

const (
	purposeFallback = "General / See Reference"
	shortNoteLimit  = 150
)

// Parse reads a WhatsApp chat export and returns the extracted records.
func Parse(r io.Reader, logger logging.Logger) ([]models.Record, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, &parsererror.MissingInputError{Source: "whatsapp"}
	}

	messages := Segment(string(data))
	logger.Debug("Segmented chat export",
		logging.Field{Key: logging.FieldCount, Value: len(messages)})

	records := make([]models.Record, 0)
	for i, msg := range messages {
		content := textutils.CleanMessage(msg.Content)

		if !gatekeeperRe.MatchString(content) {
			continue
		}

		amount, ok := textutils.ExtractAmount(content)
		if !ok || !amount.IsPositive() {
			logger.Debug("Message passed gatekeeper but has no resolvable amount",
				logging.Field{Key: "sender", Value: msg.Sender})
			continue
		}

		reference := models.RefManual
		if code, ok := textutils.ExtractCode(content); ok {
			reference = code
		}

		paidBy, paidTo := textutils.ExtractEntities(content, msg.Sender)

		var next string
		if i+1 < len(messages) {
			next = messages[i+1].Content
		}

		records = append(records, models.Record{
			Date:      msg.Date,
			Amount:    amount,
			Type:      classifier.WhatsApp.Classify(content),
			Reference: reference,
			PaidBy:    paidBy,
			PaidTo:    paidTo,
			Purpose:   resolvePurpose(content, next),
		})
	}

	logger.Info("Extracted records from WhatsApp export",
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	return records, nil
}

// resolvePurpose finds a purpose for the record: a "for <phrase>" clause in
// the message wins; otherwise a short, non-transactional follow-up message
// is treated as a purpose note; otherwise the fixed placeholder.
func resolvePurpose(content, nextContent string) string {
	if m := forClauseRe.FindStringSubmatch(content); m != nil {
		if phrase := strings.TrimSpace(m[1]); len(phrase) > 3 {
			return phrase
		}
	}

	if nextContent != "" {
		cleanNext := strings.TrimSpace(nextContent)
		isNextTransactional := nextLooksTransactionalRe.MatchString(cleanNext)
		isShortNote := len(cleanNext) < shortNoteLimit
		hasKeywords := purposeKeywordsRe.MatchString(cleanNext)

		if !isNextTransactional && (isShortNote || hasKeywords) {
			return cleanNext
		}
	}

	return purposeFallback
}
