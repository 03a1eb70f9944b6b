// Package emailparser extracts transaction records from plain-text email
// bodies such as bank and mobile-money notifications. Labeled fields are
// accumulated line by line into a pending record which flushes as soon as
// it is complete, so one body can yield several records.
package emailparser

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fkimathi/chat-csv/internal/classifier"
	"fkimathi/chat-csv/internal/logging"
	"fkimathi/chat-csv/internal/models"
	"fkimathi/chat-csv/internal/parsererror"
	"fkimathi/chat-csv/internal/textutils"
)

var (
	amountFieldRe    = regexp.MustCompile(`(?i)(?:Amount|Transferred|Credited|Debited)[:=\s]+(?:Ksh|KES|USD|EUR|GBP|K)?\s*([0-9,]+(?:\.[0-9]+)?)`)
	referenceFieldRe = regexp.MustCompile(`(?i)(?:Reference|Code|Transaction ID|Confirmation)[:=\s]+([A-Z0-9]{6,12})`)
	recipientFieldRe = regexp.MustCompile(`(?i)(?:To|Recipient|Payee)[:=\s]+([A-Za-z\s]+)`)
	senderFieldRe    = regexp.MustCompile(`(?i)(?:From|Sender|Account)[:=\s]+([A-Za-z\s0-9]+)`)
	statusFieldRe    = regexp.MustCompile(`(?i)Status[:=\s]+(Success|Completed|Pending|Failed)`)

	// Last resort when no labeled fields completed a record: any number in
	// the subject line.
	subjectAmountRe = regexp.MustCompile(`(?i)([0-9,]+(?:\.[0-9]+)?)\s*(?:Ksh|KES|USD|EUR|GBP)?`)
)

const defaultStatus = "Completed"

// pending accumulates labeled fields until the record is complete.
type pending struct {
	amount    decimal.Decimal
	hasAmount bool
	reference string
	paidBy    string
	paidTo    string
	status    string
}

func (p *pending) complete() bool {
	candidate := models.Record{PaidBy: p.paidBy, PaidTo: p.paidTo}
	return p.hasAmount && p.amount.IsPositive() && p.reference != "" && candidate.HasParty()
}

// Parse reads an email body and returns the extracted records.
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
		return nil, &parsererror.MissingInputError{Source: "email"}
	}

	var (
		records = make([]models.Record, 0)
		current pending
		subject string
		sender  string
		date    string
	)

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "Subject:") {
			subject = strings.TrimSpace(strings.TrimPrefix(line, "Subject:"))
		}
		if strings.HasPrefix(line, "From:") {
			sender = strings.TrimSpace(strings.TrimPrefix(line, "From:"))
		}
		if strings.HasPrefix(line, "Date:") {
			date = strings.TrimSpace(strings.TrimPrefix(line, "Date:"))
		}

		if m := amountFieldRe.FindStringSubmatch(line); m != nil {
			if amount, ok := textutils.ParseNumber(m[1]); ok {
				current.amount = amount
				current.hasAmount = true
			}
		}
		if m := referenceFieldRe.FindStringSubmatch(line); m != nil {
			current.reference = m[1]
		}
		if m := recipientFieldRe.FindStringSubmatch(line); m != nil {
			current.paidTo = strings.TrimSpace(m[1])
		}
		if m := senderFieldRe.FindStringSubmatch(line); m != nil {
			current.paidBy = strings.TrimSpace(m[1])
		}
		if m := statusFieldRe.FindStringSubmatch(line); m != nil {
			current.status = m[1]
		}

		if current.complete() {
			records = append(records, buildRecord(current, subject, sender, date))
			current = pending{}
		}
	}

	// Some notification emails carry everything in the subject line.
	if len(records) == 0 && subject != "" {
		if m := subjectAmountRe.FindStringSubmatch(subject); m != nil {
			if amount, ok := textutils.ParseNumber(m[1]); ok && amount.IsPositive() {
				reference := models.RefEmail
				if code, ok := textutils.ExtractCode(subject); ok {
					reference = code
				}
				records = append(records, models.Record{
					Date:      orNow(date),
					Amount:    amount,
					Type:      classifier.Generic.Classify(subject),
					Reference: reference,
					PaidBy:    sender,
					Purpose:   subject,
					Status:    defaultStatus,
				})
			}
		}
	}

	logger.Info("Extracted records from email body",
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	return records, nil
}

func buildRecord(p pending, subject, sender, date string) models.Record {
	paidBy := p.paidBy
	if paidBy == "" {
		paidBy = sender
	}
	status := p.status
	if status == "" {
		status = defaultStatus
	}
	return models.Record{
		Date:      orNow(date),
		Amount:    p.amount,
		Type:      classifier.Generic.Classify(subject),
		Reference: p.reference,
		PaidBy:    paidBy,
		PaidTo:    p.paidTo,
		Purpose:   subject,
		Status:    status,
	}
}

func orNow(date string) string {
	if date != "" {
		return date
	}
	return time.Now().Format(time.RFC3339)
}
