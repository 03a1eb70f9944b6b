// Package templateparser runs caller-supplied regex templates over
// arbitrary line-oriented text. Each of the five field patterns is
// independently optional; a pattern that fails to compile disables that
// field for the run instead of failing the extraction.
package templateparser

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fkimathi/chat-csv/internal/logging"
	"fkimathi/chat-csv/internal/models"
	"fkimathi/chat-csv/internal/parsererror"
)

var nonNumericRe = regexp.MustCompile(`[^0-9.]`)

// fieldPatterns holds the compiled per-field regexes. A nil entry means
// the field is absent from the template or its pattern failed to compile.
type fieldPatterns struct {
	date      *regexp.Regexp
	amount    *regexp.Regexp
	reference *regexp.Regexp
	paidBy    *regexp.Regexp
	paidTo    *regexp.Regexp
}

// compilePatterns compiles the template's patterns case-insensitively.
// Compile failures are logged per field and leave the other fields live.
func compilePatterns(tmpl *models.CustomTemplate, logger logging.Logger) fieldPatterns {
	compile := func(field, pattern string) *regexp.Regexp {
		if pattern == "" {
			return nil
		}
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			patternErr := &parsererror.PatternError{
				Template: tmpl.Name,
				Field:    field,
				Pattern:  pattern,
				Err:      err,
			}
			logger.WithError(patternErr).Warn("Disabling template field",
				logging.Field{Key: logging.FieldTemplate, Value: tmpl.Name},
				logging.Field{Key: logging.FieldPattern, Value: pattern})
			return nil
		}
		return re
	}

	return fieldPatterns{
		date:      compile("date", tmpl.DatePattern),
		amount:    compile("amount", tmpl.AmountPattern),
		reference: compile("reference", tmpl.ReferencePattern),
		paidBy:    compile("paid_by", tmpl.PaidByPattern),
		paidTo:    compile("paid_to", tmpl.PaidToPattern),
	}
}

// matchValue returns the first capture group when the pattern has one and
// it matched, otherwise the whole match.
func matchValue(re *regexp.Regexp, line string) (string, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	if len(m) > 1 && m[1] != "" {
		return m[1], true
	}
	return m[0], true
}

// pending accumulates field matches across lines until the record flushes.
type pending struct {
	date      string
	amount    decimal.Decimal
	hasAmount bool
	reference string
	paidBy    string
	paidTo    string
}

// Parse runs the template over the input and returns the extracted records.
func Parse(r io.Reader, tmpl *models.CustomTemplate, logger logging.Logger) ([]models.Record, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if tmpl == nil {
		return nil, fmt.Errorf("custom template is required")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	text := string(data)
	if len(strings.TrimSpace(text)) == 0 {
		return nil, &parsererror.MissingInputError{Source: "template"}
	}

	patterns := compilePatterns(tmpl, logger)

	records := make([]models.Record, 0)
	var current pending

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if patterns.date != nil {
			if m := patterns.date.FindString(line); m != "" {
				current.date = m
			}
		}
		if patterns.amount != nil {
			if v, ok := matchValue(patterns.amount, line); ok {
				digits := nonNumericRe.ReplaceAllString(v, "")
				if amount, err := decimal.NewFromString(digits); err == nil {
					current.amount = amount
					current.hasAmount = true
				} else {
					parseErr := &parsererror.ParseError{
						Parser: "template",
						Field:  "amount",
						Value:  v,
						Err:    err,
					}
					logger.WithError(parseErr).Debug("Matched amount is not a number")
				}
			}
		}
		if patterns.reference != nil {
			if v, ok := matchValue(patterns.reference, line); ok {
				current.reference = v
			}
		}
		if patterns.paidBy != nil {
			if v, ok := matchValue(patterns.paidBy, line); ok {
				current.paidBy = v
			}
		}
		if patterns.paidTo != nil {
			if v, ok := matchValue(patterns.paidTo, line); ok {
				current.paidTo = v
			}
		}

		if current.hasAmount && current.amount.IsPositive() && (current.date != "" || current.reference != "") {
			records = append(records, buildRecord(current, tmpl, line))
			current = pending{}
		}
	}

	logger.Info("Extracted records with custom template",
		logging.Field{Key: logging.FieldTemplate, Value: tmpl.Name},
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	return records, nil
}

func buildRecord(p pending, tmpl *models.CustomTemplate, line string) models.Record {
	date := p.date
	if date == "" {
		date = time.Now().Format(time.RFC3339)
	}
	reference := p.reference
	if reference == "" {
		reference = tmpl.Name
	}
	return models.Record{
		Date:      date,
		Amount:    p.amount,
		Type:      models.TypeCustom,
		Reference: reference,
		PaidBy:    p.paidBy,
		PaidTo:    p.paidTo,
		Purpose:   strings.TrimSpace(line),
	}
}
