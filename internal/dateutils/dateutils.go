// Package dateutils provides common date and time operations used throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutISOTime  = "2006-01-02 15:04"
	DateLayoutFull     = "2006-01-02 15:04:05"
	DateLayoutSlashDMY = "2/1/2006"
	DateLayoutDashYMD  = "2006-1-2"
)

// CommonFormats is the list of layouts tried when parsing a record date.
// Chat exports are loose about separators and zero padding, so the list
// leans on Go's non-padded layout verbs.
var CommonFormats = []string{
	DateLayoutISOTime,
	DateLayoutFull,
	DateLayoutISO,
	"2006-1-2 15:04",
	DateLayoutDashYMD,
	"2006-1-2 3:04 PM",
	"2/1/2006 15:04",
	"2/1/2006, 15:04",
	"2/1/2006 3:04 PM",
	DateLayoutSlashDMY,
	"2/1/06",
	"2-1-2006",
	time.RFC3339,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006",
	"Jan 2, 2006",
}

var (
	dateTokenRegexp = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}-\d{1,2}-\d{1,2}`)
	timeTokenRegexp = regexp.MustCompile(`\d{1,2}:\d{2}`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// CleanDateString removes unwanted characters and normalizes a date string.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return whitespaceRe.ReplaceAllString(dateStr, " ")
}

// ParseDate attempts to parse a date string using multiple common formats.
func ParseDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// BestEffort parses a record date for sorting. The string may be a clean
// normalized timestamp or a raw fragment carrying extra text around the
// date, as Telegram running dates do. Unparseable input yields the Unix
// epoch so batch sorting never fails on a dirty date.
func BestEffort(dateStr string) time.Time {
	if t, err := ParseDate(dateStr); err == nil {
		return t
	}

	// Salvage a date-shaped token (and optionally a time) from noisy input.
	if token := dateTokenRegexp.FindString(dateStr); token != "" {
		candidate := token
		if clock := timeTokenRegexp.FindString(dateStr); clock != "" {
			candidate = token + " " + clock
		}
		if t, err := ParseDate(candidate); err == nil {
			return t
		}
		if t, err := ParseDate(token); err == nil {
			return t
		}
	}

	return time.Unix(0, 0)
}

// Colloquial day-part markers seen in WhatsApp exports, replaced before the
// timestamp is assembled.
var colloquialTimes = []struct{ from, to string }{
	{"in the morning", "AM"},
	{"in the afternoon", "PM"},
	{"in the evening", "PM"},
	{"at night", "PM"},
}

// NormalizeChatTimestamp converts a WhatsApp header date and free-text time
// ("12/5/2024", "1:22 in the afternoon") into a loosely normalized
// "YYYY-MM-DD HH:MM[ AM/PM]" string. The day/month/year parts are reordered
// positionally without validation; dates that cannot be split into three
// parts pass through in source form.
func NormalizeChatTimestamp(dateStr, timeStr string) string {
	cleanTime := timeStr
	for _, m := range colloquialTimes {
		cleanTime = strings.ReplaceAll(cleanTime, m.from, m.to)
	}
	cleanTime = strings.NewReplacer("-", " ").Replace(cleanTime)
	cleanTime = CleanDateString(cleanTime)

	parts := strings.FieldsFunc(dateStr, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) == 3 {
		d, m, y := pad2(parts[0]), pad2(parts[1]), parts[2]
		return fmt.Sprintf("%s-%s-%s %s", y, m, d, cleanTime)
	}
	return fmt.Sprintf("%s %s", dateStr, cleanTime)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
