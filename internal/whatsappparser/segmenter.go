package whatsappparser

import (
	"regexp"
	"strings"

	"fkimathi/chat-csv/internal/dateutils"
	"fkimathi/chat-csv/internal/models"
)

// A message header line: "12/5/2024, 10:30 - Alice: Sent ...". The time
// capture is deliberately loose so AM/PM markers and colloquial day parts
// ("1:22 in the afternoon") ride along and get normalized later.
var headerRe = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}),\s*(\d{1,2}:\d{2}.*?)\s*-\s*(.*?):\s*`)

// Segment splits a raw WhatsApp export into logical messages. A header line
// starts a new message; every non-header line is a continuation appended to
// the open message's body (covering multi-line messages and system notices
// without timestamps). Lines before the first header produce nothing.
func Segment(text string) []models.ChatMessage {
	var messages []models.ChatMessage
	var current *models.ChatMessage
	var buffer []string

	flush := func() {
		if current != nil {
			current.Content = strings.Join(buffer, "\n")
			messages = append(messages, *current)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		m := headerRe.FindStringSubmatch(line)
		if m == nil {
			if current != nil {
				buffer = append(buffer, line)
			}
			continue
		}

		flush()

		buffer = []string{line[len(m[0]):]}
		current = &models.ChatMessage{
			Date:     dateutils.NormalizeChatTimestamp(m[1], m[2]),
			Sender:   m[3],
			Original: line,
		}
	}

	flush()
	return messages
}
