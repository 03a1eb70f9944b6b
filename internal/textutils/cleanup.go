package textutils

import (
	"regexp"
	"strings"
)

// Zero-width and directional formatting marks that WhatsApp sprinkles into
// exported text (U+200B, U+200E, U+200F).
var invisibleRe = regexp.MustCompile("[\u200B\u200E\u200F]")

var whitespaceRunRe = regexp.MustCompile(`\s+`)

// StripInvisible removes zero-width and directional formatting characters.
func StripInvisible(s string) string {
	return invisibleRe.ReplaceAllString(s, "")
}

// CollapseWhitespace folds every whitespace run into a single space and
// trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRunRe.ReplaceAllString(s, " "))
}

// CleanMessage prepares raw message content for extraction: formatting
// marks removed, whitespace collapsed.
func CleanMessage(s string) string {
	return CollapseWhitespace(StripInvisible(s))
}
