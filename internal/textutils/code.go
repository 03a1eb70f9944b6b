package textutils

import "regexp"

// Reference codes are matched by shape only: the first standalone run of
// 8-12 uppercase letters and digits. There is no checksum validation, so a
// capitalized word of the right length is a known false positive. That is
// an accepted tradeoff of the heuristic.
var codeRe = regexp.MustCompile(`\b([A-Z0-9]{8,12})\b`)

// ExtractCode returns the first reference-code-shaped token in the text.
func ExtractCode(text string) (string, bool) {
	if m := codeRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}
