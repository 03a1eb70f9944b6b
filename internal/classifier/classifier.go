// Package classifier maps keyword presence to a transaction category.
//
// Each source parser carries its own Vocabulary because the sources differ
// in both keyword sets and fallback labels; sharing one global classifier
// would silently unify behavior that is intentionally distinct.
package classifier

import (
	"regexp"

	"fkimathi/chat-csv/internal/models"
)

// Group pairs a category label with the keyword pattern that selects it.
type Group struct {
	Label   string
	Pattern *regexp.Regexp
}

// Vocabulary is an ordered list of keyword groups plus the label returned
// when none match. Groups are tested in order; the first match wins.
type Vocabulary struct {
	Groups   []Group
	Fallback string
}

// Classify returns the first matching group's label, or the fallback.
func (v Vocabulary) Classify(text string) string {
	for _, g := range v.Groups {
		if g.Pattern.MatchString(text) {
			return g.Label
		}
	}
	return v.Fallback
}

// WhatsApp is the chat-message vocabulary: M-PESA branding first, then the
// named Kenyan banks, then remittance services, then cash-in-hand wording.
var WhatsApp = Vocabulary{
	Groups: []Group{
		{models.TypeMPesa, regexp.MustCompile(`(?i)M-PESA|MPESA`)},
		{models.TypeBankTransfer, regexp.MustCompile(`(?i)Equity|KCB|Co-op|Bank|I&M`)},
		{models.TypeRemittance, regexp.MustCompile(`(?i)WorldRemit|Remitly|Wise`)},
		{models.TypeCash, regexp.MustCompile(`(?i)\bcash\b|hand|given`)},
	},
	Fallback: models.TypeOther,
}

// Generic is the vocabulary for Telegram lines and email subjects, where
// generic banking vocabulary outranks brand names and card/cheque wording
// is meaningful.
var Generic = Vocabulary{
	Groups: []Group{
		{models.TypeBankTransfer, regexp.MustCompile(`(?i)bank|transfer|deposit|swift|wire`)},
		{models.TypeMPesa, regexp.MustCompile(`(?i)M-PESA|MPESA`)},
		{models.TypeRemittance, regexp.MustCompile(`(?i)worldremit|remitly|wise|xoom|money gram`)},
		{models.TypeCard, regexp.MustCompile(`(?i)card|credit`)},
		{models.TypeCheque, regexp.MustCompile(`(?i)cheque`)},
	},
	Fallback: models.TypeOther,
}
