package textutils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Structured paybill / bank transfer shapes. Shape one:
	// "Bill payment to EQUITY PAYBILL ACCOUNT for account 0116382281".
	billPaymentRe = regexp.MustCompile(`(?i)(?:Bill payment to|sent to|paid to)\s*([A-Z0-9\s&]+?(?:LIMITED|STORE|BANK|ACCOUNT)?)\s*(?:for account|account number|for acc)\s*([A-Z0-9]+)`)

	// Shape two: "paid to KPLC, 888880 for account number 123456".
	paybillRe = regexp.MustCompile(`(?i)paid to\s*([A-Z0-9\s&]+?)\s*,\s*(\d+)\s*for account number\s*([A-Z0-9]+)`)

	paybillNoiseRe = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Paybill Account`),
		regexp.MustCompile(`(?i)Paybill`),
	}

	// Directional keyword anchors. Each capture stops at a comma, a digit,
	// the word "on", or end of string so trailing dates and amounts do not
	// bleed into the name.
	sentToRe       = regexp.MustCompile(`(?i)sent\s+to\s+([A-Za-z\s]+?)(?:\s*,|\s+\d|\s+on\b|\s*$)`)
	receivedFromRe = regexp.MustCompile(`(?i)received\s+from\s+([A-Za-z\s]+?)(?:\s*,|\s+\d|\s+on\b|\s*$)`)
	paidToRe       = regexp.MustCompile(`(?i)paid\s+to\s+([A-Za-z\s]+?)(?:\s*,|\s+\d|\s+on\b|\s*$)`)
	givenToRe      = regexp.MustCompile(`(?i)given\s+to\s+([A-Za-z\s]+?)(?:\s*,|\s+\d|\s+on\b|\s*$)`)
)

// Paybill holds a structured bill-payment destination.
type Paybill struct {
	Destination string
	Account     string
}

// ExtractPaybill attempts to match the two structured bill-payment shapes.
// Returns nil when neither matches.
func ExtractPaybill(text string) *Paybill {
	if m := billPaymentRe.FindStringSubmatch(text); m != nil {
		destination := CollapseWhitespace(m[1])
		for _, re := range paybillNoiseRe {
			destination = re.ReplaceAllString(destination, "")
		}
		return &Paybill{
			Destination: strings.TrimSpace(destination),
			Account:     strings.TrimSpace(m[2]),
		}
	}

	if m := paybillRe.FindStringSubmatch(text); m != nil {
		return &Paybill{
			Destination: CollapseWhitespace(m[1]),
			Account:     strings.TrimSpace(m[3]),
		}
	}

	return nil
}

// ExtractEntities resolves the (payer, payee) pair for a message from a
// known sender. A structured paybill destination wins outright; otherwise
// the directional anchors apply in fixed order, each allowed to overwrite
// the previous. The sender remains the payer unless "received from" names
// someone else.
func ExtractEntities(text, sender string) (paidBy, paidTo string) {
	if pb := ExtractPaybill(text); pb != nil {
		return sender, fmt.Sprintf("%s - Account No: %s", pb.Destination, pb.Account)
	}

	paidBy = sender
	paidTo = ""

	if m := sentToRe.FindStringSubmatch(text); m != nil {
		paidTo = m[1]
	}
	if m := receivedFromRe.FindStringSubmatch(text); m != nil {
		paidBy = m[1]
	}
	if m := paidToRe.FindStringSubmatch(text); m != nil {
		paidTo = m[1]
	}
	if m := givenToRe.FindStringSubmatch(text); m != nil {
		paidTo = m[1]
	}

	return CollapseWhitespace(paidBy), CollapseWhitespace(paidTo)
}
