// Package models provides the data structures used throughout the application.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction type vocabulary. Each source parser selects the subset and
// fallback label appropriate to its domain.
const (
	TypeMPesa        = "M-PESA"
	TypeBankTransfer = "Bank Transfer"
	TypeRemittance   = "Remittance"
	TypeCash         = "Cash"
	TypeCard         = "Card Transaction"
	TypeCheque       = "Cheque"
	TypeStatement    = "Bank Statement"
	TypeCustom       = "Custom"
	TypeOther        = "Other"
)

// Reference placeholders used when no code can be extracted from a source.
const (
	RefManual = "MANUAL"
	RefTG     = "TG"
	RefPDF    = "PDF"
	RefEmail  = "EMAIL"
)

// Record represents one extracted financial transaction. Records are value
// objects: they carry no identity beyond their fields, reference no other
// records, and are never mutated after a parser emits them.
//
// Every record has a positive Amount; a candidate whose amount cannot be
// resolved is discarded by its parser, never emitted. All other fields may
// be empty or hold a source-specific placeholder.
type Record struct {
	Date      string          `csv:"Date" json:"Date"`
	Amount    decimal.Decimal `csv:"Amount" json:"Amount"`
	Type      string          `csv:"Type" json:"Type"`
	Reference string          `csv:"Reference" json:"Reference"`
	PaidBy    string          `csv:"Paid By" json:"Paid By"`
	PaidTo    string          `csv:"Paid To" json:"Paid To"`
	Purpose   string          `csv:"Purpose" json:"Purpose"`
	Status    string          `csv:"Status" json:"Status,omitempty"`
}

// HasParty reports whether at least one of payer/payee is set.
func (r Record) HasParty() bool {
	return strings.TrimSpace(r.PaidBy) != "" || strings.TrimSpace(r.PaidTo) != ""
}

// ChatMessage is the WhatsApp segmenter's intermediate unit: one logical
// message assembled from a date-prefixed first line plus any continuation
// lines. It is discarded after the extraction pass that derives zero or one
// records from it.
type ChatMessage struct {
	Date     string // normalized timestamp string
	Sender   string
	Content  string // continuation lines joined by newline
	Original string // raw first line, kept for diagnostics
}
