package textutils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fkimathi/chat-csv/internal/textutils"
)

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{
			name:  "mpesa style code",
			text:  "ABC1234XYZ Confirmed. You have received money",
			want:  "ABC1234XYZ",
			found: true,
		},
		{
			name:  "code embedded mid sentence",
			text:  "use reference REF99887766 when paying",
			want:  "REF99887766",
			found: true,
		},
		{
			name:  "too short",
			text:  "code AB12 is not enough",
			found: false,
		},
		{
			name:  "lowercase is not a code",
			text:  "abc1234xyz here",
			found: false,
		},
		{
			name:  "no code",
			text:  "just a normal sentence",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := textutils.ExtractCode(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractEntities(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		sender     string
		wantPaidBy string
		wantPaidTo string
	}{
		{
			name:       "no anchors keeps sender as payer",
			text:       "Sent Ksh 2,000 yesterday",
			sender:     "Alice",
			wantPaidBy: "Alice",
			wantPaidTo: "",
		},
		{
			name:       "sent to stops at comma",
			text:       "sent to Bob, confirmed",
			sender:     "Alice",
			wantPaidBy: "Alice",
			wantPaidTo: "Bob",
		},
		{
			name:       "sent to stops at digit",
			text:       "sent to Mary Wanjiku 0712345678",
			sender:     "Alice",
			wantPaidBy: "Alice",
			wantPaidTo: "Mary Wanjiku",
		},
		{
			name:       "received from overrides sender",
			text:       "received from John Doe on 12/5",
			sender:     "Alice",
			wantPaidBy: "John Doe",
			wantPaidTo: "",
		},
		{
			name:       "paid to at end of string",
			text:       "paid to Naivas Supermarket",
			sender:     "Alice",
			wantPaidBy: "Alice",
			wantPaidTo: "Naivas Supermarket",
		},
		{
			name:       "given to",
			text:       "given to Mary, for the trip",
			sender:     "Bob",
			wantPaidBy: "Bob",
			wantPaidTo: "Mary",
		},
		{
			name:       "bill payment shape",
			text:       "ABC1234XYZ Confirmed. Bill payment to ACME STORE for account 998877 completed",
			sender:     "Alice",
			wantPaidBy: "Alice",
			wantPaidTo: "ACME STORE - Account No: 998877",
		},
		{
			name:       "paybill noise removed from destination",
			text:       "sent to Equity Paybill Account for account 0116382281",
			sender:     "Alice",
			wantPaidBy: "Alice",
			wantPaidTo: "Equity - Account No: 0116382281",
		},
		{
			name:       "paybill with till number shape",
			text:       "paid to KPLC, 888880 for account number 123456",
			sender:     "Bob",
			wantPaidBy: "Bob",
			wantPaidTo: "KPLC - Account No: 123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paidBy, paidTo := textutils.ExtractEntities(tt.text, tt.sender)
			assert.Equal(t, tt.wantPaidBy, paidBy)
			assert.Equal(t, tt.wantPaidTo, paidTo)
		})
	}
}

func TestCleanMessage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "zero width marks stripped",
			input: "Sent​ Ksh‎ 500‏",
			want:  "Sent Ksh 500",
		},
		{
			name:  "whitespace collapsed",
			input: "  Sent   Ksh\t500\nto  Bob  ",
			want:  "Sent Ksh 500 to Bob",
		},
		{
			name:  "already clean",
			input: "hello",
			want:  "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textutils.CleanMessage(tt.input))
		})
	}
}
