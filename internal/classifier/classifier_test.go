package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fkimathi/chat-csv/internal/classifier"
	"fkimathi/chat-csv/internal/models"
)

func TestWhatsAppVocabulary(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "mpesa branding",
			text: "ABC1234XYZ Confirmed. M-PESA balance is Ksh 500",
			want: models.TypeMPesa,
		},
		{
			name: "named bank",
			text: "deposited to Equity account",
			want: models.TypeBankTransfer,
		},
		{
			name: "remittance service",
			text: "Sent via WorldRemit yesterday",
			want: models.TypeRemittance,
		},
		{
			name: "cash in hand",
			text: "gave him cash for the materials",
			want: models.TypeCash,
		},
		{
			name: "plain transfer falls back to other",
			text: "Sent Ksh 2,000 to Bob",
			want: models.TypeOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.WhatsApp.Classify(tt.text))
		})
	}
}

func TestGenericVocabulary(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bank keywords win first",
			text: "wire transfer completed",
			want: models.TypeBankTransfer,
		},
		{
			name: "mpesa without bank keywords",
			text: "M-PESA payment received ok",
			want: models.TypeMPesa,
		},
		{
			name: "deposit outranks cheque",
			text: "cheque deposit pending",
			want: models.TypeBankTransfer,
		},
		{
			name: "card payment",
			text: "paid with credit card",
			want: models.TypeCard,
		},
		{
			name: "cheque alone",
			text: "cheque cleared this morning",
			want: models.TypeCheque,
		},
		{
			name: "fallback",
			text: "lunch money",
			want: models.TypeOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Generic.Classify(tt.text))
		})
	}
}

func TestClassifyEmptyVocabulary(t *testing.T) {
	v := classifier.Vocabulary{Fallback: "Unknown"}
	assert.Equal(t, "Unknown", v.Classify("anything at all"))
}
