package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fkimathi/chat-csv/internal/models"
)

func TestRecordHasParty(t *testing.T) {
	tests := []struct {
		name   string
		record models.Record
		want   bool
	}{
		{name: "payer only", record: models.Record{PaidBy: "Alice"}, want: true},
		{name: "payee only", record: models.Record{PaidTo: "Bob"}, want: true},
		{name: "both", record: models.Record{PaidBy: "Alice", PaidTo: "Bob"}, want: true},
		{name: "neither", record: models.Record{}, want: false},
		{name: "whitespace is not a party", record: models.Record{PaidBy: "  "}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.HasParty())
		})
	}
}

func TestCustomTemplateEnsureID(t *testing.T) {
	tmpl := models.CustomTemplate{Name: "sacco"}
	tmpl.EnsureID()
	assert.NotEmpty(t, tmpl.ID)

	fixed := models.CustomTemplate{ID: "keep-me", Name: "mpesa"}
	fixed.EnsureID()
	assert.Equal(t, "keep-me", fixed.ID)
}
