package models

import "github.com/google/uuid"

// CustomTemplate is a caller-supplied set of regular expressions that
// overrides all built-in extraction logic for one run. Every pattern is
// independently optional; an absent pattern disables that field's
// extraction. Patterns are compiled case-insensitively, and a malformed
// pattern disables only its own field.
type CustomTemplate struct {
	ID               string `yaml:"id" json:"id"`
	Name             string `yaml:"name" json:"name"`
	DatePattern      string `yaml:"datePattern" json:"datePattern"`
	AmountPattern    string `yaml:"amountPattern" json:"amountPattern"`
	ReferencePattern string `yaml:"referencePattern" json:"referencePattern"`
	PaidByPattern    string `yaml:"paidByPattern" json:"paidByPattern"`
	PaidToPattern    string `yaml:"paidToPattern" json:"paidToPattern"`
}

// EnsureID assigns a fresh UUID when the caller did not provide one.
func (t *CustomTemplate) EnsureID() {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
}
