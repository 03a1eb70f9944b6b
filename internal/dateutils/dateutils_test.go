package dateutils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fkimathi/chat-csv/internal/dateutils"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "iso with time",
			input: "2024-05-12 10:30",
			want:  time.Date(2024, 5, 12, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "iso date only",
			input: "2024-05-12",
			want:  time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "unpadded iso with am pm",
			input: "2024-5-2 1:22 PM",
			want:  time.Date(2024, 5, 2, 13, 22, 0, 0, time.UTC),
		},
		{
			name:  "unpadded iso date only",
			input: "2024-5-2",
			want:  time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "slash day month year",
			input: "12/5/2024",
			want:  time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "slash with time",
			input: "12/5/2024 14:05",
			want:  time.Date(2024, 5, 12, 14, 5, 0, 0, time.UTC),
		},
		{
			name:  "email header style",
			input: "Mon, 12 May 2024 10:30:00 +0300",
			want:  time.Date(2024, 5, 12, 10, 30, 0, 0, time.FixedZone("", 3*60*60)),
		},
		{
			name:    "garbage",
			input:   "not a date",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dateutils.ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestBestEffort(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "clean timestamp",
			input: "2024-05-12 10:30",
			want:  time.Date(2024, 5, 12, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "telegram running date with noise",
			input: "12/5/2024 John 14:05",
			want:  time.Date(2024, 5, 12, 14, 5, 0, 0, time.UTC),
		},
		{
			name:  "date token only salvage",
			input: "statement line 12/5/2024 something",
			want:  time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "unparseable falls to epoch",
			input: "no date here",
			want:  time.Unix(0, 0),
		},
		{
			name:  "empty falls to epoch",
			input: "",
			want:  time.Unix(0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dateutils.BestEffort(tt.input)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestNormalizeChatTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
		timeStr string
		want    string
	}{
		{
			name:    "plain 24h time",
			dateStr: "12/5/2024",
			timeStr: "10:30",
			want:    "2024-05-12 10:30",
		},
		{
			name:    "colloquial afternoon",
			dateStr: "1/2/2024",
			timeStr: "1:22 in the afternoon",
			want:    "2024-02-01 1:22 PM",
		},
		{
			name:    "colloquial morning",
			dateStr: "3/4/2024",
			timeStr: "8:15 in the morning",
			want:    "2024-04-03 8:15 AM",
		},
		{
			name:    "two digit year passes through positionally",
			dateStr: "1/2/24",
			timeStr: "09:00",
			want:    "24-02-01 09:00",
		},
		{
			name:    "unsplittable date kept in source form",
			dateStr: "12.5.2024",
			timeStr: "10:30",
			want:    "12.5.2024 10:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dateutils.NormalizeChatTimestamp(tt.dateStr, tt.timeStr))
		})
	}
}
