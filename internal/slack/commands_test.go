package slack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		slash    string
		text     string
		wantSub  string
		wantArgs []string
	}{
		{
			name:    "empty text",
			slash:   "/actionitem",
			text:    "",
			wantSub: "",
		},
		{
			name:    "whitespace only",
			slash:   "/actionitem",
			text:    "   ",
			wantSub: "",
		},
		{
			name:     "subcommand with args",
			slash:    "/actionitem",
			text:     "add DAILY Take vitamins",
			wantSub:  "add",
			wantArgs: []string{"DAILY", "Take", "vitamins"},
		},
		{
			name:     "uppercase subcommand normalized",
			slash:    "/crossword",
			text:     "STATS",
			wantSub:  "stats",
			wantArgs: []string{},
		},
		{
			name:     "ls alias",
			slash:    "/actionitem",
			text:     "ls",
			wantSub:  "list",
			wantArgs: []string{},
		},
		{
			name:     "rm alias",
			slash:    "/actionitem",
			text:     "rm 3",
			wantSub:  "remove",
			wantArgs: []string{"3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := ParseCommand(tt.slash, tt.text)
			assert.Equal(t, tt.slash, cmd.Slash)
			assert.Equal(t, tt.wantSub, cmd.Sub)
			assert.Equal(t, tt.wantArgs, cmd.Args)
			assert.Equal(t, tt.text, cmd.Raw)
		})
	}
}

func TestExtractUserID(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"<@U123ABC>", "U123ABC"},
		{"<@U123ABC|jane>", "U123ABC"},
		{"<@W456DEF>", "W456DEF"},
		{"U123ABC", "U123ABC"},
		{"@jane", ""},
		{"jane", ""},
		{"<#C123|general>", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractUserID(tt.token), "token %q", tt.token)
	}
}

func TestExtractChannelID(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"<#C123ABC>", "C123ABC"},
		{"<#C123ABC|general>", "C123ABC"},
		{"C123ABC", "C123ABC"},
		{"G999", "G999"},
		{"#general", ""},
		{"<@U123>", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractChannelID(tt.token), "token %q", tt.token)
	}
}

func TestUnwrapLinks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "labeled link",
			text: "check <https://example.com|this> out",
			want: "check https://example.com out",
		},
		{
			name: "bare wrapped link",
			text: "solved it! <https://www.latimes.com/games/mini-crossword?id=latimes-mini-20250827&set=latimes-mini>",
			want: "solved it! https://www.latimes.com/games/mini-crossword?id=latimes-mini-20250827&set=latimes-mini",
		},
		{
			name: "mention untouched",
			text: "nice one <@U123>",
			want: "nice one <@U123>",
		},
		{
			name: "plain text untouched",
			text: "2 minutes and 13 seconds",
			want: "2 minutes and 13 seconds",
		},
		{
			name: "multiple links",
			text: "<https://a.example> and <https://b.example|b>",
			want: "https://a.example and https://b.example",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnwrapLinks(tt.text))
		})
	}
}

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "short year in 2000s",
			input:  "8/9/25",
			want:   time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "short year in 1900s",
			input:  "12-31-99",
			want:   time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "full year",
			input:  "8/9/2025",
			want:   time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "boundary short year 30",
			input:  "1/1/30",
			want:   time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "boundary short year 31",
			input:  "1/1/31",
			want:   time.Date(1931, 1, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:  "nonexistent calendar day",
			input: "2/30/25",
		},
		{
			name:  "month out of range",
			input: "13/1/25",
		},
		{
			name:  "mixed separators",
			input: "8/9-25",
		},
		{
			name:  "not a date",
			input: "yesterday",
		},
		{
			name:  "empty",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFlexibleDate(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
			}
		})
	}
}
