package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDisplayName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "report.pdf", "report.pdf"},
		{"trims whitespace", "  notes.txt  ", "notes.txt"},
		{"blank", "   ", ""},
		{"path separators become dashes", "a/b\\c.txt", "a-b-c.txt"},
		{"control characters stripped", "re\x00po\x1frt\x7f.pdf", "report.pdf"},
		{"unicode kept", "отчёт 2026.pdf", "отчёт 2026.pdf"},
		{"caps at 255 runes", strings.Repeat("я", 300), strings.Repeat("я", 255)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeDisplayName(tt.in))
		})
	}
}

func TestSanitizeDisplayName_NFC(t *testing.T) {
	// e + combining acute vs precomposed é normalize to the same bytes
	decomposed := "café.txt"
	precomposed := "café.txt"
	assert.Equal(t, sanitizeDisplayName(precomposed), sanitizeDisplayName(decomposed))
}
