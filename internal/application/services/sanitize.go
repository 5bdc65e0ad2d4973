package services

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const maxDisplayNameLen = 255

// sanitizeDisplayName normalizes a user-chosen file name for storage:
// NFC so visually identical names compare equal, control characters and
// path separators stripped, length capped. It deliberately keeps spaces,
// unicode letters and punctuation; this is a display name, not a storage key.
func sanitizeDisplayName(name string) string {
	s := norm.NFC.String(name)
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		if r == '/' || r == '\\' {
			return '-'
		}
		return r
	}, s)
	s = strings.TrimSpace(s)

	for utf8.RuneCountInString(s) > maxDisplayNameLen {
		_, size := utf8.DecodeLastRuneInString(s)
		if size <= 0 || size > len(s) {
			break
		}
		s = s[:len(s)-size]
	}

	return strings.TrimSpace(s)
}
