package item

import (
	"strings"
	"unicode"
)

// SectionSign introduces a color or formatting code in rendered text.
const SectionSign = '§'

// colorCodes are the characters that may follow a color code marker:
// colors 0-9 and a-f, formats k-o, reset r, and hex escape x.
const colorCodes = "0123456789AaBbCcDdEeFfKkLlMmNnOoRrXx"

// TranslateColorCodes replaces alt with the section sign wherever it is
// followed by a valid code character, lowercasing the code. Other uses of
// alt pass through untouched.
func TranslateColorCodes(alt rune, s string) string {
	runes := []rune(s)
	for i := 0; i+1 < len(runes); i++ {
		if runes[i] == alt && strings.ContainsRune(colorCodes, runes[i+1]) {
			runes[i] = SectionSign
			runes[i+1] = unicode.ToLower(runes[i+1])
		}
	}
	return string(runes)
}

// StripColorCodes removes section-sign color codes, leaving plain text.
func StripColorCodes(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if runes[i] == SectionSign && i+1 < len(runes) && strings.ContainsRune(colorCodes, runes[i+1]) {
			i++
			continue
		}
		out = append(out, runes[i])
	}
	return string(out)
}
