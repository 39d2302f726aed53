package logger

import (
	"strings"
	"unicode/utf8"
)

// RedactPhone masks all but the last four digits of a phone number.
// "281-330-8004" → "***-***-8004"
// Values with fewer than four digits are fully masked: "12" → "***"
func RedactPhone(phone string) string {
	var digits []rune
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return "***"
	}
	return "***-***-" + string(digits[len(digits)-4:])
}

// RedactName keeps the first letter of a name for correlation.
// "Jenny" → "J***"
// Empty names stay empty.
func RedactName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(r) + "***"
}
