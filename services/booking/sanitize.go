package booking

import "strings"

// SanitizeContact keeps digits and a single leading "+", silently
// dropping everything else, matching the contact input behaviour.
func SanitizeContact(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
