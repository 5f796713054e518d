package ipformat

import "strings"

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isDigitsAndDots reports whether s is non-empty and consists only of ASCII
// digits and dots.
func isDigitsAndDots(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '.' && (s[i] < '0' || s[i] > '9') {
			return false
		}
	}
	return true
}

// digitGroups splits s on dots and reports whether every group is a
// non-empty run of ASCII digits.
func digitGroups(s string) ([]string, bool) {
	groups := strings.Split(s, ".")
	for _, group := range groups {
		if !isDigits(group) {
			return nil, false
		}
	}
	return groups, true
}

// dottedQuad renders a 32-bit value as a dotted-quad in network byte order.
func dottedQuad(value uint32) string {
	octets := [4]byte{
		byte(value >> 24),
		byte(value >> 16),
		byte(value >> 8),
		byte(value),
	}
	return quadString(octets)
}
