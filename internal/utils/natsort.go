package utils

import "strings"

// NaturalLess compares two strings the way a human sorts unit numbers:
// digit runs compare numerically, everything else compares byte-wise and
// case-insensitively, so "2" < "10A" and "10A" < "10B".
func NaturalLess(a, b string) bool {
	a, b = strings.ToUpper(a), strings.ToUpper(b)
	for len(a) > 0 && len(b) > 0 {
		if isDigit(a[0]) && isDigit(b[0]) {
			na, ra := takeDigits(a)
			nb, rb := takeDigits(b)
			if na != nb {
				// Compare numerically: shorter trimmed run is smaller,
				// equal lengths fall back to lexicographic.
				ta, tb := strings.TrimLeft(na, "0"), strings.TrimLeft(nb, "0")
				if len(ta) != len(tb) {
					return len(ta) < len(tb)
				}
				if ta != tb {
					return ta < tb
				}
				// Same numeric value, fewer leading zeros sorts first.
				return len(na) < len(nb)
			}
			a, b = ra, rb
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func takeDigits(s string) (run, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}
