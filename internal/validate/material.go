// Package validate holds the local input checks that run before any
// request leaves the client.
package validate

import "strings"

// MaterialCode reports whether s is an acceptable material identifier:
// non-empty after trimming, and made only of digits, ASCII letters and
// dashes (SAP-style codes like "4011835-AA"). No normalization beyond
// trimming is applied; callers that need the trimmed form use
// CleanMaterialCode.
func MaterialCode(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" {
		return false
	}
	for _, r := range t {
		if !materialRune(r) {
			return false
		}
	}
	return true
}

// CleanMaterialCode returns the trimmed identifier and whether it is valid.
func CleanMaterialCode(s string) (string, bool) {
	t := strings.TrimSpace(s)
	return t, MaterialCode(t)
}

func materialRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r == '-':
		return true
	}
	return false
}
