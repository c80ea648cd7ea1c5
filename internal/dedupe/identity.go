package dedupe

import (
	"strings"
	"unicode/utf8"

	"certpoints/internal/model"
)

// MinNamePartLen is the shortest name component searched on its own
const MinNamePartLen = 3

// VerifyIdentity reports whether the certificate appears to name the user.
// The full name or any component of at least MinNamePartLen runes must
// occur, case-insensitively, in the raw text or an extracted name. Short
// common fragments can match a stranger's certificate; the check only
// guards against obviously foreign uploads.
func VerifyIdentity(fullName string, rec model.ExtractedRecord) bool {
	full := strings.ToLower(strings.TrimSpace(fullName))
	if full == "" {
		return false
	}
	needles := append([]string{full}, NameParts(full)...)

	haystacks := make([]string, 0, len(rec.Names)+1)
	if rec.RawText != "" {
		haystacks = append(haystacks, strings.ToLower(rec.RawText))
	}
	for _, n := range rec.Names {
		haystacks = append(haystacks, strings.ToLower(n))
	}

	for _, h := range haystacks {
		for _, n := range needles {
			if strings.Contains(h, n) {
				return true
			}
		}
	}
	return false
}

// NameParts splits a name on whitespace, keeping parts of MinNamePartLen
// runes or more
func NameParts(fullName string) []string {
	var parts []string
	for _, p := range strings.Fields(strings.ToLower(fullName)) {
		if utf8.RuneCountInString(p) >= MinNamePartLen {
			parts = append(parts, p)
		}
	}
	return parts
}
