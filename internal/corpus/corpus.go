// Package corpus builds the lower-cased search text that keyword rules are
// matched against.
package corpus

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Corpus is a lower-cased blob of every text source joined by spaces
type Corpus string

// New joins the non-empty parts into a corpus
func New(parts ...string) Corpus {
	var b strings.Builder
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	return Corpus(strings.ToLower(b.String()))
}

// String implements fmt.Stringer
func (c Corpus) String() string { return string(c) }

// Has reports whether term occurs anywhere in the corpus, inside words
// included. Use HasWord for abbreviations that must stand alone.
func (c Corpus) Has(term string) bool {
	term = strings.ToLower(term)
	return term != "" && strings.Contains(string(c), term)
}

// HasAny reports whether any of terms occurs
func (c Corpus) HasAny(terms ...string) bool {
	for _, t := range terms {
		if c.Has(t) {
			return true
		}
	}
	return false
}

// HasAll reports whether every term occurs
func (c Corpus) HasAll(terms ...string) bool {
	for _, t := range terms {
		if !c.Has(t) {
			return false
		}
	}
	return len(terms) > 0
}

// HasWord reports whether term occurs bounded by non-alphanumerics or the ends
func (c Corpus) HasWord(term string) bool {
	return ContainsWord(string(c), strings.ToLower(term))
}

// ContainsWord is HasWord for plain strings
func ContainsWord(s, word string) bool {
	if word == "" {
		return false
	}
	for from := 0; from <= len(s)-len(word); {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(word)
		if boundaryBefore(s, start) && boundaryAfter(s, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		from = start + size
	}
	return false
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
