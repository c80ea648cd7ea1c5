// Package extract turns raw OCR text from a certificate into an
// ExtractedRecord using ordered, independent regex extractors.
package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"certpoints/internal/corpus"
	"certpoints/internal/model"
)

const (
	minNameLen = 3
	maxNameLen = 40

	minEventLine = 5
	maxEventLine = 100
	maxOrgLine   = 100
)

// Extract never fails. If an extractor panics the record carries only the
// raw text and defaults.
func Extract(rawText string) (rec model.ExtractedRecord) {
	defer func() {
		if r := recover(); r != nil {
			rec = model.ExtractedRecord{RawText: rawText}
			model.StandardDefaults.Fill(&rec)
		}
	}()

	text := Normalize(rawText)
	lower := corpus.New(text)

	rec = model.ExtractedRecord{
		RawText:         rawText,
		Names:           names(text),
		EventName:       eventName(text),
		Dates:           dates(text),
		CertificateType: firstGroup(certificateTypePatterns, text),
		EventDuration:   firstMatch(durationPatterns, text),
		Location:        location(text),
		Positions:       positions(text),
		ActivityHead:    pickGuess(categoryGuesses, lower),
		ActivityName:    pickGuess(nameGuesses, lower),
	}
	rec.Organizations = organizations(text)
	if len(rec.Positions) > 0 {
		rec.Prize = rec.Positions[0]
	}
	model.StandardDefaults.Fill(&rec)
	return rec
}

// Normalize folds compatibility characters, unifies line endings and
// collapses runs of spaces inside each line. Line breaks are kept.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, ln := range lines {
		ln = strings.Join(strings.Fields(ln), " ")
		if ln != "" {
			out = append(out, ln)
		}
	}
	return strings.Join(out, "\n")
}

func names(text string) []string {
	var found []string
	for _, re := range namePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if n := cleanName(m[1]); n != "" {
				found = append(found, n)
			}
		}
	}
	return unique(found)
}

func cleanName(s string) string {
	fields := strings.Fields(s)
	if len(fields) > 0 {
		first := strings.ToLower(strings.TrimSuffix(fields[0], "."))
		for _, h := range honorifics {
			if first == h {
				fields = fields[1:]
				break
			}
		}
	}
	n := strings.Join(fields, " ")
	if len(n) < minNameLen || len(n) > maxNameLen || !strings.Contains(n, " ") {
		return ""
	}
	return n
}

func eventName(text string) string {
	for _, re := range festPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if v := strings.TrimSpace(m[1]); len(v) > 3 {
				return v
			}
		}
	}
	for _, re := range genericEventPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			v := strings.TrimSpace(m[1])
			if len(v) > 3 && !isAchievementWord(v) {
				return v
			}
		}
	}
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if len(ln) <= minEventLine || len(ln) >= maxEventLine {
			continue
		}
		if corpus.New(ln).HasAny(eventLineKeywords...) {
			return ln
		}
	}
	return ""
}

func isAchievementWord(s string) bool {
	s = strings.ToLower(s)
	for _, w := range achievementWords {
		if s == w {
			return true
		}
	}
	return false
}

func dates(text string) []string {
	var found []string
	for _, re := range datePatterns {
		found = append(found, re.FindAllString(text, -1)...)
	}
	return unique(found)
}

func organizations(text string) []string {
	var found []string
	for _, re := range orgPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if v := strings.TrimSpace(m[1]); v != "" {
				found = append(found, v)
			}
		}
	}

	// first keyword line not already covered by a pattern match
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if len(ln) <= 3 || len(ln) >= maxOrgLine {
			continue
		}
		lc := corpus.New(ln)
		if !lc.HasAny(orgLineKeywords...) || coveredBy(lc, found) {
			continue
		}
		found = append(found, ln)
		break
	}
	return unique(found)
}

func coveredBy(line corpus.Corpus, orgs []string) bool {
	for _, o := range orgs {
		if strings.Contains(line.String(), strings.ToLower(o)) {
			return true
		}
	}
	return false
}

func location(text string) string {
	for _, re := range locationPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			v := strings.Trim(strings.TrimSpace(m[1]), ",")
			if len(v) > 2 {
				return v
			}
		}
	}
	return ""
}

func positions(text string) []string {
	var found []string
	for _, re := range prizePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			found = append(found, strings.TrimSpace(m[1]))
		}
	}
	return unique(found)
}

func pickGuess(guesses []guess, text corpus.Corpus) string {
	for _, g := range guesses {
		if text.HasAny(g.any...) || text.HasAll(g.all...) {
			return g.label
		}
	}
	return ""
}

func firstMatch(res []*regexp.Regexp, text string) string {
	for _, re := range res {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func firstGroup(res []*regexp.Regexp, text string) string {
	for _, re := range res {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// unique drops empty and repeated strings, keeping first appearance.
// Repeats are compared case-insensitively.
func unique(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		k := strings.ToLower(s)
		if s == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}
