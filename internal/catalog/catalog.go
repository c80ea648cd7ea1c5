// Package catalog holds the activity points rule catalog as immutable,
// versioned snapshots handed to the points engine on every scoring pass.
package catalog

import (
	"context"
	"strings"
	"unicode/utf8"

	"certpoints/internal/corpus"
	"certpoints/internal/model"
)

// Source yields the catalog snapshot a scoring pass should use.
// Implementations must read fresh data (or a cache they invalidate on mutation).
type Source interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// Snapshot is a read-only copy of the rule catalog
type Snapshot struct {
	Version string
	rules   []model.ActivityRule
}

// NewSnapshot copies rules and lower-cases their keywords
func NewSnapshot(version string, rules []model.ActivityRule) *Snapshot {
	copied := make([]model.ActivityRule, len(rules))
	for i, r := range rules {
		r.Keywords = NormalizeKeywords(r.Keywords)
		copied[i] = r
	}
	return &Snapshot{Version: version, rules: copied}
}

// Rules returns a copy of the snapshot's rules
func (s *Snapshot) Rules() []model.ActivityRule {
	if s == nil {
		return nil
	}
	out := make([]model.ActivityRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Len is the number of rules in the snapshot
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Match is the best catalog hit for a search text
type Match struct {
	Rule    model.ActivityRule
	Keyword string
}

// Match finds the rule whose keyword is the longest one found in the corpus.
// On equal lengths the first rule in catalog order keeps the match.
func (s *Snapshot) Match(text corpus.Corpus) (Match, bool) {
	if s == nil {
		return Match{}, false
	}
	var best Match
	bestLen := 0
	for _, rule := range s.rules {
		for _, kw := range rule.Keywords {
			if !text.Has(kw) {
				continue
			}
			if n := utf8.RuneCountInString(kw); n > bestLen {
				bestLen = n
				best = Match{Rule: rule, Keyword: kw}
			}
		}
	}
	return best, bestLen > 0
}

// NormalizeKeywords trims, lower-cases and de-duplicates keywords, keeping order
func NormalizeKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}

// Static serves a fixed snapshot. Used by the CLI and in tests.
type Static struct {
	snap *Snapshot
}

// NewStatic wraps rules in a fixed snapshot
func NewStatic(version string, rules []model.ActivityRule) *Static {
	return &Static{snap: NewSnapshot(version, rules)}
}

// Snapshot implements Source
func (s *Static) Snapshot(ctx context.Context) (*Snapshot, error) {
	return s.snap, nil
}
