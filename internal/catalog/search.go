package catalog

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"certpoints/internal/model"
)

// Search returns the rules whose name or any keyword contains query
// (case-insensitive), most similar first.
func Search(rules []model.ActivityRule, query string) []model.ActivityRule {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	type hit struct {
		rule  model.ActivityRule
		score float64
	}
	var hits []hit
	for _, r := range rules {
		if !ruleContains(r, q) {
			continue
		}
		hits = append(hits, hit{rule: r, score: Similarity(r, q)})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	out := make([]model.ActivityRule, len(hits))
	for i, h := range hits {
		out[i] = h.rule
	}
	return out
}

// Rank orders rules by similarity to query without filtering them
func Rank(rules []model.ActivityRule, query string) []model.ActivityRule {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.ActivityRule, len(rules))
	copy(out, rules)
	sort.SliceStable(out, func(i, j int) bool { return Similarity(out[i], q) > Similarity(out[j], q) })
	return out
}

// Similarity is the best difflib ratio between query and the rule's name or keywords
func Similarity(r model.ActivityRule, query string) float64 {
	best := ratio(strings.ToLower(r.Name), query)
	for _, kw := range r.Keywords {
		if s := ratio(strings.ToLower(kw), query); s > best {
			best = s
		}
	}
	return best
}

func ratio(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}

func ruleContains(r model.ActivityRule, q string) bool {
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	for _, kw := range r.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}
