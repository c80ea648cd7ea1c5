// Package dedupe decides whether an upload repeats an earlier submission
// and whether a certificate names the uploading student.
package dedupe

import (
	"fmt"
	"path"
	"strings"
	"unicode/utf8"

	"certpoints/internal/model"
)

// Weights are the similarity score contributions and thresholds
type Weights struct {
	EventName    int // event names contain one another
	ActivityType int // activity types are equal
	OverlapHigh  int // raw text overlap above HighOverlap
	OverlapLow   int // raw text overlap above LowOverlap

	HighOverlap float64
	LowOverlap  float64

	MinWordLen int // words must be longer than this to count
	Threshold  int // score at or above which a submission is a duplicate
}

// DefaultWeights are the tuned production values
var DefaultWeights = Weights{
	EventName:    40,
	ActivityType: 20,
	OverlapHigh:  40,
	OverlapLow:   25,
	HighOverlap:  0.6,
	LowOverlap:   0.4,
	MinWordLen:   3,
	Threshold:    60,
}

// Decision explains a duplicate check
type Decision struct {
	Duplicate bool
	Reason    string // "filename" or "similarity"
	Score     int
	MatchedID string
}

// Matcher runs duplicate checks with a set of weights
type Matcher struct {
	weights Weights
}

func NewMatcher(w Weights) *Matcher {
	return &Matcher{weights: w}
}

// IsDuplicate is Check with the default weights
func IsDuplicate(existing []model.Certificate, rec model.ExtractedRecord, fileName string) bool {
	return NewMatcher(DefaultWeights).Check(existing, rec, fileName).Duplicate
}

// Check compares the new upload against a user's earlier submissions. Any
// internal failure reports "not a duplicate".
func (m *Matcher) Check(existing []model.Certificate, rec model.ExtractedRecord, fileName string) (d Decision) {
	defer func() {
		if r := recover(); r != nil {
			d = Decision{Reason: fmt.Sprintf("check failed: %v", r)}
		}
	}()

	for _, cert := range existing {
		base := BaseName(fileName, cert.UserID)
		if base != "" && base == BaseName(cert.FileName, cert.UserID) {
			return Decision{Duplicate: true, Reason: "filename", MatchedID: cert.ID}
		}
	}

	for _, cert := range existing {
		if cert.Status == model.StatusRejected {
			continue
		}
		if score := m.Score(cert, rec); score >= m.weights.Threshold {
			return Decision{Duplicate: true, Reason: "similarity", Score: score, MatchedID: cert.ID}
		}
	}
	return Decision{}
}

// Score is the 0-100 content similarity between an earlier submission and
// the new record
func (m *Matcher) Score(cert model.Certificate, rec model.ExtractedRecord) int {
	w := m.weights
	score := 0

	newEvent := strings.ToLower(rec.EventName)
	oldEvent := strings.ToLower(cert.ExtractedData.Entities.EventName)
	if oldEvent == "" {
		oldEvent = strings.ToLower(cert.ActivityName)
	}
	if newEvent != "" && oldEvent != "" &&
		(strings.Contains(newEvent, oldEvent) || strings.Contains(oldEvent, newEvent)) {
		score += w.EventName
	}

	if strings.ToLower(rec.ActivityHead) == strings.ToLower(cert.ActivityType) {
		score += w.ActivityType
	}

	switch overlap := Overlap(rec.RawText, cert.ExtractedData.RawText, w.MinWordLen); {
	case overlap > w.HighOverlap:
		score += w.OverlapHigh
	case overlap > w.LowOverlap:
		score += w.OverlapLow
	}
	return score
}

// Overlap is the share of distinct words longer than minLen common to both
// texts, relative to the smaller word set
func Overlap(a, b string, minLen int) float64 {
	wa, wb := words(a, minLen), words(b, minLen)
	small, large := wa, wb
	if len(wb) < len(wa) {
		small, large = wb, wa
	}
	if len(small) == 0 {
		return 0
	}
	common := 0
	for w := range small {
		if _, ok := large[w]; ok {
			common++
		}
	}
	return float64(common) / float64(len(small))
}

func words(s string, minLen int) map[string]struct{} {
	out := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if utf8.RuneCountInString(w) > minLen {
			out[w] = struct{}{}
		}
	}
	return out
}

// BaseName strips directories, the extension and a "<userID>-" or
// "<userID>_" prefix from a file name
func BaseName(fileName, userID string) string {
	name := path.Base(strings.ReplaceAll(fileName, `\`, "/"))
	if name == "." || name == "/" {
		return ""
	}
	name = strings.TrimSuffix(name, path.Ext(name))
	if userID != "" {
		for _, sep := range []string{"-", "_"} {
			if strings.HasPrefix(name, userID+sep) {
				name = strings.TrimPrefix(name, userID+sep)
				break
			}
		}
	}
	return name
}
