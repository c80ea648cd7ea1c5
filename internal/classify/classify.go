// Package classify maps a certificate's text to a short activity keyword
// by walking an ordered rule table. The first rule that applies wins.
package classify

import (
	"strings"

	"certpoints/internal/corpus"
	"certpoints/internal/model"
)

// Keywords produced by the classifier
const (
	KeywordSports       = "Sports Activity"
	KeywordCultural     = "Cultural Activity"
	KeywordLiterary     = "Literary Activity"
	KeywordNPTEL        = "NPTEL Course"
	KeywordInternship   = "Internship"
	KeywordNCC          = "NCC"
	KeywordNSS          = "NSS"
	KeywordIEEE         = "IEEE Activity"
	KeywordACM          = "ACM Activity"
	KeywordHackathon    = "Hackathon"
	KeywordWorkshop     = "Workshop"
	KeywordTechFest     = "Tech Fest"
	KeywordPaper        = "Paper Presentation"
	KeywordCompetition  = "Competition"
	KeywordVolunteering = "Volunteering"
	KeywordDeepLearning = "Deep Learning Course"
	KeywordML           = "Machine Learning Course"
	KeywordAI           = "AI Course"
	KeywordPython       = "Python Course"
	KeywordJava         = "Java Course"
	KeywordWebDev       = "Web Development Course"
	KeywordDataScience  = "Data Science Course"
	KeywordTraining     = "Training Course"
)

// Source is every text the classifier may look at. All fields are optional.
type Source struct {
	RawText       string
	FileName      string
	EventName     string
	ActivityName  string
	ActivityType  string
	Organizations []string

	// PreviousName is the activity name from an earlier scoring pass
	PreviousName string
}

// Corpus joins every text source into one lower-cased search string
func (s Source) Corpus() corpus.Corpus {
	parts := []string{s.RawText, s.FileName, s.EventName, s.ActivityName}
	parts = append(parts, s.Organizations...)
	parts = append(parts, s.ActivityType)
	return corpus.New(parts...)
}

// input is what a rule predicate sees
type input struct {
	text corpus.Corpus
	typ  string // lower-cased activity type
	src  Source
}

// Rule is one row of the classification table
type Rule struct {
	Name    string
	when    func(in input) bool
	keyword func(in input) string
}

// Classify returns the activity keyword for src
func Classify(src Source) string {
	kw, _ := Explain(src)
	return kw
}

// Explain is Classify that also names the rule that fired
func Explain(src Source) (string, string) {
	in := input{text: src.Corpus(), typ: strings.ToLower(src.ActivityType), src: src}
	for _, r := range Rules {
		if r.when(in) {
			return r.keyword(in), r.Name
		}
	}
	// the table ends in an unconditional rule
	return string(model.HeadProfessional), "default"
}

// RuleNames lists the table in evaluation order
func RuleNames() []string {
	out := make([]string, len(Rules))
	for i, r := range Rules {
		out[i] = r.Name
	}
	return out
}

// FromRecord builds the classifier input for an extracted record. The
// record's category guess stands in for the activity type; its name guess
// is left out so a default guess cannot decide the keyword.
func FromRecord(rec model.ExtractedRecord) Source {
	return Source{
		RawText:       rec.RawText,
		EventName:     rec.EventName,
		Organizations: rec.Organizations,
		ActivityType:  rec.ActivityHead,
	}
}
