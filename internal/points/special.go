package points

import (
	"strings"

	"certpoints/internal/classify"
	"certpoints/internal/model"
)

// specialCase short-circuits catalog lookup. Cases are tried in order and
// the first that applies decides the result.
type specialCase struct {
	name    string
	applies func(s *scoring) bool
	apply   func(s *scoring)
}

var specialCases = []specialCase{
	{
		name:    "nptel",
		applies: isNPTEL,
		apply: func(s *scoring) {
			s.res.Points = s.policy.NPTELPoints
			s.res.ActivityName = classify.KeywordNPTEL
		},
	},
	{
		name: "course",
		applies: func(s *scoring) bool {
			if isNPTEL(s) {
				return false
			}
			return s.keyword == classify.KeywordTraining ||
				s.text.Has("course completion") ||
				s.text.HasAll("certificate", "course", "completing")
		},
		apply: func(s *scoring) {
			s.res.Points = s.policy.CoursePoints
			s.res.ActivityName = classify.KeywordTraining
			s.res.ActivityType = string(model.HeadProfessional)
		},
	},
	{
		name: "cultural",
		applies: func(s *scoring) bool {
			return s.collegeLevel() && (s.named(classify.KeywordCultural) ||
				s.text.HasAny("cultural", "arts", "dance", "music", "singing", "drama"))
		},
		apply: func(s *scoring) { s.participation(model.HeadCultural, classify.KeywordCultural) },
	},
	{
		name: "sports",
		applies: func(s *scoring) bool {
			return s.collegeLevel() && (s.named(classify.KeywordSports) ||
				s.text.HasAny("sports", "game", "games", "athletic", "tournament", "championship") ||
				strings.Contains(strings.ToLower(s.res.ActivityType), "sports"))
		},
		apply: func(s *scoring) { s.participation(model.HeadSportsGames, classify.KeywordSports) },
	},
	{
		name: "literary",
		applies: func(s *scoring) bool {
			return s.collegeLevel() && (s.named(classify.KeywordLiterary) ||
				s.text.HasAny("literary", "debate", "elocution", "quiz", "essay"))
		},
		// the record keeps its own type and name
		apply: func(s *scoring) {
			s.res.Points = s.policy.ParticipationPoints + s.policy.Bonus(s.prize)
		},
	},
}

func isNPTEL(s *scoring) bool {
	return s.keyword == classify.KeywordNPTEL || s.text.Has("nptel")
}

// named reports whether the classifier keyword or current name is kw
func (s *scoring) named(kw string) bool {
	return s.keyword == kw || s.res.ActivityName == kw
}

// SpecialCaseNames lists the special cases in evaluation order
func SpecialCaseNames() []string {
	out := make([]string, len(specialCases))
	for i, c := range specialCases {
		out[i] = c.name
	}
	return out
}
