package classify

import (
	"strings"

	"certpoints/internal/model"
)

var (
	sportsTerms = []string{
		"sports", "athletic", "athletics", "tournament", "championship", "olympic",
		"football", "cricket", "basketball", "volleyball", "badminton", "tennis", "swimming", "medal",
	}
	culturalTerms = []string{
		"cultural", "dance", "music", "singing", "performance", "drama", "theatre", "art", "arts", "painting",
	}
	literaryTerms = []string{
		"literary", "debate", "elocution", "quiz", "essay", "writing", "speech", "poetry",
	}
	courseTerms = []string{"course", "certification", "certificate", "training"}
)

// Rules is the classification table in priority order. Earlier rows are
// more specific; broad term sets must never shadow them.
var Rules = []Rule{
	// explicit category on the record
	typeRule("type-sports", KeywordSports, "sports", "games"),
	typeRule("type-cultural", KeywordCultural, "cultural"),
	typeRule("type-literary", KeywordLiterary, "literary"),

	termRule("nptel", KeywordNPTEL, "nptel"),
	{
		Name:    "internship",
		when:    func(in input) bool { return in.text.HasAny("intern", "internship") },
		keyword: fixed(KeywordInternship),
	},

	{
		Name:    "sports-terms",
		when:    func(in input) bool { return in.text.HasAny(sportsTerms...) || in.text.Has("sport") },
		keyword: fixed(KeywordSports),
	},
	termRule("cultural-terms", KeywordCultural, culturalTerms...),
	termRule("literary-terms", KeywordLiterary, literaryTerms...),

	termRule("ncc", KeywordNCC, "ncc"),
	termRule("nss", KeywordNSS, "nss"),
	termRule("ieee", KeywordIEEE, "ieee"),
	termRule("acm", KeywordACM, "acm"),

	termRule("hackathon", KeywordHackathon, "hackathon"),
	termRule("workshop", KeywordWorkshop, "workshop"),
	termRule("tech-fest", KeywordTechFest, "tech fest", "techfest"),
	{
		Name: "paper-presentation",
		when: func(in input) bool {
			return in.text.Has("paper presentation") || in.text.HasAll("paper", "presentation")
		},
		keyword: fixed(KeywordPaper),
	},
	termRule("competition", KeywordCompetition, "competition"),
	termRule("volunteering", KeywordVolunteering, "volunteer", "volunteering"),

	courseRule("course-deep-learning", KeywordDeepLearning, "deep learning"),
	courseAbbrRule("course-ml", KeywordML, "machine learning", "ml"),
	courseAbbrRule("course-ai", KeywordAI, "artificial intelligence", "ai"),
	courseRule("course-python", KeywordPython, "python"),
	courseRule("course-java", KeywordJava, "java"),
	courseRule("course-web", KeywordWebDev, "web development", "web design"),
	courseRule("course-data-science", KeywordDataScience, "data science", "data analysis"),
	courseRule("course", KeywordTraining),

	{
		Name:    "previous-name",
		when:    func(in input) bool { return !model.StandardDefaults.IsUnknown(in.src.PreviousName) },
		keyword: func(in input) string { return in.src.PreviousName },
	},
	{
		Name:    "activity-name",
		when:    func(in input) bool { return !model.StandardDefaults.IsUnknown(in.src.ActivityName) },
		keyword: func(in input) string { return in.src.ActivityName },
	},
	{
		Name:    "activity-type",
		when:    func(in input) bool { return strings.TrimSpace(in.src.ActivityType) != "" },
		keyword: func(in input) string { return in.src.ActivityType },
	},
	{
		Name:    "default",
		when:    func(input) bool { return true },
		keyword: fixed(string(model.HeadProfessional)),
	},
}

func fixed(kw string) func(input) string {
	return func(input) string { return kw }
}

// typeRule matches on the record's own activity type only
func typeRule(name, kw string, parts ...string) Rule {
	return Rule{
		Name: name,
		when: func(in input) bool {
			for _, p := range parts {
				if strings.Contains(in.typ, p) {
					return true
				}
			}
			return false
		},
		keyword: fixed(kw),
	}
}

func termRule(name, kw string, terms ...string) Rule {
	return Rule{
		Name:    name,
		when:    func(in input) bool { return in.text.HasAny(terms...) },
		keyword: fixed(kw),
	}
}

// courseRule applies to course-like certificates. With no terms it is the
// generic course fallback.
func courseRule(name, kw string, terms ...string) Rule {
	return Rule{
		Name: name,
		when: func(in input) bool {
			if !in.text.HasAny(courseTerms...) {
				return false
			}
			return len(terms) == 0 || in.text.HasAny(terms...)
		},
		keyword: fixed(kw),
	}
}

// courseAbbrRule is courseRule for a subject with a two-letter abbreviation.
// The abbreviation only counts as a whole word.
func courseAbbrRule(name, kw, phrase, abbr string) Rule {
	return Rule{
		Name: name,
		when: func(in input) bool {
			return in.text.HasAny(courseTerms...) && (in.text.Has(phrase) || in.text.HasWord(abbr))
		},
		keyword: fixed(kw),
	}
}
