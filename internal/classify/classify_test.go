package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		src  Source
		want string
	}{
		{"nptel beats championship", Source{RawText: "NPTEL certificate. Also see the championship notice"}, KeywordNPTEL},
		{"type shortcut beats nptel", Source{RawText: "nptel", ActivityType: "Sports & Games Participation"}, KeywordSports},
		{"type cultural", Source{ActivityType: "Cultural Activities Participation"}, KeywordCultural},
		{"type literary", Source{ActivityType: "Literary"}, KeywordLiterary},
		{"internship", Source{RawText: "completed a summer internship at Acme"}, KeywordInternship},
		{"intern inside international", Source{RawText: "International Conference on Robotics"}, KeywordInternship},
		{"sports before cultural", Source{RawText: "football match and dance night"}, KeywordSports},
		{"cultural before literary", Source{RawText: "dance and essay writing"}, KeywordCultural},
		{"art inside participation", Source{RawText: "Certificate of Participation awarded to Anu Raj"}, KeywordCultural},
		{"literary", Source{RawText: "winner of the inter college debate"}, KeywordLiterary},
		{"ncc", Source{RawText: "NCC camp attended"}, KeywordNCC},
		{"nss", Source{EventName: "NSS special camp"}, KeywordNSS},
		{"ieee via organization", Source{Organizations: []string{"IEEE Student Branch"}}, KeywordIEEE},
		{"acm", Source{RawText: "ACM student chapter"}, KeywordACM},
		{"hackathon", Source{RawText: "24 hour hackathon"}, KeywordHackathon},
		{"workshop", Source{FileName: "iot-workshop.png"}, KeywordWorkshop},
		{"tech fest", Source{RawText: "Dhishna techfest"}, KeywordTechFest},
		{"paper and presentation apart", Source{RawText: "paper titled X; presentation on day 2"}, KeywordPaper},
		{"competition", Source{RawText: "coding competition"}, KeywordCompetition},
		{"volunteering", Source{RawText: "volunteering for flood relief"}, KeywordVolunteering},
		{"deep learning course", Source{RawText: "Deep Learning course completion"}, KeywordDeepLearning},
		{"ml course", Source{RawText: "ML certification by Coursera"}, KeywordML},
		{"ai course", Source{RawText: "Applied AI certificate"}, KeywordAI},
		{"ai inside a word", Source{RawText: "maintenance training"}, KeywordTraining},
		{"ml inside a word", Source{RawText: "HTML certification"}, KeywordTraining},
		{"artificial hits art first", Source{RawText: "certificate in Artificial Intelligence"}, KeywordCultural},
		{"python course", Source{RawText: "Python training"}, KeywordPython},
		{"javascript counts as java", Source{RawText: "JavaScript course"}, KeywordJava},
		{"java course", Source{RawText: "Java course"}, KeywordJava},
		{"web course", Source{RawText: "Web Development course"}, KeywordWebDev},
		{"data science course", Source{RawText: "data analysis certification"}, KeywordDataScience},
		{"generic course", Source{RawText: "online course"}, KeywordTraining},
		{"previous name", Source{RawText: "xyz", PreviousName: "Startup"}, "Startup"},
		{"unknown previous name skipped", Source{RawText: "xyz", PreviousName: "Unknown Event", ActivityName: "Patent"}, "Patent"},
		{"activity type fallback", Source{RawText: "xyz", ActivityType: "Leadership & Management"}, "Leadership & Management"},
		{"empty", Source{}, "Professional Self Initiatives"},
		{"garbage", Source{RawText: "qwzx plmk", ActivityType: "Professional Self Initiatives"}, "Professional Self Initiatives"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.src))
		})
	}
}

func TestExplain(t *testing.T) {
	kw, rule := Explain(Source{RawText: "NPTEL championship"})
	assert.Equal(t, KeywordNPTEL, kw)
	assert.Equal(t, "nptel", rule)

	_, rule = Explain(Source{})
	assert.Equal(t, "default", rule)
}

func TestRuleOrder(t *testing.T) {
	names := RuleNames()
	require.NotEmpty(t, names)
	assert.Equal(t, "default", names[len(names)-1])

	pos := map[string]int{}
	for i, n := range names {
		pos[n] = i
	}
	ordered := []string{
		"type-sports", "nptel", "internship", "sports-terms", "cultural-terms", "literary-terms",
		"ncc", "hackathon", "course-deep-learning", "course", "previous-name", "activity-name", "activity-type",
	}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, pos[ordered[i-1]], pos[ordered[i]], "%s must come before %s", ordered[i-1], ordered[i])
	}
}

func TestClassify_Pure(t *testing.T) {
	src := Source{RawText: "Python course", Organizations: []string{"NIT Calicut"}}
	assert.Equal(t, Classify(src), Classify(src))
}
