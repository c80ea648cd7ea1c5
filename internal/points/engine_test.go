package points

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certpoints/internal/catalog"
	"certpoints/internal/classify"
	"certpoints/internal/corpus"
	"certpoints/internal/extract"
	"certpoints/internal/model"
)

type failingSource struct{}

func (failingSource) Snapshot(context.Context) (*catalog.Snapshot, error) {
	return nil, errors.New("mongo: no reachable servers")
}

func defaultEngine() *Engine {
	return NewEngine(catalog.NewStatic(catalog.DefaultVersion, catalog.DefaultRules()), DefaultPolicy(), nil)
}

func score(t *testing.T, rec model.ExtractedRecord) model.PointsResult {
	t.Helper()
	return defaultEngine().Score(context.Background(), rec)
}

func TestScore_NPTELAlwaysFifty(t *testing.T) {
	texts := []string{
		"This is to certify that John Smith has completed a course on NPTEL titled Data Structures",
		"nptel",
		"NPTEL Elite certificate. First prize in the football championship",
		"Swayam NPTEL online certification, internship, hackathon, dance",
	}
	for _, txt := range texts {
		t.Run(txt, func(t *testing.T) {
			rec := extract.Extract(txt)
			rec.ActivityLevel = model.LevelIV
			res := score(t, rec)
			assert.Equal(t, 50, res.Points)
			assert.Equal(t, classify.KeywordNPTEL, res.ActivityName)
			assert.Equal(t, rec.ActivityHead, res.ActivityType, "category is left unchanged")
		})
	}
}

func TestScore_JohnSmithNPTELScenario(t *testing.T) {
	rec := extract.Extract("This is to certify that John Smith has completed a course on NPTEL titled Data Structures")
	res := score(t, rec)
	assert.Equal(t, 50, res.Points)
	assert.Equal(t, "NPTEL Course", res.ActivityName)
	assert.Equal(t, model.LevelI, res.ActivityLevel)
}

func TestScore_CulturalFirstPrize(t *testing.T) {
	rec := extract.Extract("First Prize — Dance Competition, College Level")
	rec.ActivityLevel = model.LevelI

	res := score(t, rec)
	assert.Equal(t, 18, res.Points)
	assert.Equal(t, string(model.HeadCultural), res.ActivityType)
	assert.Equal(t, classify.KeywordCultural, res.ActivityName)
}

func TestScore_HackathonCatalogMatch(t *testing.T) {
	rules := []model.ActivityRule{{
		Name: "Hackathon", ActivityHead: model.HeadProfessional, ActivityNumber: "10",
		Keywords:       []string{"hackathon"},
		PointsPerLevel: model.LevelPoints{I: 10, II: 15, III: 20, IV: 30, V: 40},
		MaxPoints:      40,
	}}
	eng := NewEngine(catalog.NewStatic("fixture", rules), DefaultPolicy(), nil)

	rec := model.ExtractedRecord{
		RawText:       "Attended the 24 hour hackathon organised by the ECE branch",
		ActivityHead:  string(model.HeadProfessional),
		ActivityLevel: model.LevelI,
	}
	res := eng.Score(context.Background(), rec)
	assert.Equal(t, 10, res.Points)
	assert.Equal(t, "10", res.ActivityNumber)
	assert.Equal(t, string(model.HeadProfessional), res.ActivityType)
	assert.Equal(t, classify.KeywordHackathon, res.ActivityName)
}

func TestScore_GarbageInput(t *testing.T) {
	rec := extract.Extract("@@ ### 1234 ~~")
	assert.Equal(t, "Unknown Event", rec.EventName)
	assert.Equal(t, "Professional Self Initiatives", classify.Classify(classify.FromRecord(rec)))

	res := score(t, rec)
	assert.Equal(t, 10, res.Points)
	assert.Equal(t, "0", res.ActivityNumber)
}

func TestScore_TrainingCourse(t *testing.T) {
	rec := extract.Extract("Certificate for course completion in Spreadsheet Basics")
	res := score(t, rec)
	assert.Equal(t, 6, res.Points)
	assert.Equal(t, classify.KeywordTraining, res.ActivityName)
	assert.Equal(t, string(model.HeadProfessional), res.ActivityType)
}

func TestScore_SpecialCases(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		level    model.Level
		want     int
		wantName string
		wantType string
	}{
		{"sports participation", "Participated in the inter college football tournament", model.LevelI, 8, classify.KeywordSports, string(model.HeadSportsGames)},
		{"sports second", "Second place in the athletic meet", model.LevelI, 16, classify.KeywordSports, string(model.HeadSportsGames)},
		{"literary third", "Third prize in elocution", model.LevelI, 14, classify.KeywordLiterary, string(model.HeadProfessional)},
		{"winner with second is second", "winner list: second position in music", model.LevelI, 16, classify.KeywordCultural, string(model.HeadCultural)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := extract.Extract(tt.text)
			rec.ActivityLevel = tt.level
			res := score(t, rec)
			assert.Equal(t, tt.want, res.Points)
			assert.Equal(t, tt.wantName, res.ActivityName)
			assert.Equal(t, tt.wantType, res.ActivityType)
		})
	}
}

func TestScore_AboveCollegeUsesCatalog(t *testing.T) {
	rec := extract.Extract("First prize in dance at the district level")
	rec.ActivityLevel = model.LevelII

	res := score(t, rec)
	assert.Equal(t, "6", res.ActivityNumber)
	assert.Equal(t, 12+10, res.Points)
	assert.Equal(t, string(model.HeadCultural), res.ActivityType)
}

func TestScore_LiteraryKeepsRecordType(t *testing.T) {
	rec := model.ExtractedRecord{
		RawText:       "Second prize in the inter hostel debate",
		EventName:     "Inter Hostel Debate",
		ActivityHead:  "Leadership & Management",
		ActivityLevel: model.LevelI,
	}
	res := score(t, rec)
	assert.Equal(t, 8+8, res.Points)
	assert.Equal(t, "Leadership & Management", res.ActivityType)
	assert.Equal(t, classify.KeywordLiterary, res.ActivityName)

	rec.ActivityHead = "Professional Self Initiatives"
	res = score(t, rec)
	assert.Equal(t, "Professional Self Initiatives", res.ActivityType)
}

func TestScore_ShortKeywordInsideWord(t *testing.T) {
	rules := []model.ActivityRule{{
		Name: "Programme at NITs", ActivityHead: model.HeadProfessional, ActivityNumber: "11",
		Keywords:       []string{"nit"},
		PointsPerLevel: model.LevelPoints{I: 15, II: 20, III: 25, IV: 30, V: 35},
		MaxPoints:      40,
	}}
	rec := model.ExtractedRecord{RawText: "Community outreach at Unity Hall", ActivityLevel: model.LevelII}

	res, err := ScoreWith(catalog.NewSnapshot("fixture", rules), rec, DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, "11", res.ActivityNumber)
	assert.Equal(t, 20, res.Points)
}

func TestScore_ClampInvariant(t *testing.T) {
	rules := []model.ActivityRule{{
		Name: "Robotics", ActivityHead: model.HeadEntrepreneurship, ActivityNumber: "99",
		Keywords:       []string{"robotics expo"},
		PointsPerLevel: model.LevelPoints{I: 0, II: 30, III: 45, IV: 70, V: 500},
		MaxPoints:      40,
	}}
	snap := catalog.NewSnapshot("fixture", rules)

	for _, lvl := range model.Levels {
		for _, prefix := range []string{"", "first prize ", "second prize ", "third prize "} {
			for _, hint := range []int{0, 7, 900} {
				rec := model.ExtractedRecord{
					RawText:       prefix + "robotics expo exhibit",
					ActivityLevel: lvl,
					PointsAwarded: hint,
				}
				res, err := ScoreWith(snap, rec, DefaultPolicy())
				require.NoError(t, err)
				require.Equal(t, "99", res.ActivityNumber)
				assert.GreaterOrEqual(t, res.Points, 0)
				assert.LessOrEqual(t, res.Points, 40, "level %s prefix %q hint %d", lvl, prefix, hint)
			}
		}
	}
}

func TestScore_HintWhenNothingComputed(t *testing.T) {
	rules := []model.ActivityRule{{
		Name: "Robotics", ActivityHead: model.HeadEntrepreneurship, ActivityNumber: "99",
		Keywords: []string{"robotics expo"}, PointsPerLevel: model.LevelPoints{II: 30}, MaxPoints: 40,
	}}
	rec := model.ExtractedRecord{RawText: "robotics expo", ActivityLevel: model.LevelI, PointsAwarded: 7}

	res, err := ScoreWith(catalog.NewSnapshot("fixture", rules), rec, DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, 7, res.Points)
}

func TestScore_Idempotent(t *testing.T) {
	raw := "Certificate of Achievement\nawarded to Meera Das for securing 2nd place in the IEEE hackathon at NIT Calicut"
	eng := defaultEngine()

	first := eng.Score(context.Background(), extract.Extract(raw))
	second := eng.Score(context.Background(), extract.Extract(raw))
	assert.Equal(t, first, second)
}

func TestScore_CatalogFailureFallsBack(t *testing.T) {
	eng := NewEngine(failingSource{}, DefaultPolicy(), nil)

	res := eng.Score(context.Background(), model.ExtractedRecord{RawText: "hackathon", PointsAwarded: 12})
	assert.Equal(t, 12, res.Points)
	assert.Equal(t, "Unknown", res.ActivityType)
	assert.Equal(t, model.LevelI, res.ActivityLevel)

	res = eng.Score(context.Background(), model.ExtractedRecord{RawText: "hackathon", ActivityHead: "Professional Self Initiatives"})
	assert.Equal(t, 10, res.Points)
	assert.Equal(t, "Professional Self Initiatives", res.ActivityType)
	assert.Equal(t, classify.KeywordHackathon, res.ActivityName)
}

func TestDetectPrize(t *testing.T) {
	tests := []struct {
		text string
		want Prize
	}{
		{"first prize", PrizeFirst},
		{"won 1st place", PrizeFirst},
		{"overall winner", PrizeFirst},
		{"winner of second round", PrizeSecond},
		{"first round, third place", PrizeThird},
		{"2nd runner", PrizeSecond},
		{"3rd", PrizeThird},
		{"participation", PrizeNone},
		{"21st century skills", PrizeFirst},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPrize(corpus.New(tt.text)))
		})
	}
}

func TestDetectLevel(t *testing.T) {
	tests := []struct {
		text string
		want model.Level
	}{
		{"international conference", model.LevelV},
		{"national hackathon", model.LevelIV},
		{"state level quiz", model.LevelIII},
		{"ktu university fest", model.LevelIII},
		{"district sports meet", model.LevelII},
		{"college day", model.LevelI},
		{"", model.LevelI},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLevel(corpus.New(tt.text)))
		})
	}
}

func TestSpecialCaseOrder(t *testing.T) {
	assert.Equal(t, []string{"nptel", "course", "cultural", "sports", "literary"}, SpecialCaseNames())
}
