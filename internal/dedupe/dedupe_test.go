package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"certpoints/internal/model"
)

func cert(id, fileName, event, typ, raw string) model.Certificate {
	return model.Certificate{
		ID:           id,
		UserID:       "u1",
		FileName:     fileName,
		ActivityType: typ,
		Status:       model.StatusPending,
		ExtractedData: model.CertificateData{
			RawText:  raw,
			Entities: model.ExtractedRecord{EventName: event},
		},
	}
}

func TestIsDuplicate_SameBaseName(t *testing.T) {
	existing := []model.Certificate{cert("c1", "report.pdf", "", "", "")}
	assert.True(t, IsDuplicate(existing, model.ExtractedRecord{}, "report.jpg"))
	assert.False(t, IsDuplicate(existing, model.ExtractedRecord{}, "report-2.jpg"))
}

func TestCheck_FilenameReason(t *testing.T) {
	existing := []model.Certificate{cert("c1", "u1-dance.png", "", "", "")}
	d := NewMatcher(DefaultWeights).Check(existing, model.ExtractedRecord{}, `C:\Users\me\dance.jpeg`)
	assert.True(t, d.Duplicate)
	assert.Equal(t, "filename", d.Reason)
	assert.Equal(t, "c1", d.MatchedID)
}

func TestCheck_SimilarityBoundary(t *testing.T) {
	existing := []model.Certificate{cert("c1", "a.png", "IEEE Hackathon 2024", "Professional Self Initiatives", "alpha bravo charlie delta")}
	rec := model.ExtractedRecord{
		EventName:    "IEEE Hackathon 2024",
		ActivityHead: "Professional Self Initiatives",
		RawText:      "echo foxtrot golf hotel",
	}

	d := NewMatcher(DefaultWeights).Check(existing, rec, "b.png")
	assert.True(t, d.Duplicate)
	assert.Equal(t, "similarity", d.Reason)
	assert.Equal(t, 60, d.Score)
}

func TestCheck_BelowThreshold(t *testing.T) {
	existing := []model.Certificate{cert("c1", "a.png", "IEEE Hackathon 2024", "Sports & Games Participation", "alpha bravo charlie delta")}
	rec := model.ExtractedRecord{
		EventName:    "IEEE Hackathon",
		ActivityHead: "Professional Self Initiatives",
		RawText:      "alpha bravo zulu yankee xray",
	}

	m := NewMatcher(DefaultWeights)
	assert.Equal(t, 40+25, m.Score(existing[0], rec))
	assert.True(t, m.Check(existing, rec, "b.png").Duplicate)

	rec.RawText = "alpha zulu yankee xray"
	assert.Equal(t, 40, m.Score(existing[0], rec))
	assert.False(t, m.Check(existing, rec, "b.png").Duplicate)
}

func TestCheck_SkipsRejected(t *testing.T) {
	c := cert("c1", "a.png", "Dance Fest", "Cultural Activities Participation", "same words here again")
	c.Status = model.StatusRejected
	rec := model.ExtractedRecord{
		EventName:    "Dance Fest",
		ActivityHead: "Cultural Activities Participation",
		RawText:      "same words here again",
	}
	assert.False(t, IsDuplicate([]model.Certificate{c}, rec, "b.png"))
}

func TestCheck_FallsBackToActivityName(t *testing.T) {
	c := cert("c1", "a.png", "", "Professional Self Initiatives", "")
	c.ActivityName = "Hackathon"
	rec := model.ExtractedRecord{EventName: "Smart India Hackathon", ActivityHead: "Professional Self Initiatives"}
	assert.Equal(t, 60, NewMatcher(DefaultWeights).Score(c, rec))
}

func TestCheck_NoHistory(t *testing.T) {
	assert.False(t, IsDuplicate(nil, model.ExtractedRecord{RawText: "anything"}, "x.png"))
	assert.False(t, IsDuplicate([]model.Certificate{cert("c1", "", "", "x", "")}, model.ExtractedRecord{}, ""))
}

func TestOverlap(t *testing.T) {
	assert.InDelta(t, 1.0, Overlap("Alpha bravo the", "alpha BRAVO charlie delta", 3), 1e-9)
	assert.InDelta(t, 0.5, Overlap("alpha bravo", "alpha zulu", 3), 1e-9)
	assert.Zero(t, Overlap("a an the", "alpha", 3))
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		in, user, want string
	}{
		{"report.pdf", "", "report"},
		{"uploads/u1-report.jpg", "u1", "report"},
		{"u1_report.tar.gz", "u1", "report.tar"},
		{`C:\docs\report.png`, "", "report"},
		{"u2-report.png", "u1", "u2-report"},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseName(tt.in, tt.user))
		})
	}
}

func TestVerifyIdentity(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		rec      model.ExtractedRecord
		want     bool
	}{
		{
			"full name in raw text", "John Smith",
			model.ExtractedRecord{RawText: "This is to certify that John Smith has completed a course on NPTEL titled Data Structures"},
			true,
		},
		{"part in raw text", "Smith Johnson", model.ExtractedRecord{RawText: "awarded to J. Smith"}, true},
		{"part in extracted names", "Asha Nair", model.ExtractedRecord{Names: []string{"NAIR ASHA K"}}, true},
		{"short parts ignored", "Al Bo", model.ExtractedRecord{RawText: "alpha beta"}, false},
		{"no match", "Priya Menon", model.ExtractedRecord{RawText: "certify that Rahul Kumar", Names: []string{"Rahul Kumar"}}, false},
		{"loose fragment match", "Ann Lee", model.ExtractedRecord{RawText: "Annual sports meet"}, true},
		{"blank user name", "  ", model.ExtractedRecord{RawText: "anything"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyIdentity(tt.fullName, tt.rec))
		})
	}
}
