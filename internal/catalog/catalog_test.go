package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certpoints/internal/corpus"
	"certpoints/internal/model"
)

func TestSnapshot_Match(t *testing.T) {
	snap := NewSnapshot(DefaultVersion, DefaultRules())

	tests := []struct {
		name       string
		text       string
		wantOK     bool
		wantNumber string
		wantKW     string
	}{
		{name: "hackathon", text: "winner of the national hackathon", wantOK: true, wantNumber: "10", wantKW: "hackathon"},
		{name: "longest keyword wins", text: "certificate of completion for python programming", wantOK: true, wantNumber: "11a", wantKW: "certificate of completion"},
		{name: "tie keeps first rule", text: "two day workshop", wantOK: true, wantNumber: "11", wantKW: "workshop"},
		{name: "patent", text: "indian patent granted for device", wantOK: true, wantNumber: "20", wantKW: "patent granted"},
		{name: "nothing", text: "lorem ipsum", wantOK: false},
		{name: "abbreviation inside word", text: "Community outreach at Unity Hall", wantOK: true, wantNumber: "11", wantKW: "nit"},
		{name: "abbreviation as word", text: "paper presentation at nit calicut", wantOK: true, wantNumber: "12", wantKW: "paper presentation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := snap.Match(corpus.New(tt.text))
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantNumber, m.Rule.ActivityNumber)
			assert.Equal(t, tt.wantKW, m.Keyword)
		})
	}
}

func TestSnapshot_MatchNormalizesKeywords(t *testing.T) {
	snap := NewSnapshot("v1", []model.ActivityRule{
		{Name: "Hack", ActivityNumber: "1", Keywords: []string{"  HackAthon ", "hackathon", ""}},
	})

	m, ok := snap.Match(corpus.New("a hackathon"))
	require.True(t, ok)
	assert.Equal(t, []string{"hackathon"}, m.Rule.Keywords)
}

func TestSnapshot_Nil(t *testing.T) {
	var snap *Snapshot
	_, ok := snap.Match(corpus.New("anything"))
	assert.False(t, ok)
	assert.Equal(t, 0, snap.Len())
	assert.Nil(t, snap.Rules())
}

func TestSnapshot_IsolatedFromCaller(t *testing.T) {
	rules := []model.ActivityRule{{Name: "A", Keywords: []string{"alpha"}}}
	snap := NewSnapshot("v1", rules)
	rules[0].Name = "changed"

	got := snap.Rules()
	got[0].Name = "changed again"
	assert.Equal(t, "A", snap.Rules()[0].Name)
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	assert.GreaterOrEqual(t, len(rules), 38)

	heads := map[model.ActivityHead]bool{}
	for _, h := range model.ActivityHeads {
		heads[h] = true
	}
	for _, r := range rules {
		assert.True(t, heads[r.ActivityHead], "unknown head %q on %s", r.ActivityHead, r.Name)
		assert.NotEmpty(t, r.Keywords, r.Name)
		assert.Greater(t, r.MaxPoints, 0, r.Name)
		for _, lvl := range model.Levels {
			assert.GreaterOrEqual(t, r.PointsPerLevel.At(lvl), 0)
		}
	}
}

func TestStatic(t *testing.T) {
	src := NewStatic("fixture", DefaultRules())
	snap, err := src.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fixture", snap.Version)
	assert.Equal(t, len(DefaultRules()), snap.Len())
}

func TestSearch(t *testing.T) {
	rules := DefaultRules()

	got := Search(rules, "Patent")
	require.NotEmpty(t, got)
	for _, r := range got {
		assert.Contains(t, r.Name, "Patent")
	}

	got = Search(rules, "ncc")
	require.NotEmpty(t, got)
	assert.Equal(t, "NCC", got[0].Name)

	assert.Nil(t, Search(rules, "  "))
	assert.Empty(t, Search(rules, "zzzz"))
}
