package service

import (
	"context"
	"io"
	"sync"

	"certpoints/internal/cache"
	"certpoints/internal/model"
)

type fakeCatalogCache struct {
	entry       *cache.CatalogEntry
	invalidated int
}

func (c *fakeCatalogCache) Get(context.Context) (*cache.CatalogEntry, error) { return c.entry, nil }

func (c *fakeCatalogCache) Set(_ context.Context, entry *cache.CatalogEntry) error {
	c.entry = entry
	return nil
}

func (c *fakeCatalogCache) Invalidate(context.Context) error {
	c.entry = nil
	c.invalidated++
	return nil
}

type fakeLeaderboard struct {
	mu     sync.Mutex
	scores map[string]map[string]int
}

func newFakeLeaderboard() *fakeLeaderboard {
	return &fakeLeaderboard{scores: map[string]map[string]int{}}
}

func (l *fakeLeaderboard) board(class string) map[string]int {
	if l.scores[class] == nil {
		l.scores[class] = map[string]int{}
	}
	return l.scores[class]
}

func (l *fakeLeaderboard) SetScore(_ context.Context, class, userID string, points int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.board(class)[userID] = points
	return nil
}

func (l *fakeLeaderboard) IncrBy(_ context.Context, class, userID string, delta int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.board(class)[userID] += delta
	return nil
}

func (l *fakeLeaderboard) GetTop(_ context.Context, class string, limit int) ([]model.LeaderboardEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return rank(l.board(class), limit), nil
}

func (l *fakeLeaderboard) GetRank(context.Context, string, string) (int64, error) { return -1, nil }

func (l *fakeLeaderboard) Rebuild(_ context.Context, class string, totals map[string]int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.scores[class] = map[string]int{}
	for k, v := range totals {
		l.scores[class][k] = v
	}
	return nil
}

// fakeOCR returns a fixed raw text for every image
type fakeOCR struct {
	rec model.ExtractedRecord
	err error
}

func (o fakeOCR) Process(_ context.Context, _ string, image io.Reader) (model.ExtractedRecord, error) {
	_, _ = io.Copy(io.Discard, image)
	return o.rec, o.err
}

type sent struct {
	to      string
	msgType string
}

type recordingBroadcaster struct {
	mu   sync.Mutex
	sent []sent
}

func (b *recordingBroadcaster) BroadcastToClass(class, msgType string, _ interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, sent{to: "class:" + class, msgType: msgType})
}

func (b *recordingBroadcaster) BroadcastToUser(userID, msgType string, _ interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, sent{to: "user:" + userID, msgType: msgType})
}
