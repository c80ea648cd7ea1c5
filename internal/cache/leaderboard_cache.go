package cache

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"certpoints/internal/model"
)

// LeaderboardCache keeps approved points per student in a class ZSET
type LeaderboardCache interface {
	SetScore(ctx context.Context, class, userID string, points int) error
	IncrBy(ctx context.Context, class, userID string, delta int) error
	GetTop(ctx context.Context, class string, limit int) ([]model.LeaderboardEntry, error)
	GetRank(ctx context.Context, class, userID string) (int64, error)
	Rebuild(ctx context.Context, class string, totals map[string]int) error
}

type leaderboardCache struct {
	client *redis.Client
}

// NewLeaderboardCache creates a new leaderboard cache
func NewLeaderboardCache(client *redis.Client) LeaderboardCache {
	return &leaderboardCache{
		client: client,
	}
}

func (c *leaderboardCache) key(class string) string {
	return fmt.Sprintf("class:%s:lb", class)
}

func (c *leaderboardCache) SetScore(ctx context.Context, class, userID string, points int) error {
	return c.client.ZAdd(ctx, c.key(class), redis.Z{
		Score:  float64(points),
		Member: userID,
	}).Err()
}

func (c *leaderboardCache) IncrBy(ctx context.Context, class, userID string, delta int) error {
	return c.client.ZIncrBy(ctx, c.key(class), float64(delta), userID).Err()
}

func (c *leaderboardCache) GetTop(ctx context.Context, class string, limit int) ([]model.LeaderboardEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, c.key(class), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "reading leaderboard of class %s", class)
	}

	entries := make([]model.LeaderboardEntry, 0, len(results))
	for i, z := range results {
		id, _ := z.Member.(string)
		entries = append(entries, model.LeaderboardEntry{
			UserID: id,
			Points: int(z.Score),
			Rank:   i + 1,
		})
	}
	return entries, nil
}

func (c *leaderboardCache) GetRank(ctx context.Context, class, userID string) (int64, error) {
	rank, err := c.client.ZRevRank(ctx, c.key(class), userID).Result()
	if err == redis.Nil {
		return -1, nil
	}
	return rank + 1, err // 1-indexed
}

// Rebuild replaces the class board with totals in one transaction
func (c *leaderboardCache) Rebuild(ctx context.Context, class string, totals map[string]int) error {
	key := c.key(class)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		for userID, points := range totals {
			pipe.ZAdd(ctx, key, redis.Z{Score: float64(points), Member: userID})
		}
		return nil
	})
	return errors.Wrapf(err, "rebuilding leaderboard of class %s", class)
}
