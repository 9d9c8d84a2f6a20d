package devserver

import (
	"context"
	"regexp"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

const trendingKey = "flicksy:trending"

var hashtagPattern = regexp.MustCompile(`#(\w+)`)

// Trending maintains the hashtag leaderboard in a redis sorted set.
type Trending struct {
	rdb *redis.Client
}

// NewTrending binds the leaderboard to a redis client.
func NewTrending(rdb *redis.Client) *Trending {
	return &Trending{rdb: rdb}
}

// Bump increments the score of every hashtag found in content.
func (t *Trending) Bump(ctx context.Context, content string) error {
	for _, m := range hashtagPattern.FindAllStringSubmatch(content, -1) {
		tag := strings.ToLower(m[1])
		if err := t.rdb.ZIncrBy(ctx, trendingKey, 1, tag).Err(); err != nil {
			return err
		}
	}
	return nil
}

// Top returns the highest-scored hashtags, best first.
func (t *Trending) Top(ctx context.Context, limit int) ([]models.TrendingTopic, error) {
	if limit <= 0 {
		limit = 10
	}
	entries, err := t.rdb.ZRevRangeWithScores(ctx, trendingKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	topics := make([]models.TrendingTopic, 0, len(entries))
	for _, e := range entries {
		tag, _ := e.Member.(string)
		topics = append(topics, models.TrendingTopic{Tag: "#" + tag, Count: int64(e.Score)})
	}
	return topics, nil
}
