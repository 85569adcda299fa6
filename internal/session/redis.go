package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"kounhany-ai-go/internal/model"
)

const sessionTTL = 7 * 24 * time.Hour

// redisStore persists sessions as Redis lists, one list per user. The
// append-then-truncate pair runs in a transaction pipeline so the limit
// holds under concurrent appends.
type redisStore struct {
	client *redis.Client
	limit  int
}

// NewRedisStore creates a Redis-backed Store with the given per-user turn
// limit.
func NewRedisStore(client *redis.Client, limit int) Store {
	return &redisStore{client: client, limit: limit}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("session:%s", userID)
}

func (s *redisStore) Append(ctx context.Context, userID string, turns ...model.ChatMessage) error {
	if len(turns) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(turns))
	for _, t := range turns {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("marshal turn: %w", err)
		}
		values = append(values, data)
	}

	key := sessionKey(userID)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, int64(-s.limit), -1)
	pipe.Expire(ctx, key, sessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append session turns: %w", err)
	}
	return nil
}

func (s *redisStore) Recent(ctx context.Context, userID string, k int) ([]model.ChatMessage, error) {
	start := int64(0)
	if k > 0 {
		start = int64(-k)
	}
	raw, err := s.client.LRange(ctx, sessionKey(userID), start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read session turns: %w", err)
	}

	turns := make([]model.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var msg model.ChatMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			// Skip entries that no longer parse instead of losing the
			// whole session.
			continue
		}
		turns = append(turns, msg)
	}
	return turns, nil
}

func (s *redisStore) HasHistory(ctx context.Context, userID string) (bool, error) {
	n, err := s.client.LLen(ctx, sessionKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("check session length: %w", err)
	}
	return n > 0, nil
}

func (s *redisStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
