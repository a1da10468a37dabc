// README: Saved place store backed by a Redis hash per user.
package savedplace

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const placesKeyPrefix = "savedplace:user:%s"

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// Put stores p under its already normalised label, replacing any previous
// value.
func (s *Store) Put(ctx context.Context, userID string, p Place) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.redis.HSet(ctx, placesKey(userID), p.Label, raw).Err()
}

// Get returns the place saved under label and whether it exists.
func (s *Store) Get(ctx context.Context, userID, label string) (Place, bool, error) {
	raw, err := s.redis.HGet(ctx, placesKey(userID), label).Result()
	if err == redis.Nil {
		return Place{}, false, nil
	}
	if err != nil {
		return Place{}, false, err
	}
	var p Place
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Place{}, false, fmt.Errorf("decode saved place %s/%s: %w", userID, label, err)
	}
	return p, true, nil
}

func (s *Store) All(ctx context.Context, userID string) ([]Place, error) {
	entries, err := s.redis.HGetAll(ctx, placesKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Place, 0, len(entries))
	for label, raw := range entries {
		var p Place
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("decode saved place %s/%s: %w", userID, label, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Remove deletes label and reports whether it existed.
func (s *Store) Remove(ctx context.Context, userID, label string) (bool, error) {
	n, err := s.redis.HDel(ctx, placesKey(userID), label).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func placesKey(userID string) string {
	return fmt.Sprintf(placesKeyPrefix, userID)
}
