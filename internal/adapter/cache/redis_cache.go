package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/package_pricing/internal/core/domain"
)

const keyPrefix = "ruleset:"

var errStaleGeneration = errors.New("rule set cache generation moved")

// RuleSetCache keeps normalized rule sets in redis as JSON. Every package has
// a generation counter next to its entry; Invalidate bumps it and Set only
// writes while it still holds the value the reader saw.
type RuleSetCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRuleSetCache(client *redis.Client, ttl time.Duration) *RuleSetCache {
	return &RuleSetCache{client: client, ttl: ttl}
}

func key(packageID uuid.UUID) string {
	return keyPrefix + packageID.String()
}

func generationKey(packageID uuid.UUID) string {
	return keyPrefix + packageID.String() + ":gen"
}

func (c *RuleSetCache) Get(ctx context.Context, packageID uuid.UUID) (*domain.RuleSet, int64, error) {
	vals, err := c.client.MGet(ctx, key(packageID), generationKey(packageID)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("redis mget: %w", err)
	}

	var generation int64
	if s, ok := vals[1].(string); ok {
		if generation, err = strconv.ParseInt(s, 10, 64); err != nil {
			return nil, 0, fmt.Errorf("decode cache generation: %w", err)
		}
	}

	payload, ok := vals[0].(string)
	if !ok {
		return nil, generation, nil
	}

	var rs domain.RuleSet
	if err := json.Unmarshal([]byte(payload), &rs); err != nil {
		return nil, generation, fmt.Errorf("decode cached rule set: %w", err)
	}

	return &rs, generation, nil
}

// Set stores rs unless the package was invalidated after generation was read.
// A skipped write is not an error.
func (c *RuleSetCache) Set(ctx context.Context, packageID uuid.UUID, rs *domain.RuleSet, generation int64) error {
	payload, err := json.Marshal(rs)
	if err != nil {
		return fmt.Errorf("encode rule set: %w", err)
	}

	genKey := generationKey(packageID)

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		if current != generation {
			return errStaleGeneration
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key(packageID), payload, c.ttl)
			return nil
		})

		return err
	}, genKey)

	switch {
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		return nil
	case err != nil:
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func (c *RuleSetCache) Invalidate(ctx context.Context, packageID uuid.UUID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(packageID))
		pipe.Del(ctx, key(packageID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}

	return nil
}
