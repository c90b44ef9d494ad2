package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fortuneehis/quickk/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const postTTL = 5 * time.Minute

// PostCache is a read-through Redis cache for public single-post lookups.
// Interactions rewrite a post's collections on every request, so mutations
// invalidate cached entries rather than update them.
type PostCache struct {
	client *redis.Client
	logger zerolog.Logger
}

func New(addr, password string) (*PostCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &PostCache{
		client: client,
		logger: log.With().Str("component", "postCache").Logger(),
	}, nil
}

func postKey(username, slug string) string {
	return fmt.Sprintf("post:%s:%s", username, slug)
}

// GetPost returns the cached post for the author/slug pair, if present.
func (c *PostCache) GetPost(ctx context.Context, username, slug string) (*models.Post, bool) {
	data, err := c.client.Get(ctx, postKey(username, slug)).Bytes()
	if err != nil {
		return nil, false
	}

	var post models.Post
	if err := json.Unmarshal(data, &post); err != nil {
		c.logger.Error().Err(err).Str("slug", slug).Msg("Failed to decode cached post")
		return nil, false
	}
	return &post, true
}

// SetPost caches the post under the author/slug pair.
func (c *PostCache) SetPost(ctx context.Context, username, slug string, post *models.Post) {
	data, err := json.Marshal(post)
	if err != nil {
		c.logger.Error().Err(err).Str("slug", slug).Msg("Failed to encode post for cache")
		return
	}

	if err := c.client.Set(ctx, postKey(username, slug), data, postTTL).Err(); err != nil {
		c.logger.Error().Err(err).Str("slug", slug).Msg("Failed to cache post")
	}
}

// InvalidatePost drops every cached entry for the slug. Keys are scoped by
// author username, which the interaction handlers don't have on hand, so this
// scans by slug suffix.
func (c *PostCache) InvalidatePost(ctx context.Context, slug string) {
	iter := c.client.Scan(ctx, 0, "post:*:"+slug, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Error().Err(err).Str("key", iter.Val()).Msg("Failed to invalidate cached post")
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Error().Err(err).Str("slug", slug).Msg("Cache invalidation scan failed")
	}
}
