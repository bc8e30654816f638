package classifier

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cacheKeyPrefix = "classificacao:"

// CachedScorer guarda no Redis os scores de cada título. Falhas do Redis não
// interrompem a classificação: o Scorer seguinte é sempre consultado.
type CachedScorer struct {
	Client *redis.Client
	Next   Scorer
	TTL    time.Duration
}

// NewRedisClient aceita tanto uma URL (redis://...) quanto host:porta e testa a
// conexão antes de devolver o cliente.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts := &redis.Options{Addr: url}
	if strings.HasPrefix(url, "redis://") || strings.HasPrefix(url, "rediss://") {
		parsed, err := redis.ParseURL(url)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		opts = parsed
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return client, nil
}

func cacheKey(title string) string {
	sum := sha1.Sum([]byte(Fold(title)))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

func (c *CachedScorer) Classify(ctx context.Context, title string) ([]LabelScore, error) {
	key := cacheKey(title)

	val, err := c.Client.Get(ctx, key).Result()
	if err == nil {
		var cached []LabelScore
		if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
			return cached, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.Warn().Err(err).Msg("[Cache] leitura do redis falhou")
	}

	scores, err := c.Next.Classify(ctx, title)
	if err != nil {
		return nil, err
	}

	b, _ := json.Marshal(scores)
	if err := c.Client.Set(ctx, key, b, c.TTL).Err(); err != nil {
		log.Warn().Err(err).Msg("[Cache] escrita no redis falhou")
	}
	return scores, nil
}
