package ranking

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/shiftswap-service/internal/domain"
	"github.com/spec-kit/shiftswap-service/internal/observability"
)

// CachedRanker wraps another Ranker with a redis read-through cache, keyed
// by the shift and a digest of the candidate list. Duplicate swap requests
// for the same shift with unchanged candidates reuse the stored ranking.
// Redis failures are logged and fall through to the inner client.
type CachedRanker struct {
	inner   Ranker
	client  *redis.Client
	ttl     time.Duration
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewCachedRanker decorates inner with a ranking cache. A zero TTL or nil
// redis client disables caching and returns inner unchanged.
func NewCachedRanker(inner Ranker, client *redis.Client, ttl time.Duration, logger *zap.Logger, metrics *observability.Metrics) Ranker {
	if client == nil || ttl <= 0 {
		return inner
	}
	return &CachedRanker{inner: inner, client: client, ttl: ttl, logger: logger, metrics: metrics}
}

// Rank serves a cached result when one exists, otherwise delegates and
// stores successful non-empty results. Empty results are never cached: a
// degraded call should not pin the degradation for the TTL.
func (c *CachedRanker) Rank(ctx context.Context, req Request) (domain.RankingResult, error) {
	key := cacheKey(req)

	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		result, parseErr := domain.ParseAuditBlob(cached)
		if parseErr == nil {
			c.metrics.RecordRankingCacheHit()
			return result, nil
		}
		c.logger.Warn("discarding unparseable cached ranking", zap.String("key", key), zap.Error(parseErr))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("ranking cache read failed", zap.Error(err))
	}

	result, err := c.inner.Rank(ctx, req)
	if err != nil || result.Empty() {
		return result, err
	}

	if setErr := c.client.Set(ctx, key, result.AuditBlob(), c.ttl).Err(); setErr != nil {
		c.logger.Warn("ranking cache write failed", zap.Error(setErr))
	}
	return result, nil
}

// cacheKey digests the shift descriptor and candidate list so any change
// in candidates or their recent hours produces a fresh ranking.
func cacheKey(req Request) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s", req.Shift.Role, req.Shift.Start, req.Shift.End)
	for _, c := range req.Candidates {
		fmt.Fprintf(h, "|%d:%s:%d", c.ID, c.Name, c.HoursLast7Days)
	}
	return "ranking:" + hex.EncodeToString(h.Sum(nil))
}
