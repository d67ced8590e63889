// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"smartbin/internal/feature/classification/domain/entity"
	"smartbin/internal/feature/classification/usecase"
)

// CachingClassifier decorates a Classifier with Redis caching.
// Results are keyed by the SHA-256 of the image bytes, so re-uploading the
// same image is served without another backend call.
type CachingClassifier struct {
	inner     usecase.Classifier
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.Classifier = (*CachingClassifier)(nil)

// NewCachingClassifier decorates a Classifier with Redis caching.
// If ttl is 0, it defaults to 10 minutes. If namespace is empty, it uses "classify".
func NewCachingClassifier(rdb *redis.Client, ttl time.Duration, inner usecase.Classifier, namespace string) *CachingClassifier {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if namespace == "" {
		namespace = "classify"
	}
	return &CachingClassifier{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Classify returns a cached result for identical image bytes, falling back to the inner classifier.
// Cache failures are never returned to the caller.
func (c *CachingClassifier) Classify(ctx context.Context, upload entity.Upload) (*entity.ClassificationResult, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Classify(ctx, upload)
	}

	key := c.cacheKey(upload.Data)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.ClassificationResult
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	} else if err != nil && !errors.Is(err, redis.Nil) {
		slog.Warn("result cache read failed", "error", err, "key", key)
	}

	// 2) Fallback to the backend
	out, err := c.inner.Classify(ctx, upload)
	if err != nil {
		return nil, err
	}

	// Empty results are reported to the user, not remembered
	if out == nil || len(out.Predictions) == 0 {
		return out, nil
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			slog.Warn("result cache write failed", "error", err, "key", key)
		}
	}

	return out, nil
}

// cacheKey generates a cache key from the image content.
func (c *CachingClassifier) cacheKey(data []byte) string {
	sum := sha256.Sum256(data)
	return c.namespace + ":" + hex.EncodeToString(sum[:])
}
