// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"smartbin/internal/feature/classification/adapters/vision"
	"smartbin/internal/feature/classification/usecase"
	"smartbin/internal/platform/cache"
	"smartbin/internal/platform/externalapi/predictapi"
	infrahttp "smartbin/internal/platform/http"
	"smartbin/internal/shared/ratelimiter"
)

// Classifier modes selectable with CLASSIFIER.
const (
	ClassifierHTTP   = "http"
	ClassifierVision = "vision"
)

const (
	defaultResultCacheTTL  = 10 * time.Minute
	defaultVisionRateLimit = 600 // calls per minute
)

// Classifier is the configured classifier together with its mode and cleanup.
type Classifier struct {
	usecase.Classifier
	Mode  string
	Close func() error
}

// ClassifierMode returns the CLASSIFIER setting, defaulting to "http".
func ClassifierMode() (string, error) {
	mode := strings.ToLower(strings.TrimSpace(os.Getenv("CLASSIFIER")))
	switch mode {
	case "", ClassifierHTTP:
		return ClassifierHTTP, nil
	case ClassifierVision:
		return ClassifierVision, nil
	default:
		return "", fmt.Errorf("unknown CLASSIFIER %q (want http or vision)", mode)
	}
}

// NewClassifier creates the classifier selected by CLASSIFIER and wraps it with
// the Redis result cache. A nil rdb disables caching.
func NewClassifier(ctx context.Context, rdb *redis.Client) (*Classifier, error) {
	mode, err := ClassifierMode()
	if err != nil {
		return nil, err
	}

	var (
		inner   usecase.Classifier
		closeFn = func() error { return nil }
	)
	switch mode {
	case ClassifierVision:
		limit := envInt("VISION_RATE_LIMIT", defaultVisionRateLimit)
		vc, err := vision.NewVisionClassifier(ctx, ratelimiter.NewRateLimiter(limit, time.Minute))
		if err != nil {
			return nil, fmt.Errorf("create vision classifier: %w", err)
		}
		inner, closeFn = vc, vc.Close
	default:
		cfg := predictapi.LoadConfig()
		inner = predictapi.NewPredictClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
	}

	ttl := envDuration("RESULT_CACHE_TTL", defaultResultCacheTTL)
	return &Classifier{
		Classifier: cache.NewCachingClassifier(rdb, ttl, inner, "classify"),
		Mode:       mode,
		Close:      closeFn,
	}, nil
}

// envDuration reads a time.Duration from key, falling back to def when unset or invalid.
func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

// envInt reads an int from key, falling back to def when unset or invalid.
func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}
