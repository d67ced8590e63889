package di

import (
	"github.com/redis/go-redis/v9"

	"smartbin/internal/feature/workspace/usecase"
	"smartbin/internal/platform/session"
)

// NewStateStore creates a workspace StateStore implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to an in-process store.
func NewStateStore(rdb *redis.Client) usecase.StateStore {
	ttl := envDuration("WORKSPACE_TTL", session.DefaultTTL)
	if rdb != nil {
		return session.NewWorkspaceRedis(rdb, "workspace", ttl)
	}
	return session.NewWorkspaceMemory(ttl)
}
