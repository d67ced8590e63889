// Package session provides stores for per-user workspace state.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"smartbin/internal/feature/workspace/domain/entity"
	"smartbin/internal/feature/workspace/usecase"
)

// DefaultTTL is how long an idle workspace is kept.
const DefaultTTL = 30 * time.Minute

// WorkspaceRedis implements usecase.StateStore using Redis.
// Every Save refreshes the TTL, so only idle workspaces expire.
type WorkspaceRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ usecase.StateStore = (*WorkspaceRedis)(nil)

// NewWorkspaceRedis creates a new WorkspaceRedis instance.
// If ttl is 0, it defaults to DefaultTTL. If prefix is empty, it uses "workspace".
func NewWorkspaceRedis(client *redis.Client, prefix string, ttl time.Duration) *WorkspaceRedis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if prefix == "" {
		prefix = "workspace"
	}
	return &WorkspaceRedis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// workspaceKey returns the Redis key for a workspace.
func (r *WorkspaceRedis) workspaceKey(id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// Save overwrites the workspace state.
func (r *WorkspaceRedis) Save(ctx context.Context, state *entity.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal workspace: %w", err)
	}
	return r.client.Set(ctx, r.workspaceKey(state.ID), data, r.ttl).Err()
}

// Load retrieves a workspace by its ID.
func (r *WorkspaceRedis) Load(ctx context.Context, id uuid.UUID) (*entity.State, error) {
	data, err := r.client.Get(ctx, r.workspaceKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrWorkspaceNotFound
		}
		return nil, err
	}

	var state entity.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workspace: %w", err)
	}
	return &state, nil
}
