package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"smartbin/internal/feature/workspace/domain/entity"
	"smartbin/internal/feature/workspace/usecase"
)

// WorkspaceMemory implements usecase.StateStore in process memory.
// It is used when Redis is not configured.
type WorkspaceMemory struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[uuid.UUID]memoryEntry
}

type memoryEntry struct {
	state     *entity.State
	expiresAt time.Time
}

var _ usecase.StateStore = (*WorkspaceMemory)(nil)

// NewWorkspaceMemory creates a new WorkspaceMemory instance.
// If ttl is 0, it defaults to DefaultTTL.
func NewWorkspaceMemory(ttl time.Duration) *WorkspaceMemory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &WorkspaceMemory{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[uuid.UUID]memoryEntry),
	}
}

// Save overwrites the workspace state and evicts expired entries.
func (m *WorkspaceMemory) Save(ctx context.Context, state *entity.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, id)
		}
	}
	m.entries[state.ID] = memoryEntry{state: state.Clone(), expiresAt: now.Add(m.ttl)}
	return nil
}

// Load retrieves a copy of the workspace state.
func (m *WorkspaceMemory) Load(ctx context.Context, id uuid.UUID) (*entity.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok || m.now().After(e.expiresAt) {
		return nil, usecase.ErrWorkspaceNotFound
	}
	return e.state.Clone(), nil
}
