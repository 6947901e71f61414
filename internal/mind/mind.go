// Package mind implements the agent state operations: memory, goals,
// revenue, decisions and reflection. All state lives in one document held
// behind a single lock; every mutation persists the document before
// returning.
package mind

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mindforge/mindforge/internal/model"
	"github.com/mindforge/mindforge/internal/store"
)

// Mind owns the loaded state document. Mutating operations are serialized;
// concurrent callers never lose updates to each other within one process.
type Mind struct {
	mu    sync.Mutex
	store store.Store
	state *model.AgentState
	now   func() time.Time
}

// New loads the document from s (or starts fresh) and returns the handle
// all operations go through.
func New(s store.Store) (*Mind, error) {
	state, err := s.Load()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return &Mind{store: s, state: state, now: time.Now}, nil
}

// mutate applies fn to the state, stamps status.last_update and persists.
// If the save fails the error propagates; the in-memory change is kept so
// a later successful save carries it.
func (m *Mind) mutate(fn func(st *model.AgentState)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.state)
	m.state.Status.LastUpdate = m.now()
	return m.store.Save(m.state)
}

// Identity returns the agent identity.
func (m *Mind) Identity() model.Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Identity
}

// Snapshot returns a deep copy of the whole document.
func (m *Mind) Snapshot() (*model.AgentState, error) {
	m.mu.Lock()
	b, err := json.Marshal(m.state)
	m.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("snapshot state: %w", err)
	}
	var snap model.AgentState
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("snapshot state: %w", err)
	}
	return &snap, nil
}
