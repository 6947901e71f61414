package mind

import (
	"github.com/mindforge/mindforge/internal/model"
)

// SetGoal inserts or overwrites the goal under id. Re-setting an existing
// id restarts the goal: status back to in_progress, fresh created_at, no
// completed_at. The id is caller-managed.
func (m *Mind) SetGoal(id, description, deadline, priority string) (model.Goal, error) {
	if priority == "" {
		priority = model.PriorityHigh
	}
	goal := model.Goal{
		Description: description,
		Deadline:    deadline,
		Priority:    priority,
		Status:      model.GoalInProgress,
		CreatedAt:   m.now(),
	}
	err := m.mutate(func(st *model.AgentState) {
		st.Goals.Set(id, &goal)
	})
	return goal, err
}

// CompleteGoal marks the goal done, stamping completed_at. Returns false
// without touching anything when the id is unknown. Completing a goal
// twice re-stamps completed_at but never regresses the status.
func (m *Mind) CompleteGoal(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	goal, ok := m.state.Goals.Get(id)
	if !ok {
		return false, nil
	}
	now := m.now()
	goal.Status = model.GoalCompleted
	goal.CompletedAt = &now
	m.state.Status.LastUpdate = now
	return true, m.store.Save(m.state)
}

// Goals returns the goal ids in insertion order along with their entries.
func (m *Mind) Goals() ([]string, map[string]model.Goal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := m.state.Goals.Keys()
	out := make(map[string]model.Goal, len(ids))
	for _, id := range ids {
		if g, ok := m.state.Goals.Get(id); ok {
			out[id] = *g
		}
	}
	return ids, out
}
