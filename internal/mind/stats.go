package mind

import (
	"os"

	"github.com/mindforge/mindforge/internal/model"
)

// Stats summarizes the state document.
type Stats struct {
	StatePath      string  `json:"state_path"`
	StateSizeBytes int64   `json:"state_size_bytes"`
	ShortTerm      int     `json:"short_term"`
	LongTerm       int     `json:"long_term"`
	Skills         int     `json:"skills"`
	Goals          int     `json:"goals"`
	ActiveGoals    int     `json:"active_goals"`
	Streams        int     `json:"streams"`
	TotalEarned    float64 `json:"total_earned"`
	Expenses       float64 `json:"expenses"`
}

// Stats returns counts per ledger plus the document location and size.
func (m *Mind) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := Stats{
		StatePath:   m.store.Path(),
		ShortTerm:   len(m.state.Memory.ShortTerm),
		LongTerm:    len(m.state.Memory.LongTerm),
		Skills:      len(m.state.Memory.Skills),
		Goals:       m.state.Goals.Len(),
		Streams:     len(m.state.Resources.Streams),
		TotalEarned: m.state.Resources.TotalEarned,
		Expenses:    m.state.Resources.Expenses,
	}
	for _, id := range m.state.Goals.Keys() {
		if g, ok := m.state.Goals.Get(id); ok && g.Status == model.GoalInProgress {
			st.ActiveGoals++
		}
	}
	if info, err := os.Stat(st.StatePath); err == nil {
		st.StateSizeBytes = info.Size()
	}
	return st
}
