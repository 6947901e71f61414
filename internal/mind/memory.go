package mind

import (
	"time"

	"github.com/mindforge/mindforge/internal/model"
)

// Remember appends an entry to the short-term ledger. Important entries
// get a copy in long-term as well. The ledgers are append-only and
// unbounded; retention is a separate compaction pass (see CompactShortTerm).
func (m *Mind) Remember(content, importance string) (model.MemoryEntry, error) {
	if importance == "" {
		importance = model.ImportanceNormal
	}
	entry := model.MemoryEntry{
		Content:    content,
		Timestamp:  m.now(),
		Importance: importance,
	}
	err := m.mutate(func(st *model.AgentState) {
		st.Memory.ShortTerm = append(st.Memory.ShortTerm, entry)
		if importance == model.ImportanceImportant {
			st.Memory.LongTerm = append(st.Memory.LongTerm, entry)
		}
	})
	return entry, err
}

// LearnSkill appends a skill record. Proficiency is clamped to 0..100.
// Learning the same name again appends a new record rather than updating.
func (m *Mind) LearnSkill(name string, proficiency int) (model.SkillRecord, error) {
	if proficiency < 0 {
		proficiency = 0
	}
	if proficiency > 100 {
		proficiency = 100
	}
	skill := model.SkillRecord{
		Name:        name,
		Proficiency: proficiency,
		LearnedAt:   m.now(),
	}
	err := m.mutate(func(st *model.AgentState) {
		st.Memory.Skills = append(st.Memory.Skills, skill)
	})
	return skill, err
}

// StaleShortTerm returns the normal-importance short-term entries older
// than cutoff, oldest first, without removing them. Callers archive these
// before asking CompactShortTerm to drop them.
func (m *Mind) StaleShortTerm(cutoff time.Time) []model.MemoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.MemoryEntry
	for _, e := range m.state.Memory.ShortTerm {
		if e.Importance == model.ImportanceNormal && e.Timestamp.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// CompactShortTerm removes normal-importance short-term entries older than
// cutoff and returns them, oldest first. Important entries stay, as does
// everything in long-term. Callers move the returned entries into cold
// storage.
func (m *Mind) CompactShortTerm(cutoff time.Time) ([]model.MemoryEntry, error) {
	var removed []model.MemoryEntry
	err := m.mutate(func(st *model.AgentState) {
		kept := st.Memory.ShortTerm[:0]
		for _, e := range st.Memory.ShortTerm {
			if e.Importance == model.ImportanceNormal && e.Timestamp.Before(cutoff) {
				removed = append(removed, e)
				continue
			}
			kept = append(kept, e)
		}
		st.Memory.ShortTerm = kept
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}
