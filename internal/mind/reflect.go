package mind

import (
	"fmt"
	"strings"
)

// Reflect renders the self-report: identity, status, skill count and one
// line per goal in registry order. Pure read; unlike Decide it leaves no
// trace in the memory ledger.
func (m *Mind) Reflect() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "\n自我反思报告\n============\n")
	fmt.Fprintf(&b, "身份: %s v%s\n", m.state.Identity.Name, m.state.Identity.Version)
	fmt.Fprintf(&b, "状态: %s | 心情: %s\n", m.state.Status.Health, m.state.Status.Mood)
	fmt.Fprintf(&b, "已掌握技能: %d 项\n\n当前目标:\n", len(m.state.Memory.Skills))

	for _, id := range m.state.Goals.Keys() {
		goal, ok := m.state.Goals.Get(id)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  - [%s] %s (截止: %s)\n", goal.Status, goal.Description, goal.Deadline)
	}
	return b.String()
}
