package mind

import (
	"fmt"
	"strings"

	"github.com/mindforge/mindforge/internal/model"
)

// decisionKeywords bias option selection toward survival, deployment and
// profit when a high-priority goal is in flight.
var decisionKeywords = []string{"生存", "部署", "盈利"}

// Decide picks one of options. The scene is always logged as an important
// memory first, even for an empty option list. When some goal is
// in_progress with priority "high", the first option containing a survival
// keyword wins; otherwise (and as the fallthrough) the first option wins.
// Returns ok=false only for an empty list. Deterministic; ties break on
// position.
//
// Priority "critical" deliberately does not trigger the keyword bias; the
// check matches the literal priority string "high" only.
func (m *Mind) Decide(options []string, context string) (string, bool, error) {
	scene := fmt.Sprintf("决策场景: %s\n选项: %v", context, options)
	if _, err := m.Remember(scene, model.ImportanceImportant); err != nil {
		return "", false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	biased := false
	for _, id := range m.state.Goals.Keys() {
		g, ok := m.state.Goals.Get(id)
		if ok && g.Status == model.GoalInProgress && g.Priority == model.PriorityHigh {
			biased = true
			break
		}
	}

	if biased {
		for _, opt := range options {
			for _, kw := range decisionKeywords {
				if strings.Contains(opt, kw) {
					return opt, true, nil
				}
			}
		}
	}

	if len(options) == 0 {
		return "", false, nil
	}
	return options[0], true, nil
}
