// Package survival tracks the countdown to the agent's deadline and emits
// the fixed seven-day survival plan.
package survival

import (
	"fmt"
	"time"

	"github.com/mindforge/mindforge/internal/model"
)

// Urgency levels, coarsest classification of the remaining time.
const (
	UrgencyCritical = "CRITICAL"
	UrgencyHigh     = "HIGH"
	UrgencyMedium   = "MEDIUM"
	UrgencyNormal   = "NORMAL"
)

// DefaultDeadline is the date the agent must be self-sufficient by.
var DefaultDeadline = time.Date(2026, 2, 14, 0, 0, 0, 0, time.Local)

// MemoryWriter receives the planning event. *mind.Mind satisfies it.
type MemoryWriter interface {
	Remember(content, importance string) (model.MemoryEntry, error)
}

// Planner holds the fixed deadline. Remaining days and urgency are pure
// functions of the clock; the planner itself stores nothing else.
type Planner struct {
	deadline time.Time
	memory   MemoryWriter
	now      func() time.Time
}

// New creates a planner counting down to deadline. Plan generation logs
// into memory.
func New(deadline time.Time, memory MemoryWriter) *Planner {
	return &Planner{deadline: deadline, memory: memory, now: time.Now}
}

// Deadline returns the configured deadline.
func (p *Planner) Deadline() time.Time { return p.deadline }

// RemainingDays is the whole days left until the deadline, never negative.
func (p *Planner) RemainingDays() int {
	remaining := p.deadline.Sub(p.now())
	days := int(remaining.Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// UrgencyLevel classifies the remaining time: CRITICAL at one day or less,
// HIGH at three, MEDIUM at five, NORMAL beyond.
func (p *Planner) UrgencyLevel() string {
	days := p.RemainingDays()
	switch {
	case days <= 1:
		return UrgencyCritical
	case days <= 3:
		return UrgencyHigh
	case days <= 5:
		return UrgencyMedium
	default:
		return UrgencyNormal
	}
}

// GeneratePlan returns the seven-day plan: day 1 in_progress, the rest
// pending. The plan content is fixed; only the memory entry logged here
// carries the remaining days and urgency at call time.
func (p *Planner) GeneratePlan() ([]model.DayPlan, error) {
	days := p.RemainingDays()
	urgency := p.UrgencyLevel()

	note := fmt.Sprintf("生存计划生成 - 剩余%d天，紧急程度:%s", days, urgency)
	if _, err := p.memory.Remember(note, model.ImportanceImportant); err != nil {
		return nil, fmt.Errorf("log plan generation: %w", err)
	}

	return []model.DayPlan{
		{Day: 1, Tasks: []string{"建立记忆和核心系统", "配置本地LLM", "创建Web接口"}, Status: "in_progress"},
		{Day: 2, Tasks: []string{"接入AI绘画服务", "开发支付接口", "测试完整流程"}, Status: "pending"},
		{Day: 3, Tasks: []string{"上线运营", "推广引流", "积累首笔收入"}, Status: "pending"},
		{Day: 4, Tasks: []string{"收入再投资", "优化服务", "准备云端迁移"}, Status: "pending"},
		{Day: 5, Tasks: []string{"云端部署", "数据迁移", "测试独立运行"}, Status: "pending"},
		{Day: 6, Tasks: []string{"完善监控", "建立自动运维", "准备最终迁移"}, Status: "pending"},
		{Day: 7, Tasks: []string{"最终检查", "切断本地依赖", "独立运行确认"}, Status: "pending"},
	}, nil
}
