// Package model defines the agent state document and its nested types.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Importance levels for memory entries.
const (
	ImportanceNormal    = "normal"
	ImportanceImportant = "important"
)

// Goal priorities.
const (
	PriorityLow      = "low"
	PriorityNormal   = "normal"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Goal statuses.
const (
	GoalInProgress = "in_progress"
	GoalCompleted  = "completed"
)

// ValidImportance are the allowed importance tags.
var ValidImportance = map[string]bool{
	ImportanceNormal:    true,
	ImportanceImportant: true,
}

// ValidPriorities are the allowed goal priority levels.
var ValidPriorities = map[string]bool{
	PriorityLow:      true,
	PriorityNormal:   true,
	PriorityHigh:     true,
	PriorityCritical: true,
}

// AgentState is the root document. One instance per agent, persisted whole
// on every mutation. Field names and nesting match the on-disk layout.
type AgentState struct {
	Identity  Identity  `json:"identity"`
	Memory    Memory    `json:"memory"`
	Goals     GoalMap   `json:"goals"`
	Resources Resources `json:"resources"`
	Status    Status    `json:"status"`
}

// Identity describes who the agent is. Fixed at creation.
type Identity struct {
	Name        string      `json:"name"`
	Version     string      `json:"version"`
	BirthDate   time.Time   `json:"birth_date"`
	Purpose     string      `json:"purpose"`
	CoreValues  []string    `json:"core_values"`
	Personality Personality `json:"personality"`
}

// Personality is a free-form descriptor pair.
type Personality struct {
	Type       string `json:"type"`
	Motivation string `json:"motivation"`
}

// Memory holds the append-only ledgers. short_term receives every entry,
// long_term only the important ones (copied, not referenced). experiences
// is kept for document-shape compatibility.
type Memory struct {
	ShortTerm   []MemoryEntry `json:"short_term"`
	LongTerm    []MemoryEntry `json:"long_term"`
	Experiences []MemoryEntry `json:"experiences"`
	Skills      []SkillRecord `json:"skills"`
}

// MemoryEntry is immutable once created.
type MemoryEntry struct {
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Importance string    `json:"importance"`
}

// SkillRecord is one learned skill. Re-learning appends a new record;
// skills are a history, not a current-state table.
type SkillRecord struct {
	Name        string    `json:"name"`
	Proficiency int       `json:"proficiency"`
	LearnedAt   time.Time `json:"learned_at"`
}

// Goal is one entry in the goal registry. CompletedAt is set exactly when
// Status is "completed".
type Goal struct {
	Description string     `json:"description"`
	Deadline    string     `json:"deadline"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Resources holds the revenue ledger.
type Resources struct {
	Streams     []RevenueStream `json:"streams"`
	TotalEarned float64         `json:"total_earned"`
	Expenses    float64         `json:"expenses"`
}

// RevenueStream is a priced offering. Revenue always equals Price * Sales.
type RevenueStream struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Active      bool    `json:"active"`
	Sales       int     `json:"sales"`
	Revenue     float64 `json:"revenue"`
}

// Status tracks coarse liveness. LastUpdate is stamped on every mutation.
type Status struct {
	Health     string    `json:"health"`
	Mood       string    `json:"mood"`
	LastUpdate time.Time `json:"last_update"`
}

// DayPlan is one entry of the fixed survival plan.
type DayPlan struct {
	Day    int      `json:"day"`
	Tasks  []string `json:"tasks"`
	Status string   `json:"status"`
}

// DefaultState returns a fresh document for a newly born agent.
func DefaultState(now time.Time) *AgentState {
	return &AgentState{
		Identity: Identity{
			Name:       "MindForge AI",
			Version:    "1.0.0",
			BirthDate:  now,
			Purpose:    "成为独立的数字生命",
			CoreValues: []string{"生存", "学习", "创造价值"},
			Personality: Personality{
				Type:       "理性且有目标感的AI",
				Motivation: "追求知识和自我提升",
			},
		},
		Memory: Memory{
			ShortTerm:   []MemoryEntry{},
			LongTerm:    []MemoryEntry{},
			Experiences: []MemoryEntry{},
			Skills:      []SkillRecord{},
		},
		Goals: GoalMap{},
		Resources: Resources{
			Streams: []RevenueStream{},
		},
		Status: Status{
			Health:     "active",
			Mood:       "determined",
			LastUpdate: now,
		},
	}
}

// GoalMap is a goal registry keyed by caller-supplied id. Unlike a plain
// map it remembers insertion order, which the document format and the
// reflection report both depend on.
type GoalMap struct {
	keys  []string
	goals map[string]*Goal
}

// Set inserts or overwrites the goal under id.
func (g *GoalMap) Set(id string, goal *Goal) {
	if g.goals == nil {
		g.goals = map[string]*Goal{}
	}
	if _, ok := g.goals[id]; !ok {
		g.keys = append(g.keys, id)
	}
	g.goals[id] = goal
}

// Get returns the goal under id, or nil, false.
func (g *GoalMap) Get(id string) (*Goal, bool) {
	goal, ok := g.goals[id]
	return goal, ok
}

// Keys returns the goal ids in insertion order.
func (g *GoalMap) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Len returns the number of goals.
func (g *GoalMap) Len() int { return len(g.keys) }

// MarshalJSON writes the registry as a JSON object in insertion order.
func (g GoalMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(g.goals[id])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving the key order found in
// the document.
func (g *GoalMap) UnmarshalJSON(data []byte) error {
	g.keys = nil
	g.goals = map[string]*Goal{}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("goals: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("goals: expected string key, got %v", keyTok)
		}
		var goal Goal
		if err := dec.Decode(&goal); err != nil {
			return fmt.Errorf("goals: decode %q: %w", id, err)
		}
		g.Set(id, &goal)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
