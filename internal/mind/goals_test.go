package mind

import (
	"testing"

	"github.com/mindforge/mindforge/internal/model"
)

func TestSetAndCompleteGoal(t *testing.T) {
	m := newTestMind(t)

	goal, err := m.SetGoal("survival_2026", "建立独立运行系统", "2026-02-14", "critical")
	if err != nil {
		t.Fatalf("set goal: %v", err)
	}
	if goal.Status != model.GoalInProgress {
		t.Errorf("new goal must be in_progress, got %q", goal.Status)
	}
	if goal.CompletedAt != nil {
		t.Error("new goal must not have completed_at")
	}

	ok, err := m.CompleteGoal("survival_2026")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !ok {
		t.Fatal("expected completion to succeed")
	}

	_, goals := m.Goals()
	got := goals["survival_2026"]
	if got.Status != model.GoalCompleted {
		t.Errorf("expected completed, got %q", got.Status)
	}
	if got.CompletedAt == nil {
		t.Error("completed goal must carry completed_at")
	}
}

func TestCompleteUnknownGoal(t *testing.T) {
	m := newTestMind(t)
	m.SetGoal("known", "x", "", "")
	before, _ := m.Snapshot()

	ok, err := m.CompleteGoal("missing")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if ok {
		t.Fatal("expected false for unknown id")
	}

	after, _ := m.Snapshot()
	if !after.Status.LastUpdate.Equal(before.Status.LastUpdate) {
		t.Error("failed completion must not mutate the document")
	}
}

func TestCompleteGoalIsIdempotentOnStatus(t *testing.T) {
	m := newTestMind(t)
	m.SetGoal("g", "x", "", "")

	m.CompleteGoal("g")
	ok, err := m.CompleteGoal("g")
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if !ok {
		t.Fatal("completing twice still reports success")
	}
	_, goals := m.Goals()
	if goals["g"].Status != model.GoalCompleted {
		t.Error("status regressed")
	}
}

func TestSetGoalOverwriteRestarts(t *testing.T) {
	m := newTestMind(t)

	m.SetGoal("g", "第一版", "2026-01-01", "low")
	m.CompleteGoal("g")

	goal, err := m.SetGoal("g", "第二版", "2026-02-14", "")
	if err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if goal.Status != model.GoalInProgress {
		t.Errorf("overwrite must restart the goal, got %q", goal.Status)
	}
	if goal.Priority != model.PriorityHigh {
		t.Errorf("empty priority defaults to high, got %q", goal.Priority)
	}
	if goal.CompletedAt != nil {
		t.Error("restarted goal must drop completed_at")
	}

	ids, _ := m.Goals()
	if len(ids) != 1 {
		t.Errorf("overwrite must not duplicate the id: %v", ids)
	}
}

func TestGoalsInsertionOrder(t *testing.T) {
	m := newTestMind(t)

	m.SetGoal("c", "3", "", "")
	m.SetGoal("a", "1", "", "")
	m.SetGoal("b", "2", "", "")

	ids, _ := m.Goals()
	if len(ids) != 3 || ids[0] != "c" || ids[1] != "a" || ids[2] != "b" {
		t.Errorf("expected [c a b], got %v", ids)
	}
}
