package mind

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mindforge/mindforge/internal/store"
)

func newTestMind(t *testing.T) *Mind {
	t.Helper()
	fs := store.NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	m, err := New(fs)
	if err != nil {
		t.Fatalf("create mind: %v", err)
	}
	return m
}

func TestMutationStampsLastUpdate(t *testing.T) {
	m := newTestMind(t)
	stamp := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return stamp }

	if _, err := m.Remember("测试", ""); err != nil {
		t.Fatalf("remember: %v", err)
	}

	snap, err := m.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if !snap.Status.LastUpdate.Equal(stamp) {
		t.Errorf("last_update not stamped: %v", snap.Status.LastUpdate)
	}
}

func TestMutationsPersistAcrossReload(t *testing.T) {
	fs := store.NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	m, err := New(fs)
	if err != nil {
		t.Fatalf("create mind: %v", err)
	}

	m.Remember("持久化检查", "important")
	m.SetGoal("g1", "目标", "2026-02-14", "")
	m.AddStream("AI对话", 0.1, "")
	m.RecordSale("AI对话")

	m2, err := New(fs)
	if err != nil {
		t.Fatalf("reload mind: %v", err)
	}
	snap, _ := m2.Snapshot()
	if len(snap.Memory.ShortTerm) != 1 || len(snap.Memory.LongTerm) != 1 {
		t.Errorf("memory not persisted: %d/%d", len(snap.Memory.ShortTerm), len(snap.Memory.LongTerm))
	}
	if _, ok := snap.Goals.Get("g1"); !ok {
		t.Error("goal not persisted")
	}
	if snap.Resources.TotalEarned != 0.1 {
		t.Errorf("revenue not persisted: %v", snap.Resources.TotalEarned)
	}
}
