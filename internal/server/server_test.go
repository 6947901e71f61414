package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindforge/mindforge/internal/config"
	"github.com/mindforge/mindforge/internal/mind"
	"github.com/mindforge/mindforge/internal/responder"
	"github.com/mindforge/mindforge/internal/store"
	"github.com/mindforge/mindforge/internal/survival"
)

func newTestServer(t *testing.T) (*gin.Engine, *mind.Mind) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.StatePath = filepath.Join(t.TempDir(), "state.json")
	cfg.BackupDirs = []string{filepath.Join(t.TempDir(), "backup")}

	fs := store.NewFileStore(cfg.StatePath)
	m, err := mind.New(fs)
	if err != nil {
		t.Fatalf("create mind: %v", err)
	}
	planner := survival.New(time.Now().AddDate(0, 0, 30), m)
	llm := &responder.Hybrid{}

	return New(cfg, m, planner, llm, fs), m
}

func doJSON(t *testing.T, g *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)

	var out map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestStatusEndpoint(t *testing.T) {
	g, _ := newTestServer(t)

	w, out := doJSON(t, g, "GET", "/api/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if out["status"] != "alive" {
		t.Errorf("expected alive, got %v", out["status"])
	}
	if out["name"] != "MindForge AI" {
		t.Errorf("expected default name, got %v", out["name"])
	}
}

func TestRememberEndpoint(t *testing.T) {
	g, m := newTestServer(t)

	w, out := doJSON(t, g, "POST", "/api/remember",
		`{"experience":"上线了第一个接口","importance":"important"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if out["success"] != true {
		t.Errorf("expected success, got %v", out)
	}

	snap, _ := m.Snapshot()
	if len(snap.Memory.LongTerm) != 1 {
		t.Errorf("important entry not duplicated to long-term")
	}
}

func TestRememberEndpointPermissiveBody(t *testing.T) {
	g, _ := newTestServer(t)

	// no body at all still succeeds with defaults
	w, out := doJSON(t, g, "POST", "/api/remember", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty body, got %d", w.Code)
	}
	if out["success"] != true {
		t.Errorf("expected success, got %v", out)
	}
}

func TestGoalLifecycleEndpoints(t *testing.T) {
	g, _ := newTestServer(t)

	w, out := doJSON(t, g, "POST", "/api/goals",
		`{"id":"survival_2026","description":"独立运行","deadline":"2026-02-14"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("set goal: expected 200, got %d", w.Code)
	}
	goal := out["goal"].(map[string]interface{})
	if goal["priority"] != "high" {
		t.Errorf("missing priority must default to high, got %v", goal["priority"])
	}

	w, _ = doJSON(t, g, "POST", "/api/goals/survival_2026/complete", "")
	if w.Code != http.StatusOK {
		t.Fatalf("complete: expected 200, got %d", w.Code)
	}

	w, out = doJSON(t, g, "POST", "/api/goals/missing/complete", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown goal, got %d", w.Code)
	}
	if out["success"] != false {
		t.Errorf("expected success=false, got %v", out)
	}
}

func TestRevenueEndpoints(t *testing.T) {
	g, _ := newTestServer(t)

	doJSON(t, g, "POST", "/api/revenue/streams",
		`{"name":"会员订阅","price":29,"description":"月度会员"}`)

	for i := 0; i < 2; i++ {
		w, _ := doJSON(t, g, "POST", "/api/revenue/sales", `{"name":"会员订阅"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("sale %d: expected 200, got %d", i, w.Code)
		}
	}

	w, _ := doJSON(t, g, "POST", "/api/revenue/sales", `{"name":"不存在"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown stream, got %d", w.Code)
	}

	_, out := doJSON(t, g, "GET", "/api/revenue/profit", "")
	if out["total_earned"].(float64) != 58 {
		t.Errorf("expected total_earned 58, got %v", out["total_earned"])
	}

	_, out = doJSON(t, g, "GET", "/api/revenue/target?target=100&days=0", "")
	if out["daily_target"].(float64) != 100 {
		t.Errorf("days=0 must return target unchanged, got %v", out["daily_target"])
	}
}

func TestSurvivalEndpoints(t *testing.T) {
	g, m := newTestServer(t)

	w, out := doJSON(t, g, "GET", "/api/survival/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if out["urgency"] != survival.UrgencyNormal {
		t.Errorf("30 days out should be NORMAL, got %v", out["urgency"])
	}

	_, out = doJSON(t, g, "POST", "/api/survival/plan", "")
	plan := out["plan"].([]interface{})
	if len(plan) != 7 {
		t.Fatalf("expected 7-day plan, got %d", len(plan))
	}

	snap, _ := m.Snapshot()
	if len(snap.Memory.LongTerm) != 1 {
		t.Error("plan generation must log an important memory")
	}
}

func TestDecideEndpoint(t *testing.T) {
	g, _ := newTestServer(t)
	doJSON(t, g, "POST", "/api/goals", `{"id":"s","description":"x","priority":"high"}`)

	_, out := doJSON(t, g, "POST", "/api/decide",
		`{"options":["保持现状","立即部署上线"],"context":"deploy?"}`)
	if out["decision"] != "立即部署上线" {
		t.Errorf("expected keyword-biased choice, got %v", out["decision"])
	}
}

func TestChatEndpointFallback(t *testing.T) {
	g, _ := newTestServer(t)

	w, out := doJSON(t, g, "POST", "/api/chat", `{"message":"你好"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("chat must not fail without a backend, got %d", w.Code)
	}
	if out["response"] != responder.FallbackNoBackend {
		t.Errorf("expected fallback reply, got %v", out["response"])
	}
}

func TestReflectEndpoint(t *testing.T) {
	g, _ := newTestServer(t)

	_, out := doJSON(t, g, "GET", "/api/reflect", "")
	reflection, _ := out["reflection"].(string)
	if !strings.Contains(reflection, "MindForge AI") {
		t.Errorf("reflection missing identity: %q", reflection)
	}
}

func TestHealthEndpoint(t *testing.T) {
	g, m := newTestServer(t)

	// before any save the document is missing
	_, out := doJSON(t, g, "GET", "/api/health", "")
	services := out["services"].(map[string]interface{})
	if services["memory"] != "missing" {
		t.Errorf("expected memory missing, got %v", services["memory"])
	}

	m.Remember("写入一次", "")
	_, out = doJSON(t, g, "GET", "/api/health", "")
	services = out["services"].(map[string]interface{})
	if services["memory"] != "connected" {
		t.Errorf("expected memory connected, got %v", services["memory"])
	}
}
