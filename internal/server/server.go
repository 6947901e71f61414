// Package server exposes the state operations over HTTP. Each core
// operation maps to one route; request parsing is permissive — absent
// body fields become defaults, matching the CLI's behavior.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/mindforge/mindforge/internal/config"
	"github.com/mindforge/mindforge/internal/mind"
	"github.com/mindforge/mindforge/internal/responder"
	"github.com/mindforge/mindforge/internal/store"
	"github.com/mindforge/mindforge/internal/survival"
)

// Server bundles the collaborators the handlers need.
type Server struct {
	cfg     config.Config
	mind    *mind.Mind
	planner *survival.Planner
	llm     *responder.Hybrid
	files   *store.FileStore
}

// New builds the gin engine with all routes attached.
func New(cfg config.Config, m *mind.Mind, p *survival.Planner, llm *responder.Hybrid, fs *store.FileStore) *gin.Engine {
	s := &Server{cfg: cfg, mind: m, planner: p, llm: llm, files: fs}
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())
	s.attachRoutes(g)
	return g
}

func (s *Server) attachRoutes(g *gin.Engine) {
	api := g.Group("/api")

	api.GET("/status", s.getStatus)
	api.GET("/identity", s.getIdentity)
	api.GET("/health", s.getHealth)

	api.POST("/remember", s.postRemember)
	api.POST("/skills", s.postSkill)

	api.GET("/goals", s.getGoals)
	api.POST("/goals", s.postGoal)
	api.POST("/goals/:id/complete", s.postCompleteGoal)

	api.GET("/revenue/streams", s.getStreams)
	api.POST("/revenue/streams", s.postStream)
	api.POST("/revenue/sales", s.postSale)
	api.GET("/revenue/profit", s.getProfit)
	api.GET("/revenue/target", s.getDailyTarget)
	api.POST("/revenue/expenses", s.postExpenses)

	api.GET("/survival/status", s.getSurvivalStatus)
	api.POST("/survival/plan", s.postSurvivalPlan)

	api.POST("/decide", s.postDecide)
	api.GET("/reflect", s.getReflect)
	api.POST("/chat", s.postChat)

	api.POST("/backup", s.postBackup)
}
