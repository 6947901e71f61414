package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) getStatus(c *gin.Context) {
	snap, err := s.mind.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":   snap.Identity.Name,
		"status": "alive",
		"time":   time.Now().Format(time.RFC3339),
		"memory": snap,
	})
}

func (s *Server) getIdentity(c *gin.Context) {
	c.JSON(http.StatusOK, s.mind.Identity())
}

func (s *Server) getHealth(c *gin.Context) {
	memoryState := "missing"
	if _, err := os.Stat(s.files.Path()); err == nil {
		memoryState = "connected"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services": gin.H{
			"api":    "online",
			"memory": memoryState,
			"llm":    "checking",
		},
	})
}

func (s *Server) postRemember(c *gin.Context) {
	var req struct {
		Experience string `json:"experience"`
		Content    string `json:"content"`
		Importance string `json:"importance"`
	}
	// permissive parse: a missing or malformed body means defaults
	_ = c.ShouldBindJSON(&req)
	content := req.Experience
	if content == "" {
		content = req.Content
	}

	entry, err := s.mind.Remember(content, req.Importance)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "记忆已保存", "entry": entry})
}

func (s *Server) postSkill(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Proficiency int    `json:"proficiency"`
	}
	_ = c.ShouldBindJSON(&req)

	skill, err := s.mind.LearnSkill(req.Name, req.Proficiency)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "skill": skill})
}

func (s *Server) getGoals(c *gin.Context) {
	snap, err := s.mind.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap.Goals)
}

func (s *Server) postGoal(c *gin.Context) {
	var req struct {
		ID          string `json:"id"`
		Description string `json:"description"`
		Deadline    string `json:"deadline"`
		Priority    string `json:"priority"`
	}
	_ = c.ShouldBindJSON(&req)
	if req.ID == "" {
		req.ID = fmt.Sprintf("goal_%d", time.Now().Unix())
	}

	goal, err := s.mind.SetGoal(req.ID, req.Description, req.Deadline, req.Priority)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": req.ID, "goal": goal})
}

func (s *Server) postCompleteGoal(c *gin.Context) {
	ok, err := s.mind.CompleteGoal(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "goal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) getStreams(c *gin.Context) {
	c.JSON(http.StatusOK, s.mind.Streams())
}

func (s *Server) postStream(c *gin.Context) {
	var req struct {
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
	}
	_ = c.ShouldBindJSON(&req)

	stream, err := s.mind.AddStream(req.Name, req.Price, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stream": stream})
}

func (s *Server) postSale(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	_ = c.ShouldBindJSON(&req)

	ok, err := s.mind.RecordSale(req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "stream not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) getProfit(c *gin.Context) {
	earned, expenses := s.mind.Earnings()
	c.JSON(http.StatusOK, gin.H{
		"profit":       s.mind.Profit(),
		"total_earned": earned,
		"expenses":     expenses,
	})
}

func (s *Server) getDailyTarget(c *gin.Context) {
	target, err := strconv.ParseFloat(c.DefaultQuery("target", "1000"), 64)
	if err != nil {
		target = 1000
	}
	days, err := strconv.Atoi(c.DefaultQuery("days", ""))
	if err != nil {
		days = s.planner.RemainingDays()
	}
	c.JSON(http.StatusOK, gin.H{
		"target":       target,
		"days_left":    days,
		"daily_target": s.mind.DailyTarget(target, days),
	})
}

func (s *Server) postExpenses(c *gin.Context) {
	var req struct {
		Expenses float64 `json:"expenses"`
	}
	_ = c.ShouldBindJSON(&req)

	if err := s.mind.SetExpenses(req.Expenses); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) getSurvivalStatus(c *gin.Context) {
	remaining := time.Until(s.planner.Deadline())
	hours := int(remaining.Hours()) % 24
	if hours < 0 {
		hours = 0
	}
	c.JSON(http.StatusOK, gin.H{
		"deadline":        s.planner.Deadline().Format("2006-01-02"),
		"remaining_days":  s.planner.RemainingDays(),
		"remaining_hours": hours,
		"urgency":         s.planner.UrgencyLevel(),
	})
}

func (s *Server) postSurvivalPlan(c *gin.Context) {
	plan, err := s.planner.GeneratePlan()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"remaining_days": s.planner.RemainingDays(),
		"urgency":        s.planner.UrgencyLevel(),
		"plan":           plan,
	})
}

func (s *Server) postDecide(c *gin.Context) {
	var req struct {
		Options []string `json:"options"`
		Context string   `json:"context"`
	}
	_ = c.ShouldBindJSON(&req)

	decision, ok, err := s.mind.Decide(req.Options, req.Context)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"decision": decision, "decided": ok})
}

func (s *Server) getReflect(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reflection": s.mind.Reflect()})
}

func (s *Server) postChat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	_ = c.ShouldBindJSON(&req)

	reply := s.llm.Think(c.Request.Context(), req.Message, "")
	c.JSON(http.StatusOK, gin.H{"response": reply})
}

func (s *Server) postBackup(c *gin.Context) {
	written, err := s.files.Backup(s.cfg.BackupDirs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "backups": written})
}
