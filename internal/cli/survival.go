package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	survivalCmd := &cobra.Command{
		Use:   "survival",
		Short: "Deadline countdown and plan",
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Remaining days and urgency",
		Run:   runSurvivalStatus,
	}

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate the seven-day plan",
		Long:  "Emit the fixed seven-day plan. Generation is logged as an important memory.",
		Run:   runSurvivalPlan,
	}

	survivalCmd.AddCommand(statusCmd, planCmd)
	RootCmd.AddCommand(survivalCmd)
}

func runSurvivalStatus(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	m, _ := openMind(cfg)
	p := newPlanner(cfg, m)
	printJSON(map[string]interface{}{
		"deadline":       p.Deadline().Format("2006-01-02"),
		"remaining_days": p.RemainingDays(),
		"urgency":        p.UrgencyLevel(),
	})
}

func runSurvivalPlan(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	m, _ := openMind(cfg)
	p := newPlanner(cfg, m)

	plan, err := p.GeneratePlan()
	if err != nil {
		exitErr("survival plan", err)
	}
	printJSON(plan)
}
