package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	goalCmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}

	setCmd := &cobra.Command{
		Use:   "set [id] [description]",
		Short: "Insert or restart a goal",
		Long:  "Set a goal under a caller-managed id. Re-setting an existing id restarts it as in_progress.",
		Args:  cobra.MinimumNArgs(2),
		Run:   runGoalSet,
	}
	setCmd.Flags().StringP("deadline", "D", "", "Deadline date, e.g. 2026-02-14")
	setCmd.Flags().StringP("priority", "p", "high", "Priority: low, normal, high, critical")

	completeCmd := &cobra.Command{
		Use:   "complete [id]",
		Short: "Mark a goal completed",
		Args:  cobra.ExactArgs(1),
		Run:   runGoalComplete,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List goals in insertion order",
		Run:   runGoalList,
	}

	goalCmd.AddCommand(setCmd, completeCmd, listCmd)
	RootCmd.AddCommand(goalCmd)
}

func runGoalSet(cmd *cobra.Command, args []string) {
	deadline, _ := cmd.Flags().GetString("deadline")
	priority, _ := cmd.Flags().GetString("priority")

	m, _ := openMind(loadConfig())
	goal, err := m.SetGoal(args[0], args[1], deadline, priority)
	if err != nil {
		exitErr("goal set", err)
	}
	printJSON(goal)
}

func runGoalComplete(cmd *cobra.Command, args []string) {
	m, _ := openMind(loadConfig())
	ok, err := m.CompleteGoal(args[0])
	if err != nil {
		exitErr("goal complete", err)
	}
	if !ok {
		exitErr("goal complete", fmt.Errorf("goal %q not found", args[0]))
	}
	fmt.Printf("completed %s\n", args[0])
}

func runGoalList(cmd *cobra.Command, args []string) {
	m, _ := openMind(loadConfig())
	ids, goals := m.Goals()

	type entry struct {
		ID          string `json:"id"`
		Description string `json:"description"`
		Deadline    string `json:"deadline"`
		Priority    string `json:"priority"`
		Status      string `json:"status"`
	}
	out := make([]entry, 0, len(ids))
	for _, id := range ids {
		g := goals[id]
		out = append(out, entry{
			ID:          id,
			Description: g.Description,
			Deadline:    g.Deadline,
			Priority:    g.Priority,
			Status:      g.Status,
		})
	}
	printJSON(out)
}
