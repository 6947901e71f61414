package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	revenueCmd := &cobra.Command{
		Use:   "revenue",
		Short: "Manage revenue streams",
	}

	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a revenue stream",
		Args:  cobra.ExactArgs(1),
		Run:   runRevenueAdd,
	}
	addCmd.Flags().Float64P("price", "p", 0, "Unit price")
	addCmd.Flags().StringP("desc", "d", "", "Description")

	saleCmd := &cobra.Command{
		Use:   "sale [name]",
		Short: "Record one sale on the first stream matching name",
		Args:  cobra.ExactArgs(1),
		Run:   runRevenueSale,
	}

	profitCmd := &cobra.Command{
		Use:   "profit",
		Short: "Show earnings minus expenses",
		Run:   runRevenueProfit,
	}

	targetCmd := &cobra.Command{
		Use:   "target",
		Short: "Required earnings per remaining day",
		Run:   runRevenueTarget,
	}
	targetCmd.Flags().Float64P("goal", "g", 1000, "Earnings target")
	targetCmd.Flags().IntP("days", "n", -1, "Days left (default: survival countdown)")

	expensesCmd := &cobra.Command{
		Use:   "expenses [amount]",
		Short: "Set the expense total",
		Args:  cobra.ExactArgs(1),
		Run:   runRevenueExpenses,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List revenue streams",
		Run:   runRevenueList,
	}

	revenueCmd.AddCommand(addCmd, saleCmd, profitCmd, targetCmd, expensesCmd, listCmd)
	RootCmd.AddCommand(revenueCmd)
}

func runRevenueAdd(cmd *cobra.Command, args []string) {
	price, _ := cmd.Flags().GetFloat64("price")
	desc, _ := cmd.Flags().GetString("desc")

	m, _ := openMind(loadConfig())
	stream, err := m.AddStream(args[0], price, desc)
	if err != nil {
		exitErr("revenue add", err)
	}
	printJSON(stream)
}

func runRevenueSale(cmd *cobra.Command, args []string) {
	m, _ := openMind(loadConfig())
	ok, err := m.RecordSale(args[0])
	if err != nil {
		exitErr("revenue sale", err)
	}
	if !ok {
		exitErr("revenue sale", fmt.Errorf("stream %q not found", args[0]))
	}
	fmt.Printf("sale recorded on %s\n", args[0])
}

func runRevenueProfit(cmd *cobra.Command, args []string) {
	m, _ := openMind(loadConfig())
	earned, expenses := m.Earnings()
	printJSON(map[string]float64{
		"total_earned": earned,
		"expenses":     expenses,
		"profit":       m.Profit(),
	})
}

func runRevenueTarget(cmd *cobra.Command, args []string) {
	goal, _ := cmd.Flags().GetFloat64("goal")
	days, _ := cmd.Flags().GetInt("days")

	cfg := loadConfig()
	m, _ := openMind(cfg)
	if days < 0 {
		days = newPlanner(cfg, m).RemainingDays()
	}
	printJSON(map[string]interface{}{
		"target":       goal,
		"days_left":    days,
		"daily_target": m.DailyTarget(goal, days),
	})
}

func runRevenueExpenses(cmd *cobra.Command, args []string) {
	var amount float64
	if _, err := fmt.Sscanf(args[0], "%f", &amount); err != nil {
		exitErr("revenue expenses", fmt.Errorf("invalid amount %q", args[0]))
	}

	m, _ := openMind(loadConfig())
	if err := m.SetExpenses(amount); err != nil {
		exitErr("revenue expenses", err)
	}
	fmt.Printf("expenses set to %.2f\n", amount)
}

func runRevenueList(cmd *cobra.Command, args []string) {
	m, _ := openMind(loadConfig())
	printJSON(m.Streams())
}
