package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "skill [name]",
		Short: "Record a learned skill",
		Long:  "Append a skill record. Learning the same skill again appends a new record; the ledger is a history.",
		Args:  cobra.ExactArgs(1),
		Run:   runSkill,
	}

	cmd.Flags().IntP("proficiency", "p", 0, "Proficiency 0-100")

	RootCmd.AddCommand(cmd)
}

func runSkill(cmd *cobra.Command, args []string) {
	proficiency, _ := cmd.Flags().GetInt("proficiency")

	m, _ := openMind(loadConfig())
	skill, err := m.LearnSkill(args[0], proficiency)
	if err != nil {
		exitErr("skill", err)
	}
	printJSON(skill)
}
