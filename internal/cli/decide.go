package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "decide [option]...",
		Short: "Pick one of the given options",
		Long:  "Deterministic choice among options. With a high-priority goal in flight, survival-related options win; otherwise the first option does. The scene is logged as an important memory.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runDecide,
	}

	cmd.Flags().StringP("context", "c", "", "Decision context, recorded in memory")

	RootCmd.AddCommand(cmd)
}

func runDecide(cmd *cobra.Command, args []string) {
	context, _ := cmd.Flags().GetString("context")

	m, _ := openMind(loadConfig())
	decision, ok, err := m.Decide(args, context)
	if err != nil {
		exitErr("decide", err)
	}
	if !ok {
		exitErr("decide", fmt.Errorf("no options given"))
	}
	fmt.Println(decision)
}
