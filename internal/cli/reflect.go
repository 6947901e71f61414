package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "Print the self-reflection report",
		Run:   runReflect,
	}

	RootCmd.AddCommand(cmd)
}

func runReflect(cmd *cobra.Command, args []string) {
	m, _ := openMind(loadConfig())
	fmt.Print(m.Reflect())
}
