package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindforge/mindforge/internal/responder"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to the configured LLM backend",
		Long:  "Send a message to the local (Ollama) or remote backend. Unreachable backends degrade to a fixed reply; chat never fails.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runChat,
	}

	cmd.Flags().String("system", "", "System prompt")

	RootCmd.AddCommand(cmd)
}

func runChat(cmd *cobra.Command, args []string) {
	system, _ := cmd.Flags().GetString("system")

	llm := responder.NewFromEnv()
	reply := llm.Think(cmd.Context(), strings.Join(args, " "), system)
	fmt.Println(reply)
}
