package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "remember [content]",
		Short: "Store a memory entry",
		Long:  "Append a memory to the short-term ledger. Content can be a positional arg or piped via stdin. Important entries are copied into long-term.",
		Run:   runRemember,
	}

	cmd.Flags().StringP("importance", "i", "normal", "Importance: normal or important")

	RootCmd.AddCommand(cmd)
}

func runRemember(cmd *cobra.Command, args []string) {
	importance, _ := cmd.Flags().GetString("importance")

	var content string
	if len(args) > 0 {
		content = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			content = strings.TrimSpace(string(b))
		}
	}

	if content == "" {
		exitErr("remember", fmt.Errorf("content is required (positional arg or stdin)"))
	}

	m, _ := openMind(loadConfig())
	entry, err := m.Remember(content, importance)
	if err != nil {
		exitErr("remember", err)
	}
	printJSON(entry)
}
