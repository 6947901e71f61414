// Package cli implements the mindforge CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mindforge/mindforge/internal/config"
	"github.com/mindforge/mindforge/internal/mind"
	"github.com/mindforge/mindforge/internal/store"
	"github.com/mindforge/mindforge/internal/survival"
)

var statePath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "mindforge",
	Short: "Persistent agent state with a survival clock",
	Long:  "Memory, goals, revenue and a deadline. One JSON document, one binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&statePath, "state", "s", "", "State file path (default: $MINDFORGE_STATE or ~/.mindforge/state.json)")
}

func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitErr("load config", err)
	}
	if statePath != "" {
		cfg.StatePath = statePath
	}
	return cfg
}

func openMind(cfg config.Config) (*mind.Mind, *store.FileStore) {
	fs := store.NewFileStore(cfg.StatePath)
	m, err := mind.New(fs)
	if err != nil {
		exitErr("open state", err)
	}
	return m, fs
}

func newPlanner(cfg config.Config, m *mind.Mind) *survival.Planner {
	return survival.New(cfg.DeadlineTime(), m)
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
