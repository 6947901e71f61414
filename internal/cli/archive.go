package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mindforge/mindforge/internal/archive"
)

func init() {
	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "Compact old short-term memories into cold storage",
		Long:  "Move normal-importance short-term entries older than the cutoff into the SQLite archive. Important entries and the long-term ledger are never touched.",
		Run:   runArchive,
	}
	archiveCmd.Flags().IntP("days", "n", 30, "Archive entries older than this many days")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "List recently archived entries",
		Run:   runArchiveShow,
	}
	showCmd.Flags().IntP("limit", "l", 20, "Max entries to show")
	archiveCmd.AddCommand(showCmd)

	RootCmd.AddCommand(archiveCmd)
}

func runArchive(cmd *cobra.Command, args []string) {
	days, _ := cmd.Flags().GetInt("days")

	cfg := loadConfig()
	m, _ := openMind(cfg)

	a, err := archive.Open(cfg.ArchivePath)
	if err != nil {
		exitErr("open archive", err)
	}
	defer a.Close()

	cutoff := time.Now().AddDate(0, 0, -days)
	stored, err := a.Compact(cmd.Context(), m, cutoff)
	if err != nil {
		exitErr("archive", err)
	}
	fmt.Printf("archived %d entries older than %s\n", stored, cutoff.Format("2006-01-02"))
}

func runArchiveShow(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	cfg := loadConfig()
	a, err := archive.Open(cfg.ArchivePath)
	if err != nil {
		exitErr("open archive", err)
	}
	defer a.Close()

	entries, err := a.Recent(cmd.Context(), limit)
	if err != nil {
		exitErr("archive show", err)
	}
	printJSON(entries)
}
