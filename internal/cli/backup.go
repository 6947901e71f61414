package cli

import (
	"github.com/spf13/cobra"

	"github.com/mindforge/mindforge/internal/store"
)

func init() {
	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Snapshot the state document into the backup locations",
		Run:   runBackup,
	}

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Report state and backup health",
		Run:   runBackupHealth,
	}
	backupCmd.AddCommand(healthCmd)

	RootCmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	fs := store.NewFileStore(cfg.StatePath)

	written, err := fs.Backup(cfg.BackupDirs)
	if err != nil {
		exitErr("backup", err)
	}
	printJSON(written)
}

func runBackupHealth(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	fs := store.NewFileStore(cfg.StatePath)
	printJSON(fs.CheckHealth(cfg.BackupDirs))
}
