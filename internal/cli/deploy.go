package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindforge/mindforge/internal/deploy"
)

func init() {
	deployCmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deployment readiness and platform configs",
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Probe local build tools",
		Run:   runDeployCheck,
	}

	configCmd := &cobra.Command{
		Use:   "config [platform]",
		Short: "Print the deployment config for a platform",
		Args:  cobra.MaximumNArgs(1),
		Run:   runDeployConfig,
	}

	deployCmd.AddCommand(checkCmd, configCmd)
	RootCmd.AddCommand(deployCmd)
}

func runDeployCheck(cmd *cobra.Command, args []string) {
	printJSON(deploy.NewChecker().Readiness(cmd.Context()))
}

func runDeployConfig(cmd *cobra.Command, args []string) {
	platform := deploy.Preferred
	if len(args) > 0 {
		platform = args[0]
	}

	cfg := deploy.RenderConfig(platform)
	if cfg == "" {
		exitErr("deploy config", fmt.Errorf("unknown platform %q (targets: %v)", platform, deploy.Targets))
	}
	fmt.Print(cfg)
}
