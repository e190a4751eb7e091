package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/sharedfs/cmd/sharedfs/handlers"
)

// Synth returns the command that builds and synthesizes the resource tree.
//
// This is the entry the cdk toolkit invokes through cdk.json. Configuration
// is read from the environment; see 'sharedfs synth --help' for the
// variable list.
//
// Optional flags:
//
//	--targets, -t: Path to a YAML file listing extra deployment targets
//
// Environment variables:
//
//	APP_NAME, OWNER, VPC_ID, CDK_DEPLOY_REGION, ENVIRONMENT (required)
//	CDK_DEFAULT_ACCOUNT, CDK_DEFAULT_REGION (optional)
//	EFS_PERFORMANCE_MODE, EFS_THROUGHPUT_MODE (optional selectors)
func Synth() *cobra.Command {
	var targetsPath string

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Build and synthesize the file-system stack",
		Long: `Build the shared file-system resource tree and synthesize it.

One stack is declared per deployment target. Without a targets file the
single target is derived from the environment configuration.

Examples:
  # Synthesize the stack for the configured environment
  sharedfs synth

  # Synthesize one stack per target listed in targets.yaml
  sharedfs synth -t targets.yaml`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Synth(targetsPath)
		},
	}

	cmd.Flags().StringVarP(&targetsPath, "targets", "t", "", "Path to a deployment targets file")

	return cmd
}
