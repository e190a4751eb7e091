// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the sharedfs CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sharedfs",
		Short: "Declare the shared EFS file-system stack",
	}

	cmd.AddCommand(Synth())
	cmd.AddCommand(Version())

	return cmd
}
