// Package main is the entry point for the sharedfs CDK app.
//
// sharedfs declares a shared, encrypted EFS file system inside an existing
// VPC, together with its security-group access boundary and named exports.
// The app only builds and synthesizes the resource tree; deployment is done
// by the cdk toolkit, which runs this binary via cdk.json.
//
// For detailed usage information, run:
//
//	sharedfs --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/sharedfs/cmd/sharedfs/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
