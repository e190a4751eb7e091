// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"log"

	"github.com/aws/aws-cdk-go/awscdk/v2"

	"github.com/imamik/sharedfs/internal/config"
	"github.com/imamik/sharedfs/internal/efs"
	"github.com/imamik/sharedfs/internal/tags"
	"github.com/imamik/sharedfs/internal/util/naming"
)

// loadConfig loads config from the environment (for testing injection).
var loadConfig = config.Load

// Synth builds the resource tree and synthesizes the cloud assembly.
//
// The workflow is a single sequential pass:
//  1. Load and validate the environment configuration (fail-fast on any
//     missing required variable)
//  2. Resolve the deployment targets (one by default)
//  3. Register the tag aspect once against the whole construct tree
//  4. Declare one file-system stack per target
//  5. Hand the tree to the CDK engine for synthesis
//
// Every failure aborts the run; nothing is declared partially.
func Synth(targetsPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	targets, err := cfg.ResolveTargets(targetsPath)
	if err != nil {
		return err
	}

	app := awscdk.NewApp(nil)

	set := tags.ForDeployment(string(cfg.Environment), cfg.AppName, cfg.Owner)
	awscdk.Aspects_Of(app).Add(tags.NewAspect(set), nil)

	for _, target := range targets {
		name := naming.StackName(cfg.AppName, string(cfg.Environment), target.Region)
		log.Printf("Declaring file-system stack: %s", name)
		_, err := efs.NewFileSystemStack(app, name, &efs.FileSystemStackProps{
			AppName:         cfg.AppName,
			Environment:     cfg.Environment,
			Target:          target,
			PerformanceMode: cfg.PerformanceMode,
			ThroughputMode:  cfg.ThroughputMode,
		})
		if err != nil {
			return err
		}
	}

	app.Synth(nil)
	return nil
}
