package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Target is one deployment destination for the file-system stack.
//
// Empty fields fall back to the values resolved from the environment, so a
// targets file only needs to spell out what differs per destination.
type Target struct {
	Region  string `mapstructure:"region" yaml:"region"`
	Account string `mapstructure:"account" yaml:"account"`
	VpcID   string `mapstructure:"vpc_id" yaml:"vpc_id"`
}

type targetsFile struct {
	Targets []Target `mapstructure:"targets" yaml:"targets"`
}

// DefaultTarget returns the single target described by the environment
// configuration itself.
func (c *Config) DefaultTarget() Target {
	return Target{
		Region:  c.ResolvedRegion(),
		Account: c.Account,
		VpcID:   c.VpcID,
	}
}

// ResolveTargets returns the deployment targets for this run.
//
// With no targets file the configuration yields exactly one target. A file
// may list additional destinations; unset fields inherit from the
// configuration, and every resolved target must name a region and a VPC.
func (c *Config) ResolveTargets(path string) ([]Target, error) {
	if path == "" {
		return []Target{c.DefaultTarget()}, nil
	}

	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read targets file: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var tf targetsFile
	if err := mapstructure.Decode(raw, &tf); err != nil {
		return nil, fmt.Errorf("failed to decode targets file: %w", err)
	}
	if len(tf.Targets) == 0 {
		return nil, fmt.Errorf("targets file %s lists no targets", path)
	}

	targets := make([]Target, 0, len(tf.Targets))
	for i, t := range tf.Targets {
		if t.Region == "" {
			t.Region = c.ResolvedRegion()
		}
		if t.Account == "" {
			t.Account = c.Account
		}
		if t.VpcID == "" {
			t.VpcID = c.VpcID
		}
		if t.Region == "" {
			return nil, fmt.Errorf("target %d has no region and no default is set", i)
		}
		if t.VpcID == "" {
			return nil, fmt.Errorf("target %d has no vpc id and no default is set", i)
		}
		targets = append(targets, t)
	}

	return targets, nil
}
