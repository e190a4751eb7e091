package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

// Config holds the deployment configuration.
//
// All fields are resolved by Load before any resource is declared and are
// read-only afterwards.
type Config struct {
	// AppName namespaces every child resource and export.
	AppName string `env:"APP_NAME"`

	// Owner is recorded as a tag on every taggable resource.
	Owner string `env:"OWNER"`

	// Environment selects removal policy and tagging (see Environment).
	Environment Environment `env:"ENVIRONMENT"`

	// VpcID identifies the existing VPC the file system is placed into.
	VpcID string `env:"VPC_ID"`

	// Region is the deployment region.
	Region string `env:"CDK_DEPLOY_REGION"`

	// Account and DefaultRegion come from the CDK CLI environment and may
	// be empty when the app is synthesized environment-agnostically.
	Account       string `env:"CDK_DEFAULT_ACCOUNT"`
	DefaultRegion string `env:"CDK_DEFAULT_REGION"`

	// PerformanceMode and ThroughputMode are raw selectors parsed by the
	// efs package against its closed accepted sets.
	PerformanceMode string `env:"EFS_PERFORMANCE_MODE" envDefault:"generalPurpose"`
	ThroughputMode  string `env:"EFS_THROUGHPUT_MODE" envDefault:"bursting"`
}

// Load reads the configuration from the process environment.
//
// Required variables are checked first so that a misconfigured deployment
// fails before anything is declared.
func Load() (*Config, error) {
	if err := RequireEnv(Required()); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for common errors.
func (c *Config) Validate() error {
	if c.AppName == "" {
		return fmt.Errorf("app name is required")
	}
	if c.Owner == "" {
		return fmt.Errorf("owner is required")
	}
	if c.VpcID == "" {
		return fmt.Errorf("vpc id is required")
	}
	if err := c.Environment.Validate(); err != nil {
		return err
	}
	if c.ResolvedRegion() == "" {
		return fmt.Errorf("deploy region is required")
	}
	return nil
}

// ResolvedRegion returns the deployment region, falling back to the CDK
// default region when CDK_DEPLOY_REGION is unset.
func (c *Config) ResolvedRegion() string {
	if c.Region != "" {
		return c.Region
	}
	return c.DefaultRegion
}
