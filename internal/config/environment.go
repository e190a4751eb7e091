package config

import (
	"fmt"
	"sort"
)

// Environment is the deployment environment a stack is built for.
type Environment string

const (
	EnvironmentDevelopment   Environment = "development"
	EnvironmentStaging       Environment = "staging"
	EnvironmentProduction    Environment = "production"
	EnvironmentDemonstration Environment = "demonstration"
)

// ValidEnvironments contains all recognized deployment environments.
var ValidEnvironments = map[Environment]bool{
	EnvironmentDevelopment:   true,
	EnvironmentStaging:       true,
	EnvironmentProduction:    true,
	EnvironmentDemonstration: true,
}

// Validate checks that the environment is one of the recognized values.
func (e Environment) Validate() error {
	if !ValidEnvironments[e] {
		return fmt.Errorf("invalid environment %q: must be one of %v", string(e), environmentNames())
	}
	return nil
}

// environmentNames returns the recognized environments sorted for stable
// error messages.
func environmentNames() []string {
	names := make([]string, 0, len(ValidEnvironments))
	for e := range ValidEnvironments {
		names = append(names, string(e))
	}
	sort.Strings(names)
	return names
}
