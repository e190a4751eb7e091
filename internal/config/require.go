package config

import (
	"fmt"
	"os"
)

// Required returns the environment variables that must be set before a
// deployment may proceed.
func Required() []string {
	return []string{
		"APP_NAME",
		"OWNER",
		"VPC_ID",
		"CDK_DEPLOY_REGION",
		"ENVIRONMENT",
	}
}

// RequireEnv checks that every named environment variable is present and
// non-empty. It stops at the first missing name so a misconfigured
// deployment never proceeds partway. An empty name list is a no-op.
func RequireEnv(names []string) error {
	for _, name := range names {
		if v, ok := os.LookupEnv(name); !ok || v == "" {
			return fmt.Errorf("required environment variable %s is not set", name)
		}
	}
	return nil
}
