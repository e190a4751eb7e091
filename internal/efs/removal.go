package efs

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"

	"github.com/imamik/sharedfs/internal/config"
)

// RemovalPolicyFor derives the removal policy from the deployment
// environment. Production data is retained when the stack is deleted;
// every other environment is destroyed.
//
// This is the single source of truth for removal behavior.
func RemovalPolicyFor(environment config.Environment) awscdk.RemovalPolicy {
	if environment == config.EnvironmentProduction {
		return awscdk.RemovalPolicy_RETAIN
	}
	return awscdk.RemovalPolicy_DESTROY
}
