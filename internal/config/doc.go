// Package config defines the deployment configuration consumed by the
// sharedfs CDK app.
//
// The [Config] struct is the canonical representation of one deployment's
// desired inputs: naming, ownership, target VPC and region, and the raw EFS
// mode selectors. It is loaded once from the process environment at startup
// and never mutated afterwards. Optional extra deploy targets can be read
// from a YAML file.
package config
