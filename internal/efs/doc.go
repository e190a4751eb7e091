// Package efs declares the shared file-system stack.
//
// It translates the raw configuration selectors into validated EFS modes,
// derives the removal policy from the deployment environment, and assembles
// the resource tree (VPC lookup, security group, encrypted file system,
// mount policy, exports) that the CDK engine synthesizes and deploys.
package efs
