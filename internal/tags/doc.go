// Package tags provides consistent tagging for every provisioned resource.
//
// A fixed tag set (environment, project, owner) is computed once per
// deployment and applied by a CDK aspect that visits the whole construct
// tree, so individual resource declarations never reference it.
package tags
