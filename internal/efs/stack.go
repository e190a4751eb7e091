package efs

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsefs"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/imamik/sharedfs/internal/config"
	"github.com/imamik/sharedfs/internal/util/naming"
)

const (
	// mountAction is the only action the resource policy grants.
	mountAction = "elasticfilesystem:ClientMount"

	// mountTargetConditionKey restricts the grant to connections that
	// arrive through a mount target inside the VPC.
	mountTargetConditionKey = "elasticfilesystem:AccessedViaMountTarget"
)

// FileSystemStackProps configures one file-system stack.
type FileSystemStackProps struct {
	// AppName and Environment form the resource prefix that namespaces
	// every child resource and export.
	AppName     string
	Environment config.Environment

	// Target selects the account, region and VPC the stack deploys into.
	Target config.Target

	// PerformanceMode and ThroughputMode are raw selectors validated
	// against the closed sets in modes.go.
	PerformanceMode string
	ThroughputMode  string
}

// NewFileSystemStack assembles the resource tree for one deployment target:
// the resolved VPC, the security-group access boundary, the encrypted file
// system with its mount policy, and the two named exports. Any failure
// aborts synthesis; there is no partial declaration.
func NewFileSystemStack(scope constructs.Construct, name string, props *FileSystemStackProps) (awscdk.Stack, error) {
	prefix := naming.Prefix(props.AppName, string(props.Environment))

	stackEnv := &awscdk.Environment{
		Region: jsii.String(props.Target.Region),
	}
	if props.Target.Account != "" {
		stackEnv.Account = jsii.String(props.Target.Account)
	}

	stack := awscdk.NewStack(scope, jsii.String(name), &awscdk.StackProps{
		Env:         stackEnv,
		Description: jsii.String("Shared encrypted file system for " + prefix),
	})

	// Lookup failures surface from the CDK engine as-is; nothing here can
	// remediate a missing VPC.
	vpc := awsec2.Vpc_FromLookup(stack, jsii.String("Vpc"), &awsec2.VpcLookupOptions{
		VpcId: jsii.String(props.Target.VpcID),
	})

	removalPolicy := RemovalPolicyFor(props.Environment)

	securityGroup := awsec2.NewSecurityGroup(stack, jsii.String("EfsSecurityGroup"), &awsec2.SecurityGroupProps{
		Vpc:               vpc,
		SecurityGroupName: jsii.String(naming.SecurityGroup(prefix)),
		Description:       jsii.String("Access boundary for the " + prefix + " shared file system"),
		AllowAllOutbound:  jsii.Bool(true),
	})
	securityGroup.ApplyRemovalPolicy(removalPolicy)

	performanceMode, err := ParsePerformanceMode(props.PerformanceMode)
	if err != nil {
		return nil, err
	}
	throughputMode, err := ParseThroughputMode(props.ThroughputMode)
	if err != nil {
		return nil, err
	}

	fileSystem := awsefs.NewFileSystem(stack, jsii.String("FileSystem"), &awsefs.FileSystemProps{
		Vpc:                  vpc,
		FileSystemName:       jsii.String(naming.FileSystem(prefix)),
		Encrypted:            jsii.Bool(true),
		AllowAnonymousAccess: jsii.Bool(false),
		SecurityGroup:        securityGroup,
		PerformanceMode:      performanceMode,
		ThroughputMode:       throughputMode,
		RemovalPolicy:        removalPolicy,
		// Fixed transition for this class of workload, deliberately not
		// configurable.
		LifecyclePolicy: awsefs.LifecyclePolicy_AFTER_90_DAYS,
	})

	// Mounting is open to any principal but only through a mount target,
	// i.e. from inside the VPC guarded by the security group above.
	fileSystem.AddToResourcePolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Effect:     awsiam.Effect_ALLOW,
		Principals: &[]awsiam.IPrincipal{awsiam.NewAnyPrincipal()},
		Actions:    jsii.Strings(mountAction),
		Conditions: &map[string]interface{}{
			"Bool": map[string]interface{}{
				mountTargetConditionKey: "true",
			},
		},
	}))

	awscdk.NewCfnOutput(stack, jsii.String("EfsSecurityGroupId"), &awscdk.CfnOutputProps{
		Value:       securityGroup.SecurityGroupId(),
		ExportName:  jsii.String(naming.SecurityGroupExport(prefix)),
		Description: jsii.String("Identifier of the file system access security group"),
	})
	awscdk.NewCfnOutput(stack, jsii.String("EfsFileSystemId"), &awscdk.CfnOutputProps{
		Value:       fileSystem.FileSystemId(),
		ExportName:  jsii.String(naming.FileSystemExport(prefix)),
		Description: jsii.String("Identifier of the shared file system"),
	})

	return stack, nil
}
