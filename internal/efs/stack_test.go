package efs

import (
	"errors"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/sharedfs/internal/config"
)

func productionProps() *FileSystemStackProps {
	return &FileSystemStackProps{
		AppName:     "acme",
		Environment: config.EnvironmentProduction,
		Target: config.Target{
			Region:  "us-east-1",
			Account: "123456789012",
			VpcID:   "vpc-123",
		},
		PerformanceMode: "generalPurpose",
		ThroughputMode:  "bursting",
	}
}

func synthProduction(t *testing.T) assertions.Template {
	t.Helper()
	app := awscdk.NewApp(nil)
	stack, err := NewFileSystemStack(app, "acme-production-us-east-1", productionProps())
	require.NoError(t, err)
	return assertions.Template_FromStack(stack, nil)
}

func TestNewFileSystemStack_DeclaresOneEncryptedFileSystem(t *testing.T) {
	template := synthProduction(t)

	template.ResourceCountIs(jsii.String("AWS::EFS::FileSystem"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::EFS::FileSystem"), map[string]interface{}{
		"Encrypted":       true,
		"PerformanceMode": "generalPurpose",
		"ThroughputMode":  "bursting",
		"LifecyclePolicies": []interface{}{
			map[string]interface{}{"TransitionToIA": "AFTER_90_DAYS"},
		},
	})
}

func TestNewFileSystemStack_ProductionRetainsResources(t *testing.T) {
	template := synthProduction(t)

	template.HasResource(jsii.String("AWS::EFS::FileSystem"), map[string]interface{}{
		"DeletionPolicy": "Retain",
	})
	template.HasResource(jsii.String("AWS::EC2::SecurityGroup"), map[string]interface{}{
		"DeletionPolicy": "Retain",
	})
}

func TestNewFileSystemStack_DevelopmentDestroysResources(t *testing.T) {
	app := awscdk.NewApp(nil)
	props := productionProps()
	props.Environment = config.EnvironmentDevelopment

	stack, err := NewFileSystemStack(app, "acme-development-us-east-1", props)
	require.NoError(t, err)
	template := assertions.Template_FromStack(stack, nil)

	template.HasResource(jsii.String("AWS::EFS::FileSystem"), map[string]interface{}{
		"DeletionPolicy": "Delete",
	})
	template.HasResource(jsii.String("AWS::EC2::SecurityGroup"), map[string]interface{}{
		"DeletionPolicy": "Delete",
	})
}

func TestNewFileSystemStack_SecurityGroupBoundary(t *testing.T) {
	template := synthProduction(t)

	template.ResourceCountIs(jsii.String("AWS::EC2::SecurityGroup"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::EC2::SecurityGroup"), map[string]interface{}{
		"GroupName": "acme-production-efs-sg",
		"SecurityGroupEgress": assertions.Match_ArrayWith(&[]interface{}{
			assertions.Match_ObjectLike(&map[string]interface{}{
				"CidrIp": "0.0.0.0/0",
			}),
		}),
	})
}

func TestNewFileSystemStack_MountPolicyCondition(t *testing.T) {
	template := synthProduction(t)

	template.HasResourceProperties(jsii.String("AWS::EFS::FileSystem"), map[string]interface{}{
		"FileSystemPolicy": assertions.Match_ObjectLike(&map[string]interface{}{
			"Statement": assertions.Match_ArrayWith(&[]interface{}{
				assertions.Match_ObjectLike(&map[string]interface{}{
					"Action":    "elasticfilesystem:ClientMount",
					"Effect":    "Allow",
					"Principal": map[string]interface{}{"AWS": "*"},
					"Condition": map[string]interface{}{
						"Bool": map[string]interface{}{
							"elasticfilesystem:AccessedViaMountTarget": "true",
						},
					},
				}),
			}),
		}),
	})
}

func TestNewFileSystemStack_PublishesNamedExports(t *testing.T) {
	template := synthProduction(t)

	template.HasOutput(jsii.String("EfsSecurityGroupId"), map[string]interface{}{
		"Export": map[string]interface{}{"Name": "acme-production-efsSG"},
	})
	template.HasOutput(jsii.String("EfsFileSystemId"), map[string]interface{}{
		"Export": map[string]interface{}{"Name": "acme-production-efsFileSystemId"},
	})
}

func TestNewFileSystemStack_InvalidModesAbort(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *FileSystemStackProps)
		kind   string
	}{
		{
			name:   "bad performance mode",
			mutate: func(p *FileSystemStackProps) { p.PerformanceMode = "turbo" },
			kind:   "performance",
		},
		{
			name:   "bad throughput mode",
			mutate: func(p *FileSystemStackProps) { p.ThroughputMode = "provisioned" },
			kind:   "throughput",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := awscdk.NewApp(nil)
			props := productionProps()
			tt.mutate(props)

			_, err := NewFileSystemStack(app, "acme-production-us-east-1", props)
			require.Error(t, err)

			var modeErr *InvalidModeError
			require.True(t, errors.As(err, &modeErr))
			assert.Equal(t, tt.kind, modeErr.Kind)
		})
	}
}
