package naming

import "fmt"

// Naming functions for stack resources and exports.
// All names derive deterministically from the resource prefix so repeated
// synthesis of the same configuration yields the same tree.

func Prefix(app, environment string) string {
	return fmt.Sprintf("%s-%s", app, environment)
}

func StackName(app, environment, region string) string {
	return fmt.Sprintf("%s-%s-%s", app, environment, region)
}

func SecurityGroup(prefix string) string {
	return fmt.Sprintf("%s-efs-sg", prefix)
}

func FileSystem(prefix string) string {
	return fmt.Sprintf("%s-efs", prefix)
}

func SecurityGroupExport(prefix string) string {
	return fmt.Sprintf("%s-efsSG", prefix)
}

func FileSystemExport(prefix string) string {
	return fmt.Sprintf("%s-efsFileSystemId", prefix)
}
