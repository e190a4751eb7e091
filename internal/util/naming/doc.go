// Package naming provides consistent naming functions for stack resources.
//
// Every name and export derives from the resource prefix {app}-{environment}
// so that independently deployed stacks can reference each other's outputs
// by name without further coordination.
package naming
