package tags

// Standard tag keys applied to every taggable resource.
const (
	// KeyEnvironment identifies the deployment environment.
	KeyEnvironment = "environment"

	// KeyProject identifies the owning project (the app name).
	KeyProject = "project"

	// KeyOwner identifies who is responsible for the resources.
	KeyOwner = "owner"
)

// Set is the tag set applied uniformly to every taggable resource.
type Set map[string]string

// ForDeployment builds the tag set for one deployment.
func ForDeployment(environment, project, owner string) Set {
	return Set{
		KeyEnvironment: environment,
		KeyProject:     project,
		KeyOwner:       owner,
	}
}

// Copy returns a copy of the set to prevent external mutations.
func (s Set) Copy() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
