// File: api/schemas/project.go
package schemas

import "fmt"

// -- Project Model Schemas --

// Dependency is a dependency declared in a project descriptor.
// An empty Scope means the descriptor did not declare one.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Version    string
	Scope      string
	Optional   bool
}

// Key returns the identity of the dependency as "group:artifact".
func (d Dependency) Key() string {
	return d.GroupID + ":" + d.ArtifactID
}

// String returns a human-readable coordinate.
func (d Dependency) String() string {
	return fmt.Sprintf("%s/%s %s", d.GroupID, d.ArtifactID, d.Version)
}

// Plugin is a build plugin declared in a project descriptor.
// Version is empty when it could not be determined.
type Plugin struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// Artifact holds the coordinates of a resolved artifact.
type Artifact struct {
	GroupID    string
	ArtifactID string
	Version    string
	Classifier string
	Extension  string
}

func (a Artifact) String() string {
	if a.Classifier != "" {
		return fmt.Sprintf("%s:%s:%s:%s", a.GroupID, a.ArtifactID, a.Classifier, a.Version)
	}
	return fmt.Sprintf("%s:%s:%s", a.GroupID, a.ArtifactID, a.Version)
}

// ProjectMetadata describes the project being reported.
type ProjectMetadata struct {
	GroupID    string
	ArtifactID string
	Version    string
	Name       string
	PomFile    string
	Properties map[string]string
}

// -- Service Schemas --

// ProjectResponse is the subset of the tracking service's project resource that the
// CLI reports back to the user.
type ProjectResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	DepNumber int    `json:"dep_number"`
	OutNumber int    `json:"out_number"`
}
