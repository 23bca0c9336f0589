// File: internal/payload/naming.go
package payload

import (
	"fmt"
	"strings"

	"github.com/xkilldash9x/veye-maven/api/schemas"
)

// NamingStrategy selects how the reported project name is derived.
type NamingStrategy string

const (
	// NameFromProject uses the descriptor's <name>, falling back to the artifactId.
	NameFromProject NamingStrategy = "name"
	// NameFromGroupArtifact uses "groupId/artifactId".
	NameFromGroupArtifact NamingStrategy = "GA"
	// NameFromArtifactID uses the artifactId.
	NameFromArtifactID NamingStrategy = "artifact_id"
)

var namers = map[NamingStrategy]func(schemas.ProjectMetadata) string{
	NameFromProject: func(m schemas.ProjectMetadata) string {
		if strings.TrimSpace(m.Name) != "" {
			return m.Name
		}
		return m.ArtifactID
	},
	NameFromGroupArtifact: func(m schemas.ProjectMetadata) string {
		return m.GroupID + "/" + m.ArtifactID
	},
	NameFromArtifactID: func(m schemas.ProjectMetadata) string {
		return m.ArtifactID
	},
}

// ParseNamingStrategy maps a configuration value onto a strategy, ignoring case.
// An empty value selects NameFromProject.
func ParseNamingStrategy(s string) (NamingStrategy, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NameFromProject, nil
	}
	for strategy := range namers {
		if strings.EqualFold(s, string(strategy)) {
			return strategy, nil
		}
	}
	return "", fmt.Errorf("unknown naming strategy %q (expected one of %q, %q, %q)",
		s, NameFromProject, NameFromGroupArtifact, NameFromArtifactID)
}

func (s NamingStrategy) String() string { return string(s) }

// Resolve returns the project name for meta. An unrecognized strategy behaves like
// NameFromProject.
func (s NamingStrategy) Resolve(meta schemas.ProjectMetadata) string {
	namer, ok := namers[s]
	if !ok {
		namer = namers[NameFromProject]
	}
	return namer(meta)
}
