// File: internal/pom/project.go
package pom

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/xkilldash9x/veye-maven/api/schemas"
	"github.com/xkilldash9x/veye-maven/internal/placeholder"
)

// Project is the subset of a Maven project model reported to the tracking service.
type Project struct {
	Metadata schemas.ProjectMetadata
	// Dependencies are the entries of <dependencies>, in document order.
	Dependencies []schemas.Dependency
	// Managed are the entries of <dependencyManagement><dependencies>.
	Managed []schemas.Dependency
}

// LoadProject reads the descriptor at path. Coordinates missing from the project
// itself are inherited from <parent>, and the property table is seeded with the
// usual project.* built-ins unless the descriptor defines them.
func LoadProject(path string) (*Project, error) {
	root, err := readRoot(path)
	if err != nil {
		return nil, err
	}
	if root.Tag != "project" {
		return nil, fmt.Errorf("%s: found <%s>: %w", path, root.Tag, ErrNoProject)
	}

	parent := root.SelectElement("parent")
	meta := schemas.ProjectMetadata{
		GroupID:    inherited(root, parent, "groupId"),
		ArtifactID: text(root, "artifactId"),
		Version:    inherited(root, parent, "version"),
		Name:       text(root, "name"),
		PomFile:    path,
		Properties: readProperties(root),
	}
	seedBuiltins(meta.Properties, meta, parent)

	project := &Project{
		Metadata:     meta,
		Dependencies: readDependencies(root.SelectElement("dependencies"), meta.Properties),
		Managed:      []schemas.Dependency{},
	}
	if mgmt := root.SelectElement("dependencyManagement"); mgmt != nil {
		project.Managed = readDependencies(mgmt.SelectElement("dependencies"), meta.Properties)
	}
	return project, nil
}

// UnparsedProject is the model used when the descriptor at path cannot be parsed:
// no coordinates, no properties and no dependencies.
func UnparsedProject(path string) *Project {
	return &Project{
		Metadata:     schemas.ProjectMetadata{PomFile: path, Properties: map[string]string{}},
		Dependencies: []schemas.Dependency{},
		Managed:      []schemas.Dependency{},
	}
}

func text(el *etree.Element, tag string) string {
	v, _ := childText(el, tag)
	return v
}

func inherited(root, parent *etree.Element, tag string) string {
	if v, ok := childText(root, tag); ok && v != "" {
		return v
	}
	return text(parent, tag)
}

func readProperties(root *etree.Element) map[string]string {
	props := make(map[string]string)
	section := root.SelectElement("properties")
	if section == nil {
		return props
	}
	for _, p := range section.ChildElements() {
		props[p.Tag] = strings.TrimSpace(p.Text())
	}
	return props
}

func seedBuiltins(props map[string]string, meta schemas.ProjectMetadata, parent *etree.Element) {
	builtins := map[string]string{
		"project.groupId":    meta.GroupID,
		"project.artifactId": meta.ArtifactID,
		"project.version":    meta.Version,
		"pom.version":        meta.Version,
	}
	if meta.Name != "" {
		builtins["project.name"] = meta.Name
	}
	if parent != nil {
		builtins["project.parent.groupId"] = text(parent, "groupId")
		builtins["project.parent.version"] = text(parent, "version")
	}
	for k, v := range builtins {
		if _, defined := props[k]; !defined {
			props[k] = v
		}
	}
}

func readDependencies(section *etree.Element, props map[string]string) []schemas.Dependency {
	deps := []schemas.Dependency{}
	if section == nil {
		return deps
	}
	for _, el := range section.SelectElements("dependency") {
		fields := firstChildTexts(el, "groupId", "artifactId", "version", "scope", "optional")
		version, _ := placeholder.Expand(fields["version"], props)
		deps = append(deps, schemas.Dependency{
			GroupID:    keepUnresolved(fields["groupId"], props),
			ArtifactID: keepUnresolved(fields["artifactId"], props),
			Version:    version,
			Scope:      fields["scope"],
			Optional:   strings.EqualFold(fields["optional"], "true"),
		})
	}
	return deps
}

// keepUnresolved expands raw but falls back to the raw text, since an identity field
// is more useful verbatim than empty.
func keepUnresolved(raw string, props map[string]string) string {
	if v, ok := placeholder.Expand(raw, props); ok {
		return v
	}
	return raw
}
