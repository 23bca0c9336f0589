// File: internal/payload/payload.go
package payload

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/xkilldash9x/veye-maven/api/schemas"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	language = "Java"
	prodType = "Maven2"
)

// Document is the upload body describing a project's dependencies and plugins.
// Fields that are structurally absent are omitted rather than sent as null; the
// dependency and plugin lists are always present.
type Document struct {
	Name         string             `json:"name"`
	GroupID      string             `json:"group_id"`
	ArtifactID   string             `json:"artifact_id"`
	Version      string             `json:"version,omitempty"`
	Language     string             `json:"language"`
	ProdType     string             `json:"prod_type"`
	Dependencies []DependencyRecord `json:"dependencies"`
	Plugins      []PluginRecord     `json:"plugins"`
}

// IsEmpty reports whether the document lists neither dependencies nor plugins.
func (d Document) IsEmpty() bool {
	return len(d.Dependencies) == 0 && len(d.Plugins) == 0
}

// DependencyRecord is one dependency entry of a Document.
type DependencyRecord struct {
	Name       string `json:"name"`
	GroupID    string `json:"group_id"`
	ArtifactID string `json:"artifact_id"`
	Version    string `json:"version,omitempty"`
	Scope      string `json:"scope,omitempty"`
	Optional   bool   `json:"optional,omitempty"`
}

// PluginRecord is one plugin entry of a Document.
type PluginRecord struct {
	Name       string `json:"name"`
	GroupID    string `json:"group_id"`
	ArtifactID string `json:"artifact_id"`
	Version    string `json:"version,omitempty"`
}

// ArtifactDocument lists resolved artifact coordinates only.
type ArtifactDocument struct {
	Artifacts []ArtifactRecord `json:"artifacts"`
}

// ArtifactRecord is one entry of an ArtifactDocument.
type ArtifactRecord struct {
	GroupID    string `json:"group_id"`
	ArtifactID string `json:"artifact_id"`
	Version    string `json:"version,omitempty"`
	Classifier string `json:"classifier,omitempty"`
	Extension  string `json:"extension,omitempty"`
}

// AssembleDependencies builds the upload body for a project. The order of deps and
// plugins is preserved.
func AssembleDependencies(meta schemas.ProjectMetadata, deps []schemas.Dependency, plugins []schemas.Plugin, strategy NamingStrategy) Document {
	doc := Document{
		Name:         strategy.Resolve(meta),
		GroupID:      meta.GroupID,
		ArtifactID:   meta.ArtifactID,
		Version:      meta.Version,
		Language:     language,
		ProdType:     prodType,
		Dependencies: make([]DependencyRecord, 0, len(deps)),
		Plugins:      make([]PluginRecord, 0, len(plugins)),
	}
	for _, d := range deps {
		doc.Dependencies = append(doc.Dependencies, DependencyRecord{
			Name:       d.ArtifactID,
			GroupID:    d.GroupID,
			ArtifactID: d.ArtifactID,
			Version:    d.Version,
			Scope:      d.Scope,
			Optional:   d.Optional,
		})
	}
	for _, p := range plugins {
		doc.Plugins = append(doc.Plugins, PluginRecord{
			Name:       p.ArtifactID,
			GroupID:    p.GroupID,
			ArtifactID: p.ArtifactID,
			Version:    p.Version,
		})
	}
	return doc
}

// AssembleArtifacts builds the direct-artifacts body.
func AssembleArtifacts(artifacts []schemas.Artifact) ArtifactDocument {
	doc := ArtifactDocument{Artifacts: make([]ArtifactRecord, 0, len(artifacts))}
	for _, a := range artifacts {
		doc.Artifacts = append(doc.Artifacts, ArtifactRecord{
			GroupID:    a.GroupID,
			ArtifactID: a.ArtifactID,
			Version:    a.Version,
			Classifier: a.Classifier,
			Extension:  a.Extension,
		})
	}
	return doc
}

// Encode serializes a document as indented JSON.
func Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
