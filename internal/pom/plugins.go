// File: internal/pom/plugins.go
package pom

import (
	"github.com/xkilldash9x/veye-maven/api/schemas"
	"github.com/xkilldash9x/veye-maven/internal/placeholder"
)

// pluginPath matches every <plugin> under any <plugins> container, which covers
// build, pluginManagement, profile and reporting sections.
const pluginPath = "//plugins/plugin"

// ExtractResult is the outcome of a best-effort plugin extraction. When Err is set,
// Plugins is empty and the caller decides how to report the failure.
type ExtractResult struct {
	Plugins []schemas.Plugin
	Err     error
}

// OK reports whether extraction succeeded.
func (r ExtractResult) OK() bool { return r.Err == nil }

// ExtractPlugins reads the raw descriptor at path and returns the declared build
// plugins, shallower <plugins> sections first. Versions are expanded against props;
// an unresolved placeholder leaves the version empty. Plugins without a non-empty
// groupId or artifactId element are dropped.
//
// The project model a build tool exposes may omit plugins it has not processed yet,
// which is why the markup is read directly.
func ExtractPlugins(path string, props map[string]string) ExtractResult {
	root, err := readRoot(path)
	if err != nil {
		return ExtractResult{Plugins: []schemas.Plugin{}, Err: err}
	}

	plugins := []schemas.Plugin{}
	for _, node := range root.FindElements(pluginPath) {
		fields := firstChildTexts(node, "groupId", "artifactId", "version")

		groupID, artifactID := fields["groupId"], fields["artifactId"]
		if groupID == "" || artifactID == "" {
			continue
		}

		version := ""
		if raw, ok := fields["version"]; ok {
			version, _ = placeholder.Expand(raw, props)
		}
		plugins = append(plugins, schemas.Plugin{
			GroupID:    groupID,
			ArtifactID: artifactID,
			Version:    version,
		})
	}
	return ExtractResult{Plugins: plugins}
}
