// File: internal/reporting/printer.go
package reporting

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/xkilldash9x/veye-maven/api/schemas"
)

// RenderEmpty formats the report shown when a project has nothing to submit.
func RenderEmpty(groupID, artifactID string) string {
	var b strings.Builder
	b.WriteString(".\n")
	fmt.Fprintf(&b, "There are no dependencies in this project! - %s/%s\n", groupID, artifactID)
	b.WriteString(".\n")
	return b.String()
}

// RenderSummary formats the report shown after a successful submission.
func RenderSummary(resp schemas.ProjectResponse, baseURL string) string {
	var b strings.Builder
	b.WriteString(".\n")
	fmt.Fprintf(&b, "Project name: %s\n", resp.Name)
	fmt.Fprintf(&b, "Project id: %s\n", resp.ID)
	fmt.Fprintf(&b, "Dependencies: %d\n", resp.DepNumber)
	fmt.Fprintf(&b, "Outdated: %d\n", resp.OutNumber)
	b.WriteString("\n")
	fmt.Fprintf(&b, "You can find your updated project here: %s\n", ProjectURL(baseURL, resp.ID))
	b.WriteString("\n")
	return b.String()
}

// ProjectURL returns the web location of a project on the tracking service.
func ProjectURL(baseURL, id string) string {
	return strings.TrimRight(baseURL, "/") + "/user/projects/" + id
}

// RenderDependencyList formats one " - dependency:" line per dependency.
func RenderDependencyList(deps []schemas.Dependency) string {
	var b strings.Builder
	for _, d := range deps {
		fmt.Fprintf(&b, " - dependency: %s\n", d)
	}
	return b.String()
}

// Print writes each line of text as its own info entry, so the report keeps its
// shape in console output.
func Print(logger *zap.Logger, text string) {
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		logger.Info(line)
	}
}
