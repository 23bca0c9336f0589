// File: internal/scope/scope.go
package scope

import (
	"strings"

	"github.com/xkilldash9x/veye-maven/api/schemas"
)

// ParseList splits a comma-separated scope list into trimmed, non-empty tokens.
// A blank input yields nil.
func ParseList(csv string) []string {
	var scopes []string
	for _, token := range strings.Split(csv, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			scopes = append(scopes, token)
		}
	}
	return scopes
}

// Filter returns the dependencies whose scope is not in excluded, compared
// case-insensitively. Dependencies without a scope are always kept.
//
// When excluded or deps is empty the input slice itself is returned.
func Filter(deps []schemas.Dependency, excluded []string) []schemas.Dependency {
	if len(excluded) == 0 || len(deps) == 0 {
		return deps
	}

	filtered := make([]schemas.Dependency, 0, len(deps))
	for _, dep := range deps {
		if !isExcluded(dep.Scope, excluded) {
			filtered = append(filtered, dep)
		}
	}
	return filtered
}

func isExcluded(scope string, excluded []string) bool {
	if scope == "" {
		return false
	}
	for _, candidate := range excluded {
		if strings.EqualFold(scope, candidate) {
			return true
		}
	}
	return false
}
