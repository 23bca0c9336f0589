// File: internal/results/merge.go
package results

import "github.com/xkilldash9x/veye-maven/api/schemas"

// Merge combines a project's direct dependencies with its managed ones into a new
// slice, direct entries first. Neither input is modified and duplicates are kept.
func Merge(direct, managed []schemas.Dependency) []schemas.Dependency {
	merged := make([]schemas.Dependency, 0, len(direct)+len(managed))
	merged = append(merged, direct...)
	return append(merged, managed...)
}
