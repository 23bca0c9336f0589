// File: internal/pom/document.go
package pom

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
)

var (
	// ErrNoProject is returned when a descriptor has no <project> root element.
	ErrNoProject = errors.New("descriptor has no <project> root element")
	// ErrMalformed is returned when a descriptor is not well-formed markup.
	ErrMalformed = errors.New("malformed descriptor")
)

// readRoot parses the descriptor at path and returns its root element.
// The file is closed before returning on every path.
func readRoot(path string) (*etree.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open descriptor %s: %w", path, err)
	}
	defer f.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor %s: %w: %w", path, ErrMalformed, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNoProject)
	}
	return root, nil
}

// childText returns the trimmed text of the first direct child named tag.
func childText(el *etree.Element, tag string) (string, bool) {
	if el == nil {
		return "", false
	}
	child := el.SelectElement(tag)
	if child == nil {
		return "", false
	}
	return strings.TrimSpace(child.Text()), true
}

// firstChildTexts scans every direct child element of el once and records the text
// of the first occurrence of each wanted tag.
func firstChildTexts(el *etree.Element, wanted ...string) map[string]string {
	found := make(map[string]string, len(wanted))
	for _, child := range el.ChildElements() {
		for _, tag := range wanted {
			if child.Tag != tag {
				continue
			}
			if _, seen := found[tag]; !seen {
				found[tag] = strings.TrimSpace(child.Text())
			}
		}
	}
	return found
}
