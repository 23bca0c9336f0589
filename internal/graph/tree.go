// File: internal/graph/tree.go
package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xkilldash9x/veye-maven/api/schemas"
)

// ErrMalformedTree is returned when dependency:tree output cannot be interpreted.
var ErrMalformedTree = errors.New("malformed dependency tree")

const (
	logPrefix   = "[INFO]"
	branchWidth = 3
)

// ParseTree reads the text output of `mvn dependency:tree` and returns its root.
//
// Maven's log prefix is optional, so both console captures and files written with
// -DoutputFile are accepted. Lines before the root coordinate are skipped, and the
// tree ends at the first line after the root that is not a branch.
func ParseTree(r io.Reader) (*MemNode, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var root *MemNode
	var stack []*MemNode
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := stripLogPrefix(scanner.Text())

		if root == nil {
			if !isRootLine(line) {
				continue
			}
			a, err := parseCoordinate(line, true)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedTree, lineNo, err)
			}
			root = NewNode(a)
			stack = []*MemNode{root}
			continue
		}

		depth, rest, ok := branchDepth(line)
		if !ok {
			break
		}
		if depth > len(stack) {
			return nil, fmt.Errorf("%w: line %d: depth %d follows depth %d", ErrMalformedTree, lineNo, depth, len(stack)-1)
		}
		a, err := parseCoordinate(rest, false)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedTree, lineNo, err)
		}
		child := stack[depth-1].Add(NewNode(a))
		stack = append(stack[:depth], child)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dependency tree: %w", err)
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root artifact found", ErrMalformedTree)
	}
	return root, nil
}

func stripLogPrefix(line string) string {
	line = strings.TrimRight(line, "\r")
	if rest, ok := strings.CutPrefix(line, logPrefix); ok {
		return strings.TrimPrefix(rest, " ")
	}
	return line
}

// isRootLine matches a bare coordinate such as "com.example:demo:jar:1.0".
func isRootLine(line string) bool {
	if line == "" || strings.ContainsAny(line, " \t") {
		return false
	}
	return strings.Count(line, ":") >= 3
}

// branchDepth consumes the "|  " / "   " indentation and the "+- " / "\- " marker,
// returning the node depth (1 for direct children) and the remaining text.
func branchDepth(line string) (int, string, bool) {
	depth := 0
	for len(line) >= branchWidth {
		chunk := line[:branchWidth]
		switch chunk {
		case "|  ", "   ":
			depth++
			line = line[branchWidth:]
		case "+- ", `\- `:
			return depth + 1, line[branchWidth:], true
		default:
			return 0, "", false
		}
	}
	return 0, "", false
}

// parseCoordinate understands group:artifact:type[:classifier]:version and, for
// non-root nodes, a trailing :scope. Annotations after the coordinate are ignored.
func parseCoordinate(text string, isRoot bool) (schemas.Artifact, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return schemas.Artifact{}, errors.New("empty coordinate")
	}
	token := strings.TrimPrefix(fields[0], "(")
	parts := strings.Split(token, ":")
	for _, p := range parts {
		if p == "" {
			return schemas.Artifact{}, fmt.Errorf("coordinate %q has an empty segment", token)
		}
	}

	var a schemas.Artifact
	switch {
	case len(parts) == 4:
		a = schemas.Artifact{GroupID: parts[0], ArtifactID: parts[1], Extension: parts[2], Version: parts[3]}
	case len(parts) == 5 && isRoot:
		a = schemas.Artifact{GroupID: parts[0], ArtifactID: parts[1], Extension: parts[2], Classifier: parts[3], Version: parts[4]}
	case len(parts) == 5:
		a = schemas.Artifact{GroupID: parts[0], ArtifactID: parts[1], Extension: parts[2], Version: parts[3]}
	case len(parts) == 6 && !isRoot:
		a = schemas.Artifact{GroupID: parts[0], ArtifactID: parts[1], Extension: parts[2], Classifier: parts[3], Version: parts[4]}
	default:
		return schemas.Artifact{}, fmt.Errorf("coordinate %q has %d segments", token, len(parts))
	}
	return a, nil
}
