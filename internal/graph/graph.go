// File: internal/graph/graph.go
package graph

import "github.com/xkilldash9x/veye-maven/api/schemas"

// Node is a read-only view of one node in a resolved dependency tree. The root node
// represents the project itself; its children are the direct dependencies.
type Node interface {
	Artifact() schemas.Artifact
	Children() []Node
}

// MemNode is an in-memory Node. It is used as the result of ParseTree and as a tree
// builder in tests.
type MemNode struct {
	artifact schemas.Artifact
	children []Node
}

// NewNode creates a node carrying a with the given children in order.
func NewNode(a schemas.Artifact, children ...*MemNode) *MemNode {
	n := &MemNode{artifact: a}
	for _, c := range children {
		n.Add(c)
	}
	return n
}

// Add appends child and returns it.
func (n *MemNode) Add(child *MemNode) *MemNode {
	n.children = append(n.children, child)
	return child
}

func (n *MemNode) Artifact() schemas.Artifact {
	if n == nil {
		return schemas.Artifact{}
	}
	return n.artifact
}

func (n *MemNode) Children() []Node {
	if n == nil {
		return nil
	}
	return n.children
}

// DirectDependencies returns the artifacts of root's immediate children in the order
// the children were resolved. Deeper nodes are not visited.
func DirectDependencies(root Node) []schemas.Artifact {
	if root == nil {
		return []schemas.Artifact{}
	}
	children := root.Children()
	direct := make([]schemas.Artifact, 0, len(children))
	for _, child := range children {
		direct = append(direct, child.Artifact())
	}
	return direct
}
