package tree

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Node represents a JSON-serializable preview tree of a plan.
type Node struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Comment  string  `json:"comment,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

type node struct {
	name     string
	nodeType string
	comment  string
	children map[string]*node
}

// Build constructs a preview tree from planned paths. Paths with a
// trailing slash become dir nodes, everything else file nodes;
// intermediate segments are dirs. Comments are attached by full path.
func Build(paths []string, comments map[string]string) *Node {
	root := &node{name: "", nodeType: "dir", children: map[string]*node{}}
	for _, p := range paths {
		if p == "" {
			continue
		}
		isDir := strings.HasSuffix(p, "/")
		parts := strings.Split(strings.TrimSuffix(p, "/"), "/")
		current := root
		for i, part := range parts {
			if part == "" {
				continue
			}
			last := i == len(parts)-1
			child, ok := current.children[part]
			if !ok {
				nodeType := "dir"
				if last && !isDir {
					nodeType = "file"
				}
				child = &node{name: part, nodeType: nodeType, children: map[string]*node{}}
				current.children[part] = child
			}
			if last {
				if isDir {
					child.nodeType = "dir"
				}
				if c := comments[p]; c != "" {
					child.comment = c
				}
			}
			current = child
		}
	}

	return toPublic(root)
}

func toPublic(n *node) *Node {
	result := &Node{Name: n.name, Type: n.nodeType, Comment: n.comment}
	if len(n.children) == 0 {
		return result
	}

	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	// Sort directories before files, then by name.
	sort.Slice(names, func(i, j int) bool {
		left := n.children[names[i]]
		right := n.children[names[j]]
		if left.nodeType != right.nodeType {
			return left.nodeType == "dir"
		}
		return left.name < right.name
	})

	children := make([]*Node, 0, len(names))
	for _, name := range names {
		children = append(children, toPublic(n.children[name]))
	}
	result.Children = children
	return result
}

// Render writes the tree back in the diagram's own format: top-level
// entries without glyphs, nested entries with branch connectors.
func Render(w io.Writer, root *Node) {
	if root == nil {
		return
	}
	for _, child := range root.Children {
		fmt.Fprintln(w, label(child))
		for i, grandchild := range child.Children {
			renderNode(w, grandchild, "", i == len(child.Children)-1)
		}
	}
}

func renderNode(w io.Writer, n *Node, prefix string, last bool) {
	connector := "├── "
	if last {
		connector = "└── "
	}
	fmt.Fprintln(w, prefix+connector+label(n))

	childPrefix := prefix + "│   "
	if last {
		childPrefix = prefix + "    "
	}
	for i, child := range n.Children {
		renderNode(w, child, childPrefix, i == len(n.Children)-1)
	}
}

func label(n *Node) string {
	out := n.Name
	if n.Type == "dir" {
		out += "/"
	}
	if n.Comment != "" {
		out += " # " + n.Comment
	}
	return out
}
