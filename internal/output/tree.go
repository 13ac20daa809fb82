package output

import (
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where node descriptions start.
	descriptionColumn = 32
)

// TreeNode is one line of a rendered tree.
type TreeNode struct {
	Name        string
	Description string
	Children    []*TreeNode
}

// Child returns the child called name, creating it when missing.
func (n *TreeNode) Child(name string) *TreeNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	c := &TreeNode{Name: name}
	n.Children = append(n.Children, c)
	return c
}

// RenderTree renders root and its descendants. Branches (nodes with
// children) sort before leaves, then alphabetically. Descriptions are
// aligned to a fixed column and rendered dim.
func RenderTree(root *TreeNode) string {
	if root == nil {
		return ""
	}
	sortTree(root)

	var sb strings.Builder
	renderNode(&sb, root, "", true, true)
	return sb.String()
}

func sortTree(node *TreeNode) {
	sort.SliceStable(node.Children, func(i, j int) bool {
		a, b := node.Children[i], node.Children[j]
		if (len(a.Children) > 0) != (len(b.Children) > 0) {
			return len(a.Children) > 0
		}
		return a.Name < b.Name
	})

	for _, child := range node.Children {
		sortTree(child)
	}
}

func renderNode(sb *strings.Builder, node *TreeNode, prefix string, isRoot, isLast bool) {
	if isRoot {
		sb.WriteString(StyleSummary.Render(node.Name))
		if node.Description != "" {
			sb.WriteString("  ")
			sb.WriteString(StyleDim.Render(node.Description))
		}
		sb.WriteString("\n")
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}

		line := prefix + connector + node.Name
		width := len([]rune(line))
		if len(node.Children) > 0 {
			line = prefix + connector + StyleNoun.Render(node.Name)
		}

		if node.Description != "" {
			padding := descriptionColumn - width
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding)
			line += StyleDim.Render(node.Description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for i, child := range node.Children {
		childPrefix := ""
		if !isRoot {
			if isLast {
				childPrefix = prefix + treeSpace
			} else {
				childPrefix = prefix + treeVert
			}
		}
		renderNode(sb, child, childPrefix, false, i == len(node.Children)-1)
	}
}
