package directory

import "strings"

const indent = "  "

func RenderNode(node *Node, prefix string) string {
	if len(node.Children) == 0 {
		return prefix + node.Name
	}

	lines := make([]string, 0, len(node.Children)+1)
	lines = append(lines, prefix+node.Name)
	for _, child := range node.Children {
		lines = append(lines, RenderNode(child, prefix+indent))
	}
	return strings.Join(lines, "\n")
}

// RenderForest renders each root on its own lines, indenting children by two spaces per level.
func RenderForest(roots []*Node) string {
	lines := make([]string, 0, len(roots))
	for _, root := range roots {
		lines = append(lines, RenderNode(root, ""))
	}
	return strings.Join(lines, "\n")
}
