package directory

import (
	"github.com/michael-freling/dirtree/internal/db"
	"github.com/michael-freling/dirtree/internal/dirpath"
	"github.com/michael-freling/dirtree/internal/xslices"
)

type Node struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Path     string  `json:"path"`
	Children []*Node `json:"children"`
}

// BuildTree builds a forest from directories sorted in ascending order of their paths.
// A directory whose parent is missing becomes a root.
func BuildTree(directories []db.Directory) []*Node {
	nodes := xslices.Map(directories, func(directory db.Directory) *Node {
		return &Node{
			ID:       directory.ID,
			Name:     directory.Name,
			Path:     directory.Path,
			Children: make([]*Node, 0),
		}
	})
	nodeMap := xslices.KeyBy(nodes, func(node *Node) string {
		return node.Path
	})

	roots := make([]*Node, 0)
	for _, node := range nodes {
		parentPath := dirpath.ParentPath(node.Path)
		if parent, ok := nodeMap[parentPath]; ok && parentPath != "" {
			parent.Children = append(parent.Children, node)
			continue
		}
		roots = append(roots, node)
	}
	return roots
}
