package output

import (
	"sort"
	"strings"

	"github.com/temirov/copyctx/internal/utils"
)

const (
	directoryStructureHeading = "Directory structure:"
	directoryNameSuffix       = "/"
	pathSegmentSeparator      = "/"

	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "
)

// treeNode is one segment of the synthetic directory tree.
type treeNode struct {
	name        string
	isDirectory bool
	children    map[string]*treeNode
}

func newTreeNode(name string, isDirectory bool) *treeNode {
	return &treeNode{name: name, isDirectory: isDirectory, children: map[string]*treeNode{}}
}

// BuildDirectoryStructure renders relativePaths as a tree below a single root named rootName.
// Directories are listed before files at every level and names compare case-insensitively.
func BuildDirectoryStructure(rootName string, relativePaths []string) string {
	root := newTreeNode(rootName, true)
	for _, relativePath := range relativePaths {
		root.insert(relativePath)
	}

	var builder strings.Builder
	builder.WriteString(directoryStructureHeading)
	builder.WriteString("\n")
	renderDirectoryNode(&builder, root, "", true, true)
	return strings.TrimRight(builder.String(), "\n")
}

// insert adds every segment of relativePath below node. A segment first seen
// as a file is promoted to a directory once another path descends through it.
func (node *treeNode) insert(relativePath string) {
	segments := splitPathSegments(relativePath)
	current := node
	for index, segment := range segments {
		isLastSegment := index == len(segments)-1
		child, exists := current.children[segment]
		if !exists {
			child = newTreeNode(segment, !isLastSegment)
			current.children[segment] = child
		}
		if !isLastSegment {
			child.isDirectory = true
		}
		current = child
	}
}

func (node *treeNode) sortedChildren() []*treeNode {
	children := make([]*treeNode, 0, len(node.children))
	for _, child := range node.children {
		children = append(children, child)
	}
	sort.Slice(children, func(left, right int) bool {
		if children[left].isDirectory != children[right].isDirectory {
			return children[left].isDirectory
		}
		leftName := strings.ToLower(children[left].name)
		rightName := strings.ToLower(children[right].name)
		if leftName != rightName {
			return leftName < rightName
		}
		return children[left].name < children[right].name
	})
	return children
}

func renderDirectoryNode(builder *strings.Builder, node *treeNode, prefix string, isRoot bool, isLast bool) {
	connector := treeBranchConnector
	if isLast {
		connector = treeLastConnector
	}
	builder.WriteString(prefix)
	builder.WriteString(connector)
	builder.WriteString(node.name)
	if node.isDirectory {
		builder.WriteString(directoryNameSuffix)
	}
	builder.WriteString("\n")

	childPrefix := prefix + treeBranchPadding
	if isRoot || isLast {
		childPrefix = prefix + treeLastPadding
	}
	children := node.sortedChildren()
	for index, child := range children {
		renderDirectoryNode(builder, child, childPrefix, false, index == len(children)-1)
	}
}

func splitPathSegments(relativePath string) []string {
	rawSegments := strings.Split(utils.NormalizeSlashes(relativePath), pathSegmentSeparator)
	segments := make([]string, 0, len(rawSegments))
	for _, segment := range rawSegments {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}
