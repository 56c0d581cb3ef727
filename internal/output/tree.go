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

	// descriptionColumn is where file descriptions start.
	descriptionColumn = 44
)

// treeNode is a directory or file in a rendered project tree.
type treeNode struct {
	name     string
	note     string
	dir      bool
	children map[string]*treeNode
}

func (n *treeNode) child(name string, dir bool) *treeNode {
	if n.children == nil {
		n.children = make(map[string]*treeNode)
	}
	c, ok := n.children[name]
	if !ok {
		c = &treeNode{name: name, dir: dir}
		n.children[name] = c
	}
	return c
}

// sorted returns children with directories first, then by name.
func (n *treeNode) sorted() []*treeNode {
	out := make([]*treeNode, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].dir != out[j].dir {
			return out[i].dir
		}
		return out[i].name < out[j].name
	})
	return out
}

// RenderFileTree renders project files as a tree rooted at projectName.
// Files maps slash-separated relative paths to a short note shown next to
// the file (set name, status). Empty notes are omitted.
func RenderFileTree(projectName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &treeNode{name: projectName, dir: true}
	for path, note := range files {
		parts := strings.Split(path, "/")
		n := root
		for i, part := range parts {
			n = n.child(part, i < len(parts)-1)
		}
		n.note = note
	}

	styles := GetStyles()

	var sb strings.Builder
	sb.WriteString(styles.Bold.Render(projectName + "/"))
	sb.WriteString("\n")
	writeTree(&sb, root, "", styles)
	return sb.String()
}

func writeTree(sb *strings.Builder, n *treeNode, prefix string, styles *Styles) {
	children := n.sorted()
	for i, c := range children {
		last := i == len(children)-1

		connector, indent := treeEdge, treeVert
		if last {
			connector, indent = treeLast, treeSpace
		}

		line := prefix + connector + c.name
		if c.dir {
			line += "/"
		}
		if c.note != "" {
			pad := descriptionColumn - len([]rune(line))
			if pad < 2 {
				pad = 2
			}
			line += strings.Repeat(" ", pad) + styles.Muted.Render(c.note)
		}

		sb.WriteString(line)
		sb.WriteString("\n")

		if c.dir {
			writeTree(sb, c, prefix+indent, styles)
		}
	}
}
