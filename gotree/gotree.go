// Package gotree builds and prints text trees.
package gotree

import (
	"strings"
)

const (
	newLine      = "\n"
	emptySpace   = "    "
	middleItem   = "├── "
	continueItem = "│   "
	lastItem     = "└── "
)

type (
	tree struct {
		text  string
		items []*tree
	}

	// Tree is a node of a text tree.
	Tree interface {
		Add(text string) Tree
		Print() string
	}
)

// New returns a tree with a single root node.
func New(text string) Tree {
	return &tree{text: text}
}

// Add appends a child node and returns it.
func (t *tree) Add(text string) Tree {
	n := &tree{text: text}
	t.items = append(t.items, n)
	return n
}

// Print renders the tree, one line per node. Nodes whose text spans several
// lines keep their continuation lines aligned under the first.
func (t *tree) Print() string {
	var sb strings.Builder
	sb.WriteString(t.text)
	sb.WriteString(newLine)
	printItems(&sb, t.items, "")
	return sb.String()
}

func printItems(sb *strings.Builder, items []*tree, indent string) {
	for i, item := range items {
		last := i == len(items)-1
		branch, continuation := middleItem, continueItem
		if last {
			branch, continuation = lastItem, emptySpace
		}
		for j, line := range strings.Split(item.text, newLine) {
			sb.WriteString(indent)
			if j == 0 {
				sb.WriteString(branch)
			} else {
				sb.WriteString(continuation)
			}
			sb.WriteString(line)
			sb.WriteString(newLine)
		}
		printItems(sb, item.items, indent+continuation)
	}
}
