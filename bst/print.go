package bst

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// String renders the shape of the tree, one value per line. Left and right
// children are tagged with L and R.
func (tree *Tree[T]) String() string {
	header := fmt.Sprintf("Tree(size=%d, height=%d)\n", tree.size, tree.Height())
	if tree.root == nil {
		return header
	}
	p := tp.New()
	ppt(p, tree.root, "")
	return header + p.String()
}

func ppt[T any](p tp.Tree, n *node[T], side string) {
	if n == nil {
		return
	}
	if n.left == nil && n.right == nil {
		addNode(p, n.value, side)
		return
	}
	branch := addBranch(p, n.value, side)
	ppt(branch, n.left, "L")
	ppt(branch, n.right, "R")
}

func addNode(p tp.Tree, value interface{}, side string) {
	if side == "" {
		p.AddNode(value)
		return
	}
	p.AddMetaNode(side, value)
}

func addBranch(p tp.Tree, value interface{}, side string) tp.Tree {
	if side == "" {
		return p.AddBranch(value)
	}
	return p.AddMetaBranch(side, value)
}
