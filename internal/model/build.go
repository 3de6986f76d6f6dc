package model

import "github.com/fyrsmithlabs/zinspector/internal/registry"

// TreeNode is one entry of a hierarchical tree response.
type TreeNode struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Type     string     `json:"type"`
	Children []TreeNode `json:"children"`
}

// Build returns the subtree below id (the whole tree when id is empty).
//
// The walk uses an explicit stack, so depth is bounded by memory rather than
// the goroutine stack. Every Children slice is sized before any descendant
// is visited, which keeps the frame pointers stable.
func (t *Tree) Build(id registry.ID) ([]TreeNode, error) {
	start, err := t.Resolve(id)
	if err != nil {
		return nil, err
	}

	type frame struct {
		obj  Object
		dest *[]TreeNode
	}

	var out []TreeNode
	stack := []frame{{obj: start, dest: &out}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children := f.obj.Children()
		nodes := make([]TreeNode, len(children))
		for i, c := range children {
			nodes[i] = TreeNode{
				ID:    c.ID().String(),
				Label: c.Name(),
				Type:  c.Kind().String(),
			}
		}
		*f.dest = nodes
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{obj: children[i], dest: &nodes[i].Children})
		}
	}
	return out, nil
}
