package explorer

import "github.com/rubber_duck/explorer/internal/tree"

// Row is one visible line of the rendered tree
type Row struct {
	Key      tree.Key
	Name     string
	Kind     tree.Kind
	Meta     string
	Depth    int
	Expanded bool
	IsLast   bool // last child of its parent
}

// IsFolder reports whether the row is a folder row
func (r Row) IsFolder() bool {
	return r.Kind == tree.KindFolder
}

// Render walks root and returns the rows that are visible under the given
// expansion state. Children of a collapsed folder are not emitted at all,
// whatever their own expansion state.
func Render(root tree.Node, expansion *Expansion) []Row {
	var rows []Row
	last := map[tree.Key]bool{tree.RootKey(root): true}

	tree.Walk(root, func(key tree.Key, n tree.Node, depth int) bool {
		expanded := n.IsFolder() && expansion.Has(key)
		rows = append(rows, Row{
			Key:      key,
			Name:     n.Name,
			Kind:     n.Type,
			Meta:     n.Meta,
			Depth:    depth,
			Expanded: expanded,
			IsLast:   last[key],
		})
		if expanded && len(n.Children) > 0 {
			last[key.Child(n.Children[len(n.Children)-1].Name)] = true
		}
		return expanded
	})
	return rows
}
