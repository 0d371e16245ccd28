package explorer

import (
	"sort"

	"github.com/rubber_duck/explorer/internal/tree"
)

// Expansion is the set of folders currently shown open.
type Expansion struct {
	set map[tree.Key]struct{}
}

// NewExpansion returns an empty set; every folder starts collapsed
func NewExpansion() *Expansion {
	return &Expansion{set: make(map[tree.Key]struct{})}
}

// Toggle flips membership of key and returns the new membership
func (e *Expansion) Toggle(key tree.Key) bool {
	if _, ok := e.set[key]; ok {
		delete(e.set, key)
		return false
	}
	e.set[key] = struct{}{}
	return true
}

// Has reports whether key is expanded
func (e *Expansion) Has(key tree.Key) bool {
	_, ok := e.set[key]
	return ok
}

// Len returns the number of expanded folders
func (e *Expansion) Len() int {
	return len(e.set)
}

// Keys returns the expanded keys in sorted order
func (e *Expansion) Keys() []tree.Key {
	keys := make([]tree.Key, 0, len(e.set))
	for k := range e.set {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Retain drops every key for which keep returns false
func (e *Expansion) Retain(keep func(tree.Key) bool) {
	for k := range e.set {
		if !keep(k) {
			delete(e.set, k)
		}
	}
}
