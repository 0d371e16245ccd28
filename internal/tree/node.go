// Package tree holds the immutable folder/file tree the explorer renders.
package tree

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind tags a node as a folder or a file
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
)

// Node is one element of the input tree. Names are unique among siblings.
type Node struct {
	Type     Kind   `yaml:"type" json:"type"`
	Name     string `yaml:"name" json:"name"`
	Children []Node `yaml:"data,omitempty" json:"data,omitempty"`
	Meta     string `yaml:"meta,omitempty" json:"meta,omitempty"`
}

// IsFolder reports whether the node is a folder
func (n Node) IsFolder() bool {
	return n.Type == KindFolder
}

// Folder builds a folder node
func Folder(name string, children ...Node) Node {
	return Node{Type: KindFolder, Name: name, Children: children}
}

// File builds a file node
func File(name string) Node {
	return Node{Type: KindFile, Name: name}
}

// Key identifies a node by the path of names from the root.
type Key string

const separator = "/"

// Child returns the key of the child called name
func (k Key) Child(name string) Key {
	if k == "" {
		return Key(name)
	}
	return k + separator + Key(name)
}

// Parent returns the key of the enclosing folder, or "" for the root
func (k Key) Parent() Key {
	i := strings.LastIndex(string(k), separator)
	if i < 0 {
		return ""
	}
	return k[:i]
}

// Name returns the last path element
func (k Key) Name() string {
	i := strings.LastIndex(string(k), separator)
	return string(k[i+1:])
}

// Depth is the number of ancestors
func (k Key) Depth() int {
	if k == "" {
		return 0
	}
	return strings.Count(string(k), separator)
}

// RootKey returns the key of the tree root
func RootKey(root Node) Key {
	return Key(root.Name)
}

// Load reads and validates a tree document from disk
func Load(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Node{}, fmt.Errorf("read tree %s: %w", path, err)
	}
	root, err := Parse(data)
	if err != nil {
		return Node{}, fmt.Errorf("parse tree %s: %w", path, err)
	}
	return root, nil
}

// Parse decodes a YAML or JSON tree document and validates it
func Parse(data []byte) (Node, error) {
	var root Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Node{}, err
	}
	if err := Validate(root); err != nil {
		return Node{}, err
	}
	return root, nil
}

// Validate collects every structural problem in the tree.
func Validate(root Node) error {
	var errs []error
	Walk(root, func(key Key, n Node, _ int) bool {
		switch n.Type {
		case KindFolder, KindFile:
		default:
			errs = append(errs, fmt.Errorf("%s: unknown node type %q", key, n.Type))
		}
		if n.Name == "" {
			errs = append(errs, fmt.Errorf("%s: empty name", key.Parent()))
		}
		if strings.Contains(n.Name, separator) {
			errs = append(errs, fmt.Errorf("%s: name contains %q", key, separator))
		}
		if n.Type == KindFile && len(n.Children) > 0 {
			errs = append(errs, fmt.Errorf("%s: file has children", key))
		}
		seen := make(map[string]bool, len(n.Children))
		for _, c := range n.Children {
			if seen[c.Name] {
				errs = append(errs, fmt.Errorf("%s: duplicate child %q", key, c.Name))
			}
			seen[c.Name] = true
		}
		return true
	})
	return errors.Join(errs...)
}

// Find resolves key against root.
func Find(root Node, key Key) (Node, bool) {
	if key == "" {
		return Node{}, false
	}
	parts := strings.Split(string(key), separator)
	if parts[0] != root.Name {
		return Node{}, false
	}
	n := root
	for _, name := range parts[1:] {
		found := false
		for _, c := range n.Children {
			if c.Name == name {
				n = c
				found = true
				break
			}
		}
		if !found {
			return Node{}, false
		}
	}
	return n, true
}

// Folders returns the key of every folder in the tree, sorted
func Folders(root Node) []Key {
	var keys []Key
	Walk(root, func(key Key, n Node, _ int) bool {
		if n.IsFolder() {
			keys = append(keys, key)
		}
		return true
	})
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
