// Package locale loads translation files into ordered key trees.
//
// A translation file is a JSON object; nested objects group keys and every
// other value (string, number, boolean, null, array) is a leaf. Field order
// is the order keys appear in the file, which Go maps cannot preserve, so
// documents are walked with jsonparser instead of decoded into map[string]any.
package locale

import (
	"strings"

	"github.com/buger/jsonparser"
)

// Kind distinguishes leaves from nested objects
type Kind int

const (
	Leaf Kind = iota
	Object
)

func (k Kind) String() string {
	if k == Object {
		return "object"
	}
	return "leaf"
}

// Node is one value of a translation document.
type Node struct {
	Kind Kind

	// Fields holds the entries of an Object in document order
	Fields []Field

	// Source is the JSON type a Leaf was read from. It is informational:
	// every leaf is typed as a string in generated declarations.
	Source jsonparser.ValueType
}

// Field is a named entry of an Object node
type Field struct {
	Key   string
	Value *Node
}

// NewObject builds an Object node from fields, in the order given
func NewObject(fields ...Field) *Node {
	return &Node{Kind: Object, Fields: fields}
}

// NewLeaf builds a Leaf node read from a JSON value of type source
func NewLeaf(source jsonparser.ValueType) *Node {
	return &Node{Kind: Leaf, Source: source}
}

// IsObject reports whether n is a nested namespace
func (n *Node) IsObject() bool {
	return n != nil && n.Kind == Object
}

// LeafCount returns the number of leaves below n
func (n *Node) LeafCount() int {
	if !n.IsObject() {
		return 1
	}
	count := 0
	for _, f := range n.Fields {
		count += f.Value.LeafCount()
	}
	return count
}

// Depth returns the object nesting depth: 0 for a leaf, 1 for a flat object
func (n *Node) Depth() int {
	if !n.IsObject() {
		return 0
	}
	deepest := 0
	for _, f := range n.Fields {
		if d := f.Value.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// KeyPaths returns the dot-delimited path of every leaf, in document order.
// Empty nested objects contribute no paths.
func (n *Node) KeyPaths() []string {
	var paths []string
	n.collectPaths(nil, &paths)
	return paths
}

func (n *Node) collectPaths(prefix []string, paths *[]string) {
	if !n.IsObject() {
		*paths = append(*paths, strings.Join(prefix, "."))
		return
	}
	for _, f := range n.Fields {
		f.Value.collectPaths(append(prefix[:len(prefix):len(prefix)], f.Key), paths)
	}
}

// Get returns the field value stored under key, or nil
func (n *Node) Get(key string) *Node {
	if !n.IsObject() {
		return nil
	}
	for _, f := range n.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}
